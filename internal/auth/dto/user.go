package dto

import (
	"time"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
)

// UserOutput is the public projection of a user record. Password and pending
// token fields never leave the service.
type UserOutput struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Verify      string    `json:"verify"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	Website     string    `json:"website,omitempty"`
	Username    string    `json:"username,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CoverPhoto  string    `json:"cover_photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		DateOfBirth: u.DateOfBirth,
		Verify:      u.Verify.String(),
		Bio:         u.Bio,
		Location:    u.Location,
		Website:     u.Website,
		Username:    u.Username,
		Avatar:      u.Avatar,
		CoverPhoto:  u.CoverPhoto,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
