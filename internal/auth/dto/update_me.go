package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
)

// UpdateMeInput is the whitelisted self-update body. Pointer fields
// distinguish "not sent" from "set to empty".
type UpdateMeInput struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
	Username    *string `json:"username"`
	Avatar      *string `json:"avatar"`
	CoverPhoto  *string `json:"cover_photo"`
}

func (u UpdateMeInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&u,
		validation.Field(&u.Name,
			validation.Length(1, 100).Error("Name must be between 1 and 100 characters")),
		validation.Field(&u.DateOfBirth,
			validation.Date(time.RFC3339).Error("Date of birth must be a valid ISO 8601 date")),
		validation.Field(&u.Bio,
			validation.Length(0, 200).Error("Bio must be at most 200 characters")),
		validation.Field(&u.Location,
			validation.Length(0, 200).Error("Location must be at most 200 characters")),
		validation.Field(&u.Website,
			is.URL.Error("Website must be a valid URL")),
		validation.Field(&u.Username,
			validation.Length(1, 50).Error("Username must be between 1 and 50 characters")),
		validation.Field(&u.Avatar,
			validation.Length(0, 400).Error("Avatar must be at most 400 characters")),
		validation.Field(&u.CoverPhoto,
			validation.Length(0, 400).Error("Cover photo must be at most 400 characters")),
	))
}

// ToPatch converts the input into a directory patch. Call Validate first; the
// date parse here assumes it already passed.
func (u UpdateMeInput) ToPatch() *domain.UserPatch {
	patch := &domain.UserPatch{
		Name:       u.Name,
		Bio:        u.Bio,
		Location:   u.Location,
		Website:    u.Website,
		Username:   u.Username,
		Avatar:     u.Avatar,
		CoverPhoto: u.CoverPhoto,
	}
	if u.DateOfBirth != nil {
		if dob, err := time.Parse(time.RFC3339, *u.DateOfBirth); err == nil {
			patch.DateOfBirth = &dob
		}
	}
	return patch
}
