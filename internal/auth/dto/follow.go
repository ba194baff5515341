package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type FollowInput struct {
	FollowedUserID string `json:"followed_user_id"`
}

func (f FollowInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&f,
		validation.Field(&f.FollowedUserID,
			validation.Required.Error("Followed user id is required"),
			is.UUID.Error("Followed user id must be a valid id")),
	))
}
