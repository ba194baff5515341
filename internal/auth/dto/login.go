package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&l,
		validation.Field(&l.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email format")),
		validation.Field(&l.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 50).Error("Password must be between 6 and 50 characters")),
	))
}
