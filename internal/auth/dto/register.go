package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DateOfBirth     string `json:"date_of_birth"`
}

func (r RegisterInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(1, 100).Error("Name must be between 1 and 100 characters")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email format")),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 50).Error("Password must be between 6 and 50 characters"),
			validation.By(strongPassword)),
		validation.Field(&r.ConfirmPassword,
			validation.Required.Error("Confirm password is required"),
			validation.By(matches(r.Password, "Passwords confirmation does not match password"))),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("Date of birth is required"),
			validation.Date(time.RFC3339).Error("Date of birth must be a valid ISO 8601 date")),
	))
}
