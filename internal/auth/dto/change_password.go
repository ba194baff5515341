package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ChangePasswordInput struct {
	OldPassword     string `json:"old_password"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (c ChangePasswordInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&c,
		validation.Field(&c.OldPassword,
			validation.Required.Error("Old password is required")),
		validation.Field(&c.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 50).Error("Password must be between 6 and 50 characters"),
			validation.By(strongPassword)),
		validation.Field(&c.ConfirmPassword,
			validation.Required.Error("Confirm password is required"),
			validation.By(matches(c.Password, "Passwords confirmation does not match password"))),
	))
}
