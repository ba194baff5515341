package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ResetPasswordInput struct {
	ForgotPasswordToken string `json:"forgot_password_token"`
	Password            string `json:"password"`
	ConfirmPassword     string `json:"confirm_password"`
}

func (r ResetPasswordInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 50).Error("Password must be between 6 and 50 characters"),
			validation.By(strongPassword)),
		validation.Field(&r.ConfirmPassword,
			validation.Required.Error("Confirm password is required"),
			validation.By(matches(r.Password, "Passwords confirmation does not match password"))),
	))
}
