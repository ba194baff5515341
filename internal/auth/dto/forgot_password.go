package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

func (f ForgotPasswordInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&f,
		validation.Field(&f.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email format")),
	))
}

// VerifyForgotPasswordInput carries only the reset token; the
// forgot-password-token guard consumes it.
type VerifyForgotPasswordInput struct {
	ForgotPasswordToken string `json:"forgot_password_token"`
}
