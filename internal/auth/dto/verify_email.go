package dto

type VerifyEmailInput struct {
	EmailVerifyToken string `json:"email_verify_token"`
}
