package domain

import "time"

// TokenType selects the signing key pair and TTL a token is issued and
// verified under. Callers always name the expected type; the codec never
// infers it from the token itself.
type TokenType int8

const (
	TokenAccess TokenType = iota
	TokenRefresh
	TokenEmailVerify
	TokenForgotPassword
)

func (t TokenType) String() string {
	switch t {
	case TokenAccess:
		return "access_token"
	case TokenRefresh:
		return "refresh_token"
	case TokenEmailVerify:
		return "email_verify_token"
	case TokenForgotPassword:
		return "forgot_password_token"
	default:
		return "unknown"
	}
}

// RefreshToken is a durable grant record. Presence in the store is the sole
// authority for a refresh token's validity beyond signature and expiry: a
// correctly signed token absent from the store must be rejected.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
}
