package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/twitter")
	t.Setenv("PASSWORD_SECRET", "secret")
	t.Setenv("JWT_ACCESS_TOKEN_PRIVATE_KEY", "access-key-pem")
	t.Setenv("JWT_REFRESH_TOKEN_PRIVATE_KEY", "refresh-key-pem")
	t.Setenv("JWT_EMAIL_VERIFY_TOKEN_PRIVATE_KEY", "everify-key-pem")
	t.Setenv("JWT_FORGOT_PASSWORD_TOKEN_PRIVATE_KEY", "fp-key-pem")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 2400*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, 168*time.Hour, cfg.EmailVerifyTokenExpiry)
	assert.Equal(t, time.Hour, cfg.ForgotPasswordTokenExpiry)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "5m")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 2525, cfg.SMTPPort)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-duration")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 587, cfg.SMTPPort)
}
