package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to the services that need it.
// Nothing in the request path reads the process environment.
type Config struct {
	Env       string
	Port      string
	DBURL     string
	ClientURL string

	// PasswordSecret keys the one-way password digest.
	PasswordSecret string

	// One RSA private key (PEM) per token type. Public keys for verification
	// are derived from these.
	AccessTokenPrivateKey         string
	RefreshTokenPrivateKey        string
	EmailVerifyTokenPrivateKey    string
	ForgotPasswordTokenPrivateKey string

	AccessTokenExpiry         time.Duration
	RefreshTokenExpiry        time.Duration
	EmailVerifyTokenExpiry    time.Duration
	ForgotPasswordTokenExpiry time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

func Load() *Config {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:       getEnv("ENV", "development"),
		Port:      getEnv("PORT", "4000"),
		DBURL:     mustGetEnv("DB_URL"),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:3000"),

		PasswordSecret: mustGetEnv("PASSWORD_SECRET"),

		AccessTokenPrivateKey:         mustGetEnv("JWT_ACCESS_TOKEN_PRIVATE_KEY"),
		RefreshTokenPrivateKey:        mustGetEnv("JWT_REFRESH_TOKEN_PRIVATE_KEY"),
		EmailVerifyTokenPrivateKey:    mustGetEnv("JWT_EMAIL_VERIFY_TOKEN_PRIVATE_KEY"),
		ForgotPasswordTokenPrivateKey: mustGetEnv("JWT_FORGOT_PASSWORD_TOKEN_PRIVATE_KEY"),

		AccessTokenExpiry:         getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
		RefreshTokenExpiry:        getEnvAsDuration("REFRESH_TOKEN_EXPIRY", 2400*time.Hour),
		EmailVerifyTokenExpiry:    getEnvAsDuration("EMAIL_VERIFY_TOKEN_EXPIRY", 168*time.Hour),
		ForgotPasswordTokenExpiry: getEnvAsDuration("FORGOT_PASSWORD_TOKEN_EXPIRY", time.Hour),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@twitter.dev"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultVal)
		return defaultVal
	}
	return val
}
