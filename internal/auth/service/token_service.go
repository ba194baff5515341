package service

//go:generate mockgen -destination=../../mocks/mock_token_signer.go -package=mocks github.com/annguyen2k3/project-api-twitter/internal/auth/service TokenSigner

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/annguyen2k3/project-api-twitter/config"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
)

// TokenSigner is the stateless token codec. Signing and verification are pure
// with respect to external state; the refresh-token store is consulted
// elsewhere.
type TokenSigner interface {
	Sign(tokenType domain.TokenType, userID string, verify domain.VerifyStatus) (string, error)
	SignPair(userID string, verify domain.VerifyStatus) (accessToken string, refreshToken string, err error)
	Verify(tokenType domain.TokenType, token string) (*TokenClaims, error)
}

// TokenClaims is the decoded payload of any token this service issues. It is
// ephemeral: it lives for one request and is never persisted.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID    string              `json:"user_id"`
	TokenType domain.TokenType    `json:"token_type"`
	Verify    domain.VerifyStatus `json:"verify"`
}

type signingKey struct {
	private *rsa.PrivateKey
	ttl     time.Duration
}

// TokenService signs and verifies RS256 tokens with a distinct key pair and
// TTL per token type.
type TokenService struct {
	keys map[domain.TokenType]signingKey
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	specs := []struct {
		typ domain.TokenType
		pem string
		ttl time.Duration
	}{
		{domain.TokenAccess, cfg.AccessTokenPrivateKey, cfg.AccessTokenExpiry},
		{domain.TokenRefresh, cfg.RefreshTokenPrivateKey, cfg.RefreshTokenExpiry},
		{domain.TokenEmailVerify, cfg.EmailVerifyTokenPrivateKey, cfg.EmailVerifyTokenExpiry},
		{domain.TokenForgotPassword, cfg.ForgotPasswordTokenPrivateKey, cfg.ForgotPasswordTokenExpiry},
	}

	keys := make(map[domain.TokenType]signingKey, len(specs))
	for _, s := range specs {
		private, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(s.pem))
		if err != nil {
			return nil, fmt.Errorf("parse %s private key: %w", s.typ, err)
		}
		keys[s.typ] = signingKey{private: private, ttl: s.ttl}
	}

	return &TokenService{keys: keys}, nil
}

// Sign issues a token of the given type. It fails only on key or config
// misuse, never on valid input.
func (ts *TokenService) Sign(tokenType domain.TokenType, userID string, verify domain.VerifyStatus) (string, error) {
	key, ok := ts.keys[tokenType]
	if !ok {
		return "", fmt.Errorf("no signing key configured for %s", tokenType)
	}

	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		Verify:    verify,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(key.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key.private)
}

// SignPair issues the access+refresh pair handed out by register, login,
// email verification and refresh.
func (ts *TokenService) SignPair(userID string, verify domain.VerifyStatus) (string, string, error) {
	accessToken, err := ts.Sign(domain.TokenAccess, userID, verify)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.Sign(domain.TokenRefresh, userID, verify)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Verify parses and validates token against the key pair for tokenType. It
// returns jwt's own errors (expiry, malformed, signature mismatch) so callers
// can surface the underlying reason; a structurally valid token of the wrong
// type is rejected too.
func (ts *TokenService) Verify(tokenType domain.TokenType, tokenString string) (*TokenClaims, error) {
	key, ok := ts.keys[tokenType]
	if !ok {
		return nil, fmt.Errorf("no signing key configured for %s", tokenType)
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &key.private.PublicKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("token is not a %s", tokenType)
	}

	return claims, nil
}
