package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/service"
	"github.com/annguyen2k3/project-api-twitter/pkg/constant"
)

func TestRequireAccessToken(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ta := newTestApp(t)

		status, body := ta.request(t, http.MethodGet, "/users/me", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constant.MsgAccessTokenRequired, body["message"])
	})

	t.Run("header without token", func(t *testing.T) {
		ta := newTestApp(t)

		status, body := ta.request(t, http.MethodGet, "/users/me", nil, bearer(""))

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constant.MsgAccessTokenRequired, body["message"])
	})

	t.Run("invalid token", func(t *testing.T) {
		ta := newTestApp(t)
		ta.signer.EXPECT().Verify(domain.TokenAccess, "bad-token").Return(nil, errors.New("token is malformed"))

		status, body := ta.request(t, http.MethodGet, "/users/me", nil, bearer("bad-token"))

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "token is malformed", body["message"])
	})
}

func TestRequireVerifiedUser(t *testing.T) {
	ta := newTestApp(t)
	claims := &service.TokenClaims{UserID: "user-1", TokenType: domain.TokenAccess, Verify: domain.VerifyUnverified}
	ta.signer.EXPECT().Verify(domain.TokenAccess, "unverified-token").Return(claims, nil)

	status, body := ta.request(t, http.MethodPatch, "/users/me",
		map[string]string{"bio": "hi"}, bearer("unverified-token"))

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, constant.MsgUserNotVerified, body["message"])
}

func TestRequireRefreshToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ta := newTestApp(t)

		status, body := ta.request(t, http.MethodPost, "/users/refresh-token",
			map[string]string{}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constant.MsgRefreshTokenRequired, body["message"])
	})

	t.Run("valid signature but absent from store", func(t *testing.T) {
		ta := newTestApp(t)
		claims := &service.TokenClaims{UserID: "user-1", TokenType: domain.TokenRefresh, Verify: domain.VerifyVerified}
		ta.signer.EXPECT().Verify(domain.TokenRefresh, "valid-but-gone").Return(claims, nil)
		ta.tokens.EXPECT().FindByToken(gomock.Any(), "valid-but-gone").Return(nil, nil)

		status, body := ta.request(t, http.MethodPost, "/users/refresh-token",
			map[string]string{"refresh_token": "valid-but-gone"}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constant.MsgUsedOrNonexistentRefresh, body["message"])
	})

	t.Run("bad signature with record present", func(t *testing.T) {
		ta := newTestApp(t)
		ta.signer.EXPECT().Verify(domain.TokenRefresh, "forged").Return(nil, errors.New("signature is invalid"))
		ta.tokens.EXPECT().FindByToken(gomock.Any(), "forged").
			Return(&domain.RefreshToken{ID: "rt-1", UserID: "user-1", Token: "forged"}, nil)

		status, body := ta.request(t, http.MethodPost, "/users/refresh-token",
			map[string]string{"refresh_token": "forged"}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "signature is invalid", body["message"])
	})
}

func TestRequireForgotPasswordToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ta := newTestApp(t)

		status, body := ta.request(t, http.MethodPost, "/users/verify-forgot-password",
			map[string]string{}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constant.MsgForgotPasswordTokenReqd, body["message"])
	})

	t.Run("token no longer pending on the record", func(t *testing.T) {
		ta := newTestApp(t)
		claims := &service.TokenClaims{UserID: "user-1", TokenType: domain.TokenForgotPassword}
		ta.signer.EXPECT().Verify(domain.TokenForgotPassword, "stale-token").Return(claims, nil)
		ta.users.EXPECT().FindByID(gomock.Any(), "user-1").
			Return(&domain.User{ID: "user-1", ForgotPasswordToken: "newer-token"}, nil)

		status, body := ta.request(t, http.MethodPost, "/users/verify-forgot-password",
			map[string]string{"forgot_password_token": "stale-token"}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constant.MsgForgotPasswordTokenInvalid, body["message"])
	})

	t.Run("owner no longer exists", func(t *testing.T) {
		ta := newTestApp(t)
		claims := &service.TokenClaims{UserID: "user-1", TokenType: domain.TokenForgotPassword}
		ta.signer.EXPECT().Verify(domain.TokenForgotPassword, "orphan-token").Return(claims, nil)
		ta.users.EXPECT().FindByID(gomock.Any(), "user-1").Return(nil, nil)

		status, body := ta.request(t, http.MethodPost, "/users/verify-forgot-password",
			map[string]string{"forgot_password_token": "orphan-token"}, nil)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, constant.MsgUserNotFound, body["message"])
	})
}

func TestRequireCredentials_WrongPassword(t *testing.T) {
	ta := newTestApp(t)
	ta.users.EXPECT().FindByEmailAndPassword(gomock.Any(), "a@x.com", digest("wrong-pass")).Return(nil, nil)

	status, body := ta.request(t, http.MethodPost, "/users/login",
		map[string]string{"email": "a@x.com", "password": "wrong-pass"}, nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, constant.MsgPasswordIncorrect, body["message"])
}

func TestRequireFollowTarget(t *testing.T) {
	accessToken := func(ta *testApp) map[string]string {
		claims := &service.TokenClaims{UserID: "11111111-1111-1111-1111-111111111111", TokenType: domain.TokenAccess, Verify: domain.VerifyVerified}
		ta.signer.EXPECT().Verify(domain.TokenAccess, "access-token").Return(claims, nil)
		return bearer("access-token")
	}

	t.Run("malformed id", func(t *testing.T) {
		ta := newTestApp(t)

		status, body := ta.request(t, http.MethodPost, "/users/follow",
			map[string]string{"followed_user_id": "not-a-uuid"}, accessToken(ta))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, constant.MsgFollowedNotFound, body["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		ta := newTestApp(t)
		target := "22222222-2222-2222-2222-222222222222"
		ta.users.EXPECT().FindByID(gomock.Any(), target).Return(nil, nil)

		status, body := ta.request(t, http.MethodPost, "/users/follow",
			map[string]string{"followed_user_id": target}, accessToken(ta))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, constant.MsgFollowedNotFound, body["message"])
	})
}
