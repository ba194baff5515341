package handler_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/handler"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/service"
	"github.com/annguyen2k3/project-api-twitter/internal/mocks"
)

const testPasswordSecret = "handler-test-secret"

// testApp wires the real service, guards and routes over mocked stores so
// tests exercise full request paths through fiber.
type testApp struct {
	app       *fiber.App
	users     *mocks.MockUserRepository
	tokens    *mocks.MockTokenRepository
	followers *mocks.MockFollowerRepository
	signer    *mocks.MockTokenSigner
	mailer    *mocks.MockMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ta := &testApp{
		users:     mocks.NewMockUserRepository(ctrl),
		tokens:    mocks.NewMockTokenRepository(ctrl),
		followers: mocks.NewMockFollowerRepository(ctrl),
		signer:    mocks.NewMockTokenSigner(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userService := service.NewUserService(ta.users, ta.tokens, ta.followers, ta.signer, ta.mailer, testPasswordSecret, log)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	middleware := handler.NewAuthMiddleware(ta.signer, userService, ta.users, ta.tokens)

	ta.app = fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	handler.RegisterRoutes(ta.app, authHandler, userHandler, middleware)
	return ta
}

func digest(password string) string {
	sum := sha3.Sum256([]byte(password + testPasswordSecret))
	return hex.EncodeToString(sum[:])
}

// request performs a JSON round trip through the app and decodes the body.
func (ta *testApp) request(t *testing.T, method, path string, body interface{}, headers map[string]string) (int, fiber.Map) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func bearer(token string) map[string]string {
	return map[string]string{fiber.HeaderAuthorization: "Bearer " + token}
}
