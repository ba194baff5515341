package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/dto"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/service"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

// Locals keys for values a guard attaches for downstream steps. Use the typed
// accessors below instead of reading Locals directly.
const (
	localAccessClaims         = "decoded_authorization"
	localRefreshClaims        = "decoded_refresh_token"
	localEmailVerifyClaims    = "decoded_email_verify_token"
	localForgotPasswordClaims = "decoded_forgot_password_token"
	localRefreshTokenValue    = "refresh_token_value"
	localAuthenticatedUser    = "authenticated_user"
	localFollowTarget         = "followed_user"
)

func AccessClaims(c *fiber.Ctx) *service.TokenClaims {
	claims, _ := c.Locals(localAccessClaims).(*service.TokenClaims)
	return claims
}

func RefreshClaims(c *fiber.Ctx) *service.TokenClaims {
	claims, _ := c.Locals(localRefreshClaims).(*service.TokenClaims)
	return claims
}

func EmailVerifyClaims(c *fiber.Ctx) *service.TokenClaims {
	claims, _ := c.Locals(localEmailVerifyClaims).(*service.TokenClaims)
	return claims
}

func ForgotPasswordClaims(c *fiber.Ctx) *service.TokenClaims {
	claims, _ := c.Locals(localForgotPasswordClaims).(*service.TokenClaims)
	return claims
}

func RefreshTokenValue(c *fiber.Ctx) string {
	token, _ := c.Locals(localRefreshTokenValue).(string)
	return token
}

func AuthenticatedUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(localAuthenticatedUser).(*domain.User)
	return user
}

func FollowTarget(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(localFollowTarget).(*domain.User)
	return user
}

// AuthMiddleware is the guard chain run before protected handlers. Guards
// compose left to right per route; the first failure aborts the chain.
type AuthMiddleware struct {
	signer      service.TokenSigner
	userService *service.UserService
	users       domain.UserRepository
	tokens      domain.TokenRepository
}

func NewAuthMiddleware(
	signer service.TokenSigner,
	userService *service.UserService,
	users domain.UserRepository,
	tokens domain.TokenRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		signer:      signer,
		userService: userService,
		users:       users,
		tokens:      tokens,
	}
}

// RequireAccessToken extracts the bearer token from the Authorization header
// and attaches the decoded claims. Verification failures surface their
// underlying reason under an Unauthorized classification.
func (m *AuthMiddleware) RequireAccessToken(c *fiber.Ctx) error {
	parts := strings.Split(c.Get(fiber.HeaderAuthorization), " ")
	if len(parts) != 2 || parts[1] == "" {
		return autherror.ErrAccessTokenRequired
	}

	claims, err := m.signer.Verify(domain.TokenAccess, parts[1])
	if err != nil {
		return autherror.Unauthorized(err.Error())
	}

	c.Locals(localAccessClaims, claims)
	return c.Next()
}

// RequireRefreshToken verifies the body's refresh token signature and looks
// it up in the token store as one logical step. A token absent from the store
// is rejected as used-or-nonexistent no matter how valid its signature is.
func (m *AuthMiddleware) RequireRefreshToken(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return autherror.ErrRefreshTokenRequired
	}

	var (
		claims    *service.TokenClaims
		verifyErr error
		record    *domain.RefreshToken
	)

	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		decoded, err := m.signer.Verify(domain.TokenRefresh, input.RefreshToken)
		if err != nil {
			verifyErr = autherror.Unauthorized(err.Error())
			return nil
		}
		claims = decoded
		return nil
	})
	g.Go(func() error {
		found, err := m.tokens.FindByToken(ctx, input.RefreshToken)
		if err != nil {
			return autherror.Internal(err)
		}
		record = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if record == nil {
		return autherror.ErrUsedOrNonexistentRefresh
	}
	if verifyErr != nil {
		return verifyErr
	}

	c.Locals(localRefreshClaims, claims)
	c.Locals(localRefreshTokenValue, input.RefreshToken)
	return c.Next()
}

// RequireEmailVerifyToken verifies the body's email-verify token and attaches
// its claims.
func (m *AuthMiddleware) RequireEmailVerifyToken(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil || input.EmailVerifyToken == "" {
		return autherror.ErrEmailVerifyTokenRequired
	}

	claims, err := m.signer.Verify(domain.TokenEmailVerify, input.EmailVerifyToken)
	if err != nil {
		return autherror.Unauthorized(err.Error())
	}

	c.Locals(localEmailVerifyClaims, claims)
	return c.Next()
}

// RequireForgotPasswordToken verifies the body's reset token, re-resolves the
// owning user and checks the token is still the pending one on the record.
func (m *AuthMiddleware) RequireForgotPasswordToken(c *fiber.Ctx) error {
	var input dto.VerifyForgotPasswordInput
	if err := c.BodyParser(&input); err != nil || input.ForgotPasswordToken == "" {
		return autherror.ErrForgotPasswordTokenReqd
	}

	claims, err := m.signer.Verify(domain.TokenForgotPassword, input.ForgotPasswordToken)
	if err != nil {
		return autherror.Unauthorized(err.Error())
	}

	user, err := m.users.FindByID(c.UserContext(), claims.UserID)
	if err != nil {
		return autherror.Internal(err)
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if user.ForgotPasswordToken != input.ForgotPasswordToken {
		return autherror.ErrForgotPasswordTokenBad
	}

	c.Locals(localForgotPasswordClaims, claims)
	return c.Next()
}

// RequireVerifiedUser gates verified-only operations on the access-token
// claim attached earlier in the chain.
func (m *AuthMiddleware) RequireVerifiedUser(c *fiber.Ctx) error {
	claims := AccessClaims(c)
	if claims == nil {
		return autherror.ErrAccessTokenRequired
	}
	if claims.Verify != domain.VerifyVerified {
		return autherror.ErrUserNotVerified
	}
	return c.Next()
}

// RequireCredentials authenticates the login body and attaches the resolved
// user for the login handler.
func (m *AuthMiddleware) RequireCredentials(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := m.userService.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return err
	}

	c.Locals(localAuthenticatedUser, user)
	return c.Next()
}

// RequireFollowTarget resolves the body's followed_user_id to an existing
// user; a malformed or unknown id fails identically.
func (m *AuthMiddleware) RequireFollowTarget(c *fiber.Ctx) error {
	var input dto.FollowInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	return m.resolveFollowTarget(c, input.FollowedUserID)
}

// RequireFollowTargetParam is the path-parameter variant used by unfollow.
func (m *AuthMiddleware) RequireFollowTargetParam(c *fiber.Ctx) error {
	return m.resolveFollowTarget(c, c.Params("user_id"))
}

func (m *AuthMiddleware) resolveFollowTarget(c *fiber.Ctx, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return autherror.ErrFollowedUserNotFound
	}

	user, err := m.users.FindByID(c.UserContext(), id)
	if err != nil {
		return autherror.Internal(err)
	}
	if user == nil {
		return autherror.ErrFollowedUserNotFound
	}

	c.Locals(localFollowTarget, user)
	return c.Next()
}
