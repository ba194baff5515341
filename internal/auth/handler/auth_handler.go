package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/dto"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/service"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
	"github.com/annguyen2k3/project-api-twitter/pkg/constant"
)

// AuthHandler owns the session-lifecycle routes: register, login, logout,
// refresh and the email/password token flows.
type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	tokens, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constant.MsgRegisterSuccess,
		"result":  tokens,
	})
}

// Login runs after the credential guard; the pipeline already resolved the
// user.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	user := AuthenticatedUser(c)
	if user == nil {
		return autherror.ErrPasswordIncorrect
	}

	tokens, err := h.userService.Login(c.UserContext(), user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgLoginSuccess,
		"result":  tokens,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.userService.Logout(c.UserContext(), RefreshTokenValue(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgLogoutSuccess,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	tokens, err := h.userService.Refresh(c.UserContext(), RefreshTokenValue(c), RefreshClaims(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgRefreshSuccess,
		"result":  tokens,
	})
}

// VerifyEmail applies the Unverified→Verified transition. The already-verified
// short-circuit lives here, before the operation, so the transition itself
// runs at most once.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	claims := EmailVerifyClaims(c)

	user, err := h.userService.GetUser(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}
	if user.EmailVerifyToken == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": constant.MsgEmailAlreadyVerified,
		})
	}

	tokens, err := h.userService.VerifyEmail(c.UserContext(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgEmailVerifySuccess,
		"result":  tokens,
	})
}

func (h *AuthHandler) ResendVerifyEmail(c *fiber.Ctx) error {
	claims := AccessClaims(c)

	user, err := h.userService.GetUser(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}
	if user.Verify == domain.VerifyVerified {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": constant.MsgEmailAlreadyVerified,
		})
	}

	if err := h.userService.ResendVerifyEmail(c.UserContext(), user); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgResendVerifySuccess,
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := h.userService.ForgotPassword(c.UserContext(), input.Email); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgCheckEmailToResetPassword,
	})
}

// VerifyForgotPassword only confirms the reset token; the guard already did
// the work.
func (h *AuthHandler) VerifyForgotPassword(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgVerifyForgotPasswordSuccess,
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	claims := ForgotPasswordClaims(c)
	if err := h.userService.ResetPassword(c.UserContext(), claims.UserID, input.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgResetPasswordSuccess,
	})
}
