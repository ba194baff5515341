package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/dto"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/service"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
	"github.com/annguyen2k3/project-api-twitter/pkg/constant"
)

// UserHandler owns the profile and social routes gated by the access-token
// and verified-user guards.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims := AccessClaims(c)

	user, err := h.userService.GetUser(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgGetMeSuccess,
		"result":  dto.NewUserOutput(user),
	})
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var input dto.UpdateMeInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	claims := AccessClaims(c)
	user, err := h.userService.UpdateMe(c.UserContext(), claims.UserID, input.ToPatch())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgUpdateMeSuccess,
		"result":  dto.NewUserOutput(user),
	})
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.BadRequest("invalid input")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	claims := AccessClaims(c)
	if err := h.userService.ChangePassword(c.UserContext(), claims.UserID, input.OldPassword, input.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgChangePasswordSuccess,
	})
}

func (h *UserHandler) Follow(c *fiber.Ctx) error {
	claims := AccessClaims(c)
	target := FollowTarget(c)

	if err := h.userService.Follow(c.UserContext(), claims.UserID, target.ID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgFollowSuccess,
	})
}

func (h *UserHandler) Unfollow(c *fiber.Ctx) error {
	claims := AccessClaims(c)
	target := FollowTarget(c)

	if err := h.userService.Unfollow(c.UserContext(), claims.UserID, target.ID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constant.MsgUnfollowSuccess,
	})
}
