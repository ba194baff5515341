package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

// ErrorHandler is the fiber app-level error handler. It maps taxonomy errors
// to their status and field map; anything unrecognized becomes a well-formed
// 500 with the underlying message kept for diagnostics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *autherror.Error
	if errors.As(err, &appErr) {
		body := fiber.Map{"message": appErr.Message}
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
		return c.Status(appErr.Status()).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
