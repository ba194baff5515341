package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the users API. Guard order matters: each route's chain
// runs left to right and stops at the first failure.
func RegisterRoutes(app *fiber.App, h *AuthHandler, uh *UserHandler, m *AuthMiddleware) {
	users := app.Group("/users")

	users.Post("/register", h.Register)
	users.Post("/login", m.RequireCredentials, h.Login)
	users.Post("/logout", m.RequireAccessToken, m.RequireRefreshToken, h.Logout)
	users.Post("/refresh-token", m.RequireRefreshToken, h.Refresh)

	users.Post("/verify-email", m.RequireEmailVerifyToken, h.VerifyEmail)
	users.Post("/resend-verify-email", m.RequireAccessToken, h.ResendVerifyEmail)

	users.Post("/forgot-password", h.ForgotPassword)
	users.Post("/verify-forgot-password", m.RequireForgotPasswordToken, h.VerifyForgotPassword)
	users.Post("/reset-password", m.RequireForgotPasswordToken, h.ResetPassword)

	users.Get("/me", m.RequireAccessToken, uh.Me)
	users.Patch("/me", m.RequireAccessToken, m.RequireVerifiedUser, uh.UpdateMe)
	users.Put("/change-password", m.RequireAccessToken, m.RequireVerifiedUser, uh.ChangePassword)

	users.Post("/follow", m.RequireAccessToken, m.RequireVerifiedUser, m.RequireFollowTarget, uh.Follow)
	users.Delete("/follow/:user_id", m.RequireAccessToken, m.RequireVerifiedUser, m.RequireFollowTargetParam, uh.Unfollow)
}
