package handlers

import (
	"notes-app/app"
	"notes-app/middleware"
	"notes-app/models"

	"github.com/gofiber/fiber/v2"
)

// UsersSummary reports every user with their note count
func UsersSummary(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := a.UserService.Summary()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to build users summary", err)
		}
		return success(c, fiber.Map{"users": summary})
	}
}

func GetMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"user": middleware.GetUser(c)})
	}
}

func UpdateMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSelfRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.UserService.UpdateSelf(middleware.GetUserID(c), req.Username, req.Email, req.Password)
		if err != nil {
			return domainError(c, "Failed to update account", err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

// DeleteMe removes the caller together with all of their notes
func DeleteMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		if err := a.UserService.DeleteSelf(userID); err != nil {
			return domainError(c, "Failed to delete account", err)
		}

		a.Logger.Info("user deleted own account", "user_id", userID)
		return success(c, fiber.Map{"status": "Account deleted"})
	}
}
