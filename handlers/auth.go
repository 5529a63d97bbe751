package handlers

import (
	"errors"
	"notes-app/app"
	"notes-app/models"
	"notes-app/services"

	"github.com/gofiber/fiber/v2"
)

// Register creates a regular account
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		id, err := a.AuthService.Register(req.Username, req.Email, req.Password)
		if err != nil {
			return domainError(c, "Failed to register user", err)
		}

		a.Logger.Info("user registered", "user_id", id)
		return success(c, fiber.Map{
			"status": "Registration successful",
			"id":     id,
		})
	}
}

// Login checks credentials. Unknown email and wrong password get the same
// response so the endpoint does not reveal which accounts exist.
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.AuthService.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
				a.Logger.Warn("login failed", "reason", err.Error())
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid email or password",
				})
			}
			return serverErrorWithDetails(c, "Failed to log in", err)
		}

		return success(c, fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		})
	}
}
