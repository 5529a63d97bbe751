package handlers

import (
	"notes-app/app"
	"notes-app/middleware"
	"notes-app/models"

	"github.com/gofiber/fiber/v2"
)

// Admin handlers are mounted behind Identity and AdminRequired.

func AdminListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.AdminService.ListUsers()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list users", err)
		}
		return success(c, fiber.Map{"users": users})
	}
}

func AdminCreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AdminCreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		id, err := a.AdminService.CreateUser(req.Username, req.Email, req.Password, req.IsAdmin)
		if err != nil {
			return domainError(c, "Failed to create user", err)
		}

		a.Logger.Info("admin created user",
			"actor_id", middleware.GetUserID(c),
			"user_id", id,
			"is_admin", req.IsAdmin,
		)
		return success(c, fiber.Map{"status": "User created", "id": id})
	}
}

func AdminUpdateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "id")
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		var req models.AdminUpdateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.AdminService.UpdateUser(userID, req.Username, req.Email, req.Password, req.IsAdmin)
		if err != nil {
			return domainError(c, "Failed to update user", err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

// AdminDeleteUser removes a user and their notes. Admins cannot delete themselves here.
func AdminDeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "id")
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		actorID := middleware.GetUserID(c)
		if err := a.AdminService.DeleteUser(actorID, userID); err != nil {
			return domainError(c, "Failed to delete user", err)
		}

		a.Logger.Info("admin deleted user", "actor_id", actorID, "user_id", userID)
		return success(c, fiber.Map{"status": "User deleted"})
	}
}

func AdminListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.AdminService.ListNotes()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

func AdminUpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := parseID(c, "id")
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		var req models.AdminUpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.AdminService.UpdateNote(noteID, req.Title, req.Content, req.Tags); err != nil {
			return domainError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"status": "Note updated"})
	}
}

func AdminDeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := parseID(c, "id")
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		if err := a.AdminService.DeleteNote(noteID); err != nil {
			return domainError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"status": "Note deleted"})
	}
}
