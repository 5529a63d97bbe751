package handlers

import (
	"errors"
	"notes-app/app"
	"notes-app/models"
	"notes-app/services"

	"github.com/gofiber/fiber/v2"
)

// AddNote stores a note for the owner named in the body
func AddNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Create(req.Title, req.Content, req.UserID, req.Tags)
		if err != nil {
			return domainError(c, "Failed to save note", err)
		}

		return success(c, fiber.Map{
			"status": "Note added",
			"note":   note,
		})
	}
}

// GetAllNotes lists every note of a user
func GetAllNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "user_id")
		if !ok {
			return badRequest(c, "user_id must be a positive integer")
		}

		notes, err := a.NoteService.ListByOwner(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// SearchNotes filters a user's notes by ?query= (title/content) and ?tag=
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "user_id")
		if !ok {
			return badRequest(c, "user_id must be a positive integer")
		}

		notes, err := a.NoteService.Search(userID, c.Query("query"), c.Query("tag"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to search notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := parseID(c, "note_id")
		if !ok {
			return badRequest(c, "note_id must be a positive integer")
		}

		note, err := a.NoteService.Get(noteID)
		if err != nil {
			return domainError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// UpdateNote overwrites title, content and tags of the note named in the body.
// A missing note is reported as a failed update.
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.NoteService.Update(req.ID, req.Title, req.Content, req.Tags); err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				return badRequest(c, "Failed to update note")
			}
			return serverErrorWithDetails(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"status": "Note updated"})
	}
}

// DeleteNote removes a note; deleting an unknown id succeeds
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := parseID(c, "note_id")
		if !ok {
			return badRequest(c, "Failed to delete note")
		}

		if err := a.NoteService.Delete(noteID); err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"status": "Note deleted"})
	}
}
