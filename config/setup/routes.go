package setup

import (
	"notes-app/app"
	"notes-app/handlers"
	"notes-app/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Credential endpoints get a tighter per-IP budget
	credentials := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many login attempts",
			})
		},
	})
	fiberApp.Post("/register", credentials, handlers.Register(application))
	fiberApp.Post("/login", credentials, handlers.Login(application))

	fiberApp.Post("/add_note", handlers.AddNote(application))
	fiberApp.Get("/users/summary", handlers.UsersSummary(application))
	fiberApp.Get("/get_all_notes/:user_id", handlers.GetAllNotes(application))
	fiberApp.Get("/search_notes/:user_id", handlers.SearchNotes(application))
	fiberApp.Get("/get_note/:note_id", handlers.GetNote(application))
	fiberApp.Put("/update_note", handlers.UpdateNote(application))
	fiberApp.Delete("/delete_note/:note_id", handlers.DeleteNote(application))

	identity := middleware.Identity(application.UserService, application.IdentityHeader)

	me := fiberApp.Group("/me", identity)
	me.Get("/", handlers.GetMe(application))
	me.Put("/", handlers.UpdateMe(application))
	me.Delete("/", handlers.DeleteMe(application))

	admin := fiberApp.Group("/admin", identity, middleware.AdminRequired())
	admin.Get("/users", handlers.AdminListUsers(application))
	admin.Post("/users", handlers.AdminCreateUser(application))
	admin.Put("/users/:id", handlers.AdminUpdateUser(application))
	admin.Delete("/users/:id", handlers.AdminDeleteUser(application))
	admin.Get("/notes", handlers.AdminListNotes(application))
	admin.Put("/notes/:id", handlers.AdminUpdateNote(application))
	admin.Delete("/notes/:id", handlers.AdminDeleteNote(application))
}
