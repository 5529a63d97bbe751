package middleware

import "github.com/gofiber/fiber/v2"

const (
	// APIContentPolicy fits JSON-only responses.
	APIContentPolicy = "default-src 'none'; frame-ancestors 'none'"

	// PageContentPolicy fits the server-rendered pages: inline styles, local forms.
	PageContentPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; form-action 'self'; frame-ancestors 'none'"
)

func Security(contentPolicy string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "same-origin")
		c.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Set("Content-Security-Policy", contentPolicy)
		return c.Next()
	}
}
