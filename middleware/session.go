package middleware

import (
	"notes-app/models"
	"notes-app/session"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_id"

// SessionRequired loads the browser session from its cookie, redirecting to
// loginPath when there is none.
func SessionRequired(store *session.Store, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if sessionID != "" {
			if sess := store.Get(sessionID); sess != nil {
				store.Touch(sessionID, nil)
				c.Locals("userID", sess.UserID)
				c.Locals("session", sess)
				return c.Next()
			}
			c.ClearCookie(SessionCookie)
		}

		return c.Redirect(loginPath, fiber.StatusSeeOther)
	}
}

func GetSession(c *fiber.Ctx) *models.Session {
	sess, ok := c.Locals("session").(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
