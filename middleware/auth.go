package middleware

import (
	"errors"
	"notes-app/models"
	"notes-app/services"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserLookup resolves an acting user id to its account.
type UserLookup interface {
	Get(userID int64) (*models.User, error)
}

// Identity resolves the caller identity header to a user and rejects the
// request with 401 when it is absent, malformed or unknown. Lookup failures
// other than a miss go to the error handler.
func Identity(users UserLookup, header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(header))
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing identity header",
			})
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid identity header",
			})
		}

		user, err := users.Get(userID)
		if err != nil && !errors.Is(err, services.ErrUserNotFound) {
			return err
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown user",
			})
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)
		return c.Next()
	}
}

// AdminRequired must run after Identity.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin privileges required",
			})
		}
		return c.Next()
	}
}

func GetUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return nil
	}
	return user
}

func GetUserID(c *fiber.Ctx) int64 {
	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return 0
	}
	return userID
}
