package setup

import (
	"errors"
	"log/slog"
	"notes-app/config"
	"notes-app/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp builds a fiber app whose c.IP() is the first valid address in
// X-Forwarded-For when the peer is one of trustedProxies, and the peer
// address otherwise. Rate limiting keys on that value.
func NewFiberApp(cfg *config.Config, logger *slog.Logger, trustedProxies []string) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:             10 * time.Second,
		WriteTimeout:            10 * time.Second,
		IdleTimeout:             30 * time.Second,
		ReadBufferSize:          8192,
		DisableStartupMessage:   cfg.Env == "production",
		ErrorHandler:            CustomErrorHandler(logger),
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          trustedProxies,
		EnableIPValidation:      true,
	})
}

// CustomErrorHandler answers handler errors with JSON carrying the request id.
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status, message = fe.Code, fe.Message
		}

		requestID := middleware.GetRequestID(c)
		level := slog.LevelError
		if status < fiber.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Context(), level, "request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"status", status,
			"error", err,
		)

		return c.Status(status).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
