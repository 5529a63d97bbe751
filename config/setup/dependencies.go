package setup

import (
	"fmt"
	"log/slog"
	"notes-app/app"
	"notes-app/config"
	"notes-app/database"
	"notes-app/frontend"
	"notes-app/services"
	"notes-app/session"
	"notes-app/utils"
	"time"
)

const (
	apiClientTimeout       = 10 * time.Second
	sessionCleanupInterval = 15 * time.Minute
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp builds the API dependencies and makes sure the default admin
// exists. It must finish before the API starts listening.
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}
	if cfg.PasswordScheme == "plain" {
		logger.Warn("passwords are stored in plaintext; set PASSWORD_SCHEME=bcrypt to hash them")
	}

	repo := database.NewRepository(db)

	admin := services.DefaultAdmin{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}
	if _, err := services.EnsureDefaultAdmin(repo, hasher, admin, logger); err != nil {
		return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	application := app.New(repo, hasher, cfg.IdentityHeader, logger)
	logger.Info("application initialized", "password_scheme", cfg.PasswordScheme)

	return application, nil
}

// InitFrontend builds the HTML frontend and starts its session cleanup.
func InitFrontend(cfg *config.Config, logger *slog.Logger) *frontend.Frontend {
	sessions := session.NewStore(cfg.SessionTTL)
	sessions.StartCleanupRoutine(sessionCleanupInterval)
	logger.Info("session cleanup routine started", "ttl", cfg.SessionTTL)

	client := frontend.NewClient(cfg.APIURL, cfg.IdentityHeader, apiClientTimeout)
	return frontend.New(client, sessions, logger, cfg.Env == "production")
}

// Shutdown performs graceful shutdown of all services
func Shutdown(fe *frontend.Frontend, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if fe != nil {
		fe.Sessions.Stop()
		logger.Info("session cleanup stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
