package app

import (
	"log/slog"
	"notes-app/database"
	"notes-app/services"
	"notes-app/utils"
	"notes-app/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo           *database.Repository
	AuthService    *services.AuthService
	NoteService    *services.NoteService
	UserService    *services.UserService
	AdminService   *services.AdminService
	Validator      *validator.Validator
	Logger         *slog.Logger
	IdentityHeader string
}

// New wires every service onto the same repository and hasher.
func New(repo *database.Repository, hasher utils.PasswordHasher, identityHeader string, logger *slog.Logger) *App {
	return &App{
		Repo:           repo,
		AuthService:    services.NewAuthService(repo, hasher),
		NoteService:    services.NewNoteService(repo),
		UserService:    services.NewUserService(repo, hasher),
		AdminService:   services.NewAdminService(repo, repo, hasher),
		Validator:      validator.New(),
		Logger:         logger,
		IdentityHeader: identityHeader,
	}
}
