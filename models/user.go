package models

// User is an account holder. Password holds whatever the configured hasher
// produced and is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserSummary is one row of the per-user note count report.
type UserSummary struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	NotesCount int    `json:"notes_count"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateSelfRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type AdminCreateUserRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
	IsAdmin  bool   `json:"is_admin"`
}

// AdminUpdateUserRequest leaves the stored password untouched when Password is empty.
type AdminUpdateUserRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"max=255"`
	IsAdmin  bool   `json:"is_admin"`
}
