package models

import (
	"strings"
	"time"
	"unicode"
)

type Note struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	UserID       int64     `json:"user_id"`
	Tags         string    `json:"tags"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// NoteWithOwner is a note joined with its owner's username for the admin listing.
type NoteWithOwner struct {
	Note
	Username string `json:"username"`
}

// SplitTags breaks a raw tags field on commas and whitespace, dropping empties.
// Storage keeps the field verbatim; this is a read-side view only.
func SplitTags(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=200"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Tags    string `json:"tags" validate:"max=500,tags"`
}

type UpdateNoteRequest struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,notblank,max=200"`
	Content string `json:"content"`
	Tags    string `json:"tags" validate:"max=500,tags"`
}

// AdminUpdateNoteRequest identifies the note through the path instead of the body.
type AdminUpdateNoteRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=200"`
	Content string `json:"content"`
	Tags    string `json:"tags" validate:"max=500,tags"`
}
