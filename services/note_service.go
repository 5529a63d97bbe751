package services

import (
	"errors"
	"notes-app/database"
	"notes-app/models"
	"strings"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create stores a new note and returns it as persisted
func (ns *NoteService) Create(title, content string, userID int64, tags string) (*models.Note, error) {
	id, err := ns.repo.CreateNote(strings.TrimSpace(title), content, userID, tags)
	if err != nil {
		if errors.Is(err, database.ErrUnknownOwner) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return ns.Get(id)
}

// Get retrieves a note by id
func (ns *NoteService) Get(noteID int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// ListByOwner retrieves all notes of a user
func (ns *NoteService) ListByOwner(userID int64) ([]models.Note, error) {
	return ns.repo.GetNotesByUser(userID)
}

// Search filters a user's notes; empty query or tag means no filter on that field
func (ns *NoteService) Search(userID int64, query, tag string) ([]models.Note, error) {
	return ns.repo.SearchNotes(userID, strings.TrimSpace(query), strings.TrimSpace(tag))
}

// Update overwrites a note's editable fields
func (ns *NoteService) Update(noteID int64, title, content, tags string) error {
	return noteWriteErr(ns.repo.UpdateNote(noteID, strings.TrimSpace(title), content, tags))
}

// Delete removes a note; unknown ids succeed
func (ns *NoteService) Delete(noteID int64) error {
	return ns.repo.DeleteNote(noteID)
}
