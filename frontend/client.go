package frontend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"notes-app/middleware"
	"notes-app/models"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client calls the notes API over HTTP.
type Client struct {
	baseURL        string
	identityHeader string
	timeout        time.Duration
	requestID      string
	clientIP       string
}

func NewClient(baseURL, identityHeader string, timeout time.Duration) *Client {
	return &Client{
		baseURL:        baseURL,
		identityHeader: identityHeader,
		timeout:        timeout,
	}
}

// WithCaller returns a copy that forwards the request id and the browser's
// address, so the API rate limits each browser on its own.
func (c *Client) WithCaller(requestID, clientIP string) *Client {
	copied := *c
	copied.requestID = requestID
	copied.clientIP = clientIP
	return &copied
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

// send executes the request. actorID > 0 adds the identity header; out, when
// non-nil, receives the decoded body of a successful answer.
func (c *Client) send(agent *fiber.Agent, actorID int64, out any) error {
	agent.Timeout(c.timeout)
	if c.requestID != "" {
		agent.Set(middleware.RequestIDHeader, c.requestID)
	}
	if c.clientIP != "" {
		agent.Set(fiber.HeaderXForwardedFor, c.clientIP)
	}
	if actorID > 0 {
		agent.Set(c.identityHeader, strconv.FormatInt(actorID, 10))
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("api request failed: %w", errors.Join(errs...))
	}

	if code >= http.StatusBadRequest {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &payload)
		if payload.Error == "" {
			payload.Error = http.StatusText(code)
		}
		return &APIError{Status: code, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	return nil
}

func (c *Client) Register(req models.RegisterRequest) error {
	return c.send(fiber.Post(c.url("/register")).JSON(req), 0, nil)
}

func (c *Client) Login(email, password string) (*models.User, error) {
	var user models.User
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.send(fiber.Post(c.url("/login")).JSON(req), 0, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type notesEnvelope struct {
	Notes []models.Note `json:"notes"`
}

func (c *Client) ListNotes(userID int64) ([]models.Note, error) {
	var out notesEnvelope
	if err := c.send(fiber.Get(c.url("/get_all_notes/%d", userID)), 0, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (c *Client) SearchNotes(userID int64, query, tag string) ([]models.Note, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("tag", tag)

	var out notesEnvelope
	if err := c.send(fiber.Get(c.url("/search_notes/%d?%s", userID, params.Encode())), 0, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

type noteEnvelope struct {
	Note *models.Note `json:"note"`
}

func (c *Client) GetNote(noteID int64) (*models.Note, error) {
	var out noteEnvelope
	if err := c.send(fiber.Get(c.url("/get_note/%d", noteID)), 0, &out); err != nil {
		return nil, err
	}
	return out.Note, nil
}

func (c *Client) AddNote(req models.CreateNoteRequest) (*models.Note, error) {
	var out noteEnvelope
	if err := c.send(fiber.Post(c.url("/add_note")).JSON(req), 0, &out); err != nil {
		return nil, err
	}
	return out.Note, nil
}

func (c *Client) UpdateNote(req models.UpdateNoteRequest) error {
	return c.send(fiber.Put(c.url("/update_note")).JSON(req), 0, nil)
}

func (c *Client) DeleteNote(noteID int64) error {
	return c.send(fiber.Delete(c.url("/delete_note/%d", noteID)), 0, nil)
}

type userEnvelope struct {
	User *models.User `json:"user"`
}

func (c *Client) Me(actorID int64) (*models.User, error) {
	var out userEnvelope
	if err := c.send(fiber.Get(c.url("/me")), actorID, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) UpdateMe(actorID int64, req models.UpdateSelfRequest) (*models.User, error) {
	var out userEnvelope
	if err := c.send(fiber.Put(c.url("/me")).JSON(req), actorID, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) DeleteMe(actorID int64) error {
	return c.send(fiber.Delete(c.url("/me")), actorID, nil)
}

func (c *Client) UsersSummary() ([]models.UserSummary, error) {
	var out struct {
		Users []models.UserSummary `json:"users"`
	}
	if err := c.send(fiber.Get(c.url("/users/summary")), 0, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) AdminListNotes(actorID int64) ([]models.NoteWithOwner, error) {
	var out struct {
		Notes []models.NoteWithOwner `json:"notes"`
	}
	if err := c.send(fiber.Get(c.url("/admin/notes")), actorID, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (c *Client) AdminDeleteUser(actorID, userID int64) error {
	return c.send(fiber.Delete(c.url("/admin/users/%d", userID)), actorID, nil)
}

func (c *Client) AdminDeleteNote(actorID, noteID int64) error {
	return c.send(fiber.Delete(c.url("/admin/notes/%d", noteID)), actorID, nil)
}
