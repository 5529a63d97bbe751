package frontend

import (
	"log/slog"
	"net/http"
	"notes-app/middleware"
	"notes-app/models"
	"notes-app/session"
	"notes-app/templates/pages"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

// Frontend serves the HTML pages and turns form posts into API calls.
type Frontend struct {
	Client       *Client
	Sessions     *session.Store
	Logger       *slog.Logger
	SecureCookie bool
}

func New(client *Client, sessions *session.Store, logger *slog.Logger, secureCookie bool) *Frontend {
	return &Frontend{
		Client:       client,
		Sessions:     sessions,
		Logger:       logger,
		SecureCookie: secureCookie,
	}
}

func render(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Context(), c.Response().BodyWriter())
}

func (f *Frontend) api(c *fiber.Ctx) *Client {
	return f.Client.WithCaller(middleware.GetRequestID(c), c.IP())
}

// apiFailure renders an error page. Client errors from the API keep their
// status and message; anything else is reported as a bad gateway.
func (f *Frontend) apiFailure(c *fiber.Ctx, err error) error {
	sess := middleware.GetSession(c)

	if apiErr, ok := err.(*APIError); ok && apiErr.Status < http.StatusInternalServerError {
		return render(c, apiErr.Status, pages.ErrorPage(sess, apiErr.Status, apiErr.Message))
	}

	f.Logger.Error("api call failed",
		"request_id", middleware.GetRequestID(c),
		"path", c.Path(),
		"error", err,
	)
	return render(c, fiber.StatusBadGateway, pages.ErrorPage(sess, fiber.StatusBadGateway, "The notes service is unavailable"))
}

func (f *Frontend) startSession(c *fiber.Ctx, user *models.User) {
	sess := f.Sessions.Create(user)
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.ID,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   f.SecureCookie,
		SameSite: "Lax",
		Path:     "/",
	})
	f.Logger.Info("session started", "user_id", user.ID)
}

func (f *Frontend) endSession(c *fiber.Ctx) {
	if sessionID := c.Cookies(middleware.SessionCookie); sessionID != "" {
		f.Sessions.Delete(sessionID)
	}
	c.ClearCookie(middleware.SessionCookie)
}

func (f *Frontend) Home(c *fiber.Ctx) error {
	if sess := f.Sessions.Get(c.Cookies(middleware.SessionCookie)); sess != nil {
		return c.Redirect("/notes", fiber.StatusSeeOther)
	}
	return render(c, fiber.StatusOK, pages.LoginPage(""))
}

func (f *Frontend) Login(c *fiber.Ctx) error {
	user, err := f.api(c).Login(c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		if IsStatus(err, fiber.StatusUnauthorized) || IsStatus(err, fiber.StatusBadRequest) {
			return render(c, fiber.StatusUnauthorized, pages.LoginPage("Invalid email or password"))
		}
		return f.apiFailure(c, err)
	}

	f.startSession(c, user)
	return c.Redirect("/notes", fiber.StatusSeeOther)
}

// Register creates the account and logs straight in.
func (f *Frontend) Register(c *fiber.Ctx) error {
	req := models.RegisterRequest{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	client := f.api(c)
	if err := client.Register(req); err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.Status < http.StatusInternalServerError {
			return render(c, apiErr.Status, pages.LoginPage(apiErr.Message))
		}
		return f.apiFailure(c, err)
	}

	user, err := client.Login(req.Email, req.Password)
	if err != nil {
		return f.apiFailure(c, err)
	}

	f.startSession(c, user)
	return c.Redirect("/notes", fiber.StatusSeeOther)
}

func (f *Frontend) Logout(c *fiber.Ctx) error {
	f.endSession(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ListNotes shows the user's notes; ?query= and ?tag= switch to search.
func (f *Frontend) ListNotes(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	query, tag := c.Query("query"), c.Query("tag")

	var notes []models.Note
	var err error
	if query != "" || tag != "" {
		notes, err = f.api(c).SearchNotes(sess.UserID, query, tag)
	} else {
		notes, err = f.api(c).ListNotes(sess.UserID)
	}
	if err != nil {
		return f.apiFailure(c, err)
	}

	return render(c, fiber.StatusOK, pages.NotesPage(sess, notes, query, tag, ""))
}

func (f *Frontend) CreateNote(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	req := models.CreateNoteRequest{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		UserID:  sess.UserID,
		Tags:    c.FormValue("tags"),
	}

	note, err := f.api(c).AddNote(req)
	if err != nil {
		if IsStatus(err, fiber.StatusBadRequest) {
			notes, listErr := f.api(c).ListNotes(sess.UserID)
			if listErr != nil {
				return f.apiFailure(c, listErr)
			}
			return render(c, fiber.StatusBadRequest, pages.NotesPage(sess, notes, "", "", err.(*APIError).Message))
		}
		return f.apiFailure(c, err)
	}

	return c.Redirect("/notes/"+strconv.FormatInt(note.ID, 10), fiber.StatusSeeOther)
}

// ownNote loads the note named by :id. Notes of other users read as missing.
func (f *Frontend) ownNote(c *fiber.Ctx) (*models.Note, error) {
	noteID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || noteID <= 0 {
		return nil, &APIError{Status: fiber.StatusNotFound, Message: "note not found"}
	}

	note, err := f.api(c).GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserID != middleware.GetSession(c).UserID {
		return nil, &APIError{Status: fiber.StatusNotFound, Message: "note not found"}
	}
	return note, nil
}

func (f *Frontend) ShowNote(c *fiber.Ctx) error {
	note, err := f.ownNote(c)
	if err != nil {
		return f.apiFailure(c, err)
	}
	return render(c, fiber.StatusOK, pages.NotePage(middleware.GetSession(c), note, ""))
}

func (f *Frontend) UpdateNote(c *fiber.Ctx) error {
	note, err := f.ownNote(c)
	if err != nil {
		return f.apiFailure(c, err)
	}

	req := models.UpdateNoteRequest{
		ID:      note.ID,
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Tags:    c.FormValue("tags"),
	}
	if err := f.api(c).UpdateNote(req); err != nil {
		if IsStatus(err, fiber.StatusBadRequest) {
			return render(c, fiber.StatusBadRequest, pages.NotePage(middleware.GetSession(c), note, err.(*APIError).Message))
		}
		return f.apiFailure(c, err)
	}

	return c.Redirect("/notes/"+strconv.FormatInt(note.ID, 10), fiber.StatusSeeOther)
}

func (f *Frontend) DeleteNote(c *fiber.Ctx) error {
	note, err := f.ownNote(c)
	if err != nil {
		return f.apiFailure(c, err)
	}
	if err := f.api(c).DeleteNote(note.ID); err != nil {
		return f.apiFailure(c, err)
	}
	return c.Redirect("/notes", fiber.StatusSeeOther)
}

func (f *Frontend) Account(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	user, err := f.api(c).Me(sess.UserID)
	if err != nil {
		return f.accountFailure(c, err)
	}
	return render(c, fiber.StatusOK, pages.AccountPage(sess, user, ""))
}

func (f *Frontend) UpdateAccount(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	req := models.UpdateSelfRequest{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	user, err := f.api(c).UpdateMe(sess.UserID, req)
	if err != nil {
		if IsStatus(err, fiber.StatusBadRequest) || IsStatus(err, fiber.StatusConflict) {
			current := &models.User{ID: sess.UserID, Username: req.Username, Email: req.Email}
			return render(c, err.(*APIError).Status, pages.AccountPage(sess, current, err.(*APIError).Message))
		}
		return f.accountFailure(c, err)
	}

	f.Sessions.Touch(c.Cookies(middleware.SessionCookie), user)
	return c.Redirect("/account", fiber.StatusSeeOther)
}

func (f *Frontend) DeleteAccount(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	if err := f.api(c).DeleteMe(sess.UserID); err != nil {
		return f.accountFailure(c, err)
	}

	f.Sessions.DeleteByUserID(sess.UserID)
	c.ClearCookie(middleware.SessionCookie)
	f.Logger.Info("account deleted", "user_id", sess.UserID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// accountFailure drops sessions whose user the API no longer knows.
func (f *Frontend) accountFailure(c *fiber.Ctx, err error) error {
	if IsStatus(err, fiber.StatusUnauthorized) {
		f.endSession(c)
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return f.apiFailure(c, err)
}

// adminOnly must run after SessionRequired. The API checks again on every call.
func (f *Frontend) adminOnly(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	if sess == nil || !sess.IsAdmin {
		return render(c, fiber.StatusForbidden, pages.ErrorPage(sess, fiber.StatusForbidden, "Admin privileges required"))
	}
	return c.Next()
}

func (f *Frontend) Admin(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	client := f.api(c)

	users, err := client.UsersSummary()
	if err != nil {
		return f.apiFailure(c, err)
	}
	notes, err := client.AdminListNotes(sess.UserID)
	if err != nil {
		return f.apiFailure(c, err)
	}

	return render(c, fiber.StatusOK, pages.AdminPage(sess, users, notes, ""))
}

func (f *Frontend) AdminDeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return f.apiFailure(c, &APIError{Status: fiber.StatusBadRequest, Message: "invalid user id"})
	}

	if err := f.api(c).AdminDeleteUser(middleware.GetSession(c).UserID, userID); err != nil {
		return f.apiFailure(c, err)
	}

	f.Sessions.DeleteByUserID(userID)
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

func (f *Frontend) AdminDeleteNote(c *fiber.Ctx) error {
	noteID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || noteID <= 0 {
		return f.apiFailure(c, &APIError{Status: fiber.StatusBadRequest, Message: "invalid note id"})
	}

	if err := f.api(c).AdminDeleteNote(middleware.GetSession(c).UserID, noteID); err != nil {
		return f.apiFailure(c, err)
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// RegisterRoutes mounts the pages on a fiber app.
func (f *Frontend) RegisterRoutes(app *fiber.App) {
	app.Get("/", f.Home)
	app.Post("/login", f.Login)
	app.Post("/register", f.Register)
	app.Post("/logout", f.Logout)

	auth := middleware.SessionRequired(f.Sessions, "/")

	app.Get("/notes", auth, f.ListNotes)
	app.Post("/notes", auth, f.CreateNote)
	app.Get("/notes/:id", auth, f.ShowNote)
	app.Post("/notes/:id", auth, f.UpdateNote)
	app.Post("/notes/:id/delete", auth, f.DeleteNote)

	app.Get("/account", auth, f.Account)
	app.Post("/account", auth, f.UpdateAccount)
	app.Post("/account/delete", auth, f.DeleteAccount)

	admin := app.Group("/admin", auth, f.adminOnly)
	admin.Get("/", f.Admin)
	admin.Post("/users/:id/delete", f.AdminDeleteUser)
	admin.Post("/notes/:id/delete", f.AdminDeleteNote)
}
