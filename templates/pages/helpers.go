package pages

import (
	"net/url"
	"notes-app/models"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

const dateLayout = "2006-01-02 15:04"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func notePath(id int64) templ.SafeURL {
	return templ.SafeURL("/notes/" + itoa(id))
}

func noteDeletePath(id int64) templ.SafeURL {
	return notePath(id) + "/delete"
}

func adminUserDeletePath(id int64) templ.SafeURL {
	return templ.SafeURL("/admin/users/" + itoa(id) + "/delete")
}

func adminNoteDeletePath(id int64) templ.SafeURL {
	return templ.SafeURL("/admin/notes/" + itoa(id) + "/delete")
}

func tagURL(tag string) templ.SafeURL {
	return templ.SafeURL("/notes?tag=" + url.QueryEscape(tag))
}

func joinTags(raw string) string {
	return strings.Join(models.SplitTags(raw), ", ")
}

// noteForm is shared by the new-note form, where note is nil.
func noteTitle(note *models.Note) string {
	if note == nil {
		return ""
	}
	return note.Title
}

func noteContent(note *models.Note) string {
	if note == nil {
		return ""
	}
	return note.Content
}

func noteTags(note *models.Note) string {
	if note == nil {
		return ""
	}
	return note.Tags
}
