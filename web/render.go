// Package web renders the server-side HTML pages from templates
// embedded in the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/isdelr/warbler-be/internal/models"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var files embed.FS

// Page is the data passed to every template. CurrentUser is nil for
// anonymous visitors; page-specific values go in Data.
type Page struct {
	CurrentUser *models.User
	Error       string
	Data        map[string]any
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

var funcMap = template.FuncMap{
	"shortDate": func(t time.Time) string {
		return t.Format("2 January 2006")
	},
}

// Pages rendered inside the base layout.
var pageNames = []string{
	"home.html",
	"home_anon.html",
	"signup.html",
	"login.html",
	"users_index.html",
	"users_show.html",
	"following.html",
	"followers.html",
	"likes.html",
	"edit_profile.html",
	"message_new.html",
	"message_show.html",
	"not_found.html",
}

// NewRenderer parses all embedded templates.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcMap).
			ParseFS(files, "templates/layout.html", "templates/message_list.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page. Template failures become a plain 500;
// by then part of the body may already be out, so log and move on.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.templates[name]
	if !ok {
		log.Error().Str("template", name).Msg("Unknown template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", page); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Failed to render template")
	}
}
