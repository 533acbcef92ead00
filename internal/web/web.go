// Package web serves the Fyyur site: server-rendered venue, artist and show pages with HTML forms.
//
// Pages are rendered from embedded html/template files, each parsed together with the shared
// layout. Every request runs inside the transaction opened by [server.Transactional]; handlers
// reach it through [repositories.StoreFrom].
//
// Successful form submissions set a flash cookie and redirect. Failed submissions re-render the
// form with the notice inline and a 4xx status, which also rolls the transaction back.
// Deletes are issued from page script and answer with the JSON envelope.
package web

import (
	"bytes"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/server"
	"github.com/desertthunder/fyyur/internal/services"
	"github.com/desertthunder/fyyur/internal/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists every page template. Each is parsed with the layout and partials.
var pages = []string{
	"home", "venues", "artists", "search", "show_venue", "show_artist",
	"venue_form", "artist_form", "shows", "show_form", "404", "500",
}

// page is the data handed to the layout.
type page struct {
	Title string
	Flash *Flash
	Data  any
}

type choice struct {
	Choices  []string
	Selected string
}

type multiChoice struct {
	Choices  []string
	Selected []string
}

var funcs = template.FuncMap{
	"datetime":  func(t time.Time) string { return t.Format("Mon Jan 2, 2006 3:04 PM") },
	"inputtime": func(t time.Time) string { return t.UTC().Format("2006-01-02T15:04") },
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
	"has":     func(list []string, s string) bool { return slices.Contains(list, s) },
	"states":  func() []string { return States },
	"genres":  func() []string { return Genres },
	"choice":  func(c []string, s string) choice { return choice{Choices: c, Selected: s} },
	"choices": func(c []string, s []string) multiChoice { return multiChoice{Choices: c, Selected: s} },
}

// Handler serves the Fyyur pages. It implements [server.Handler].
type Handler struct {
	dir       *services.Directory
	logger    *log.Logger
	templates map[string]*template.Template
}

// New parses the embedded templates and returns a Handler backed by dir.
func New(dir *services.Directory, logger *log.Logger) (*Handler, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Handler{dir: dir, logger: logger, templates: templates}, nil
}

// NewRouter wires the Fyyur handler, its middleware stack and the 404 fallback.
func NewRouter(db *sql.DB, dir *services.Directory, logger *log.Logger) (*server.BasicRouter, error) {
	h, err := New(dir, logger)
	if err != nil {
		return nil, err
	}

	router := server.NewBasicRouter()
	router.Use(
		server.Recover(logger, h.Fail),
		server.RequestLogger(logger),
		server.Transactional(db, h.Fail),
	)
	router.Handler(h)
	router.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Fail(w, r, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, shared.ErrNotFound))
	}))
	return router, nil
}

// Routes returns the Fyyur route table.
func (h *Handler) Routes() []server.Route {
	return []server.Route{
		{Method: http.MethodGet, Path: "/{$}", Handler: h.home},

		{Method: http.MethodGet, Path: "/venues", Handler: h.listVenues},
		{Method: http.MethodPost, Path: "/venues/search", Handler: h.searchVenues},
		{Method: http.MethodGet, Path: "/venues/create", Handler: h.newVenue},
		{Method: http.MethodPost, Path: "/venues/create", Handler: h.createVenue},
		{Method: http.MethodPost, Path: "/venues", Handler: h.createVenue},
		{Method: http.MethodGet, Path: "/venues/{id}", Handler: h.showVenue},
		{Method: http.MethodGet, Path: "/venues/{id}/edit", Handler: h.editVenue},
		{Method: http.MethodPost, Path: "/venues/{id}/edit", Handler: h.updateVenue},
		{Method: http.MethodDelete, Path: "/venues/{id}", Handler: h.deleteVenue},

		{Method: http.MethodGet, Path: "/artists", Handler: h.listArtists},
		{Method: http.MethodPost, Path: "/artists/search", Handler: h.searchArtists},
		{Method: http.MethodGet, Path: "/artists/create", Handler: h.newArtist},
		{Method: http.MethodPost, Path: "/artists/create", Handler: h.createArtist},
		{Method: http.MethodPost, Path: "/artists", Handler: h.createArtist},
		{Method: http.MethodGet, Path: "/artists/{id}", Handler: h.showArtist},
		{Method: http.MethodGet, Path: "/artists/{id}/edit", Handler: h.editArtist},
		{Method: http.MethodPost, Path: "/artists/{id}/edit", Handler: h.updateArtist},
		{Method: http.MethodDelete, Path: "/artists/{id}", Handler: h.deleteArtist},

		{Method: http.MethodGet, Path: "/shows", Handler: h.listShows},
		{Method: http.MethodGet, Path: "/shows/create", Handler: h.newShow},
		{Method: http.MethodPost, Path: "/shows/create", Handler: h.createShow},
		{Method: http.MethodPost, Path: "/shows", Handler: h.createShow},
	}
}

// Fail renders err as the 404 page or the generic error page. It is the [server.ErrorFunc]
// for the Fyyur middleware stack.
func (h *Handler) Fail(w http.ResponseWriter, r *http.Request, err error) {
	status := server.Status(err)
	logger := log.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	if status == http.StatusNotFound {
		h.render(w, r, status, "404", "Not found", nil, nil)
		return
	}
	h.render(w, r, status, "500", server.Message(status), fmt.Sprintf("%d %s", status, server.Message(status)), nil)
}

// render executes the named page into a buffer and writes it with status.
// A nil flash shows the pending flash cookie, if any.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, flash *Flash) {
	t, ok := h.templates[name]
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if flash == nil {
		flash = popFlash(w, r)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page{Title: title, Flash: flash, Data: data}); err != nil {
		h.logger.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// store returns the request's transaction-bound store.
func (h *Handler) store(w http.ResponseWriter, r *http.Request) (*repositories.Store, bool) {
	st := repositories.StoreFrom(r.Context())
	if st == nil {
		h.Fail(w, r, errors.New("no store on request context"))
		return nil, false
	}
	return st, true
}

// clientError reports whether err should re-render the submitted form rather than fail the request.
func clientError(err error) bool {
	return errors.Is(err, shared.ErrValidationFailed) || errors.Is(err, shared.ErrConstraintViolation)
}

// reason returns the part of err worth showing a visitor.
func reason(err error) string {
	msg := err.Error()
	marker := shared.ErrValidationFailed.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// formFailure builds the notice shown above a re-rendered form.
func formFailure(entity, name string, err error) *Flash {
	if name == "" {
		return &Flash{Kind: "danger", Message: fmt.Sprintf("An error occurred. %s could not be listed: %s", entity, reason(err))}
	}
	return &Flash{Kind: "danger", Message: fmt.Sprintf("An error occurred. %s %s could not be listed: %s", entity, name, reason(err))}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", "Home", nil, nil)
}

func (h *Handler) listShows(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	shows, err := h.dir.Shows(r.Context(), st)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "shows", "Shows", shows, nil)
}
