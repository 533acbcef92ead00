// Package api serves the Trivia JSON API.
//
// Every response carries "success". Errors use the [server.ErrorBody] envelope with the HTTP
// status repeated in "error". The quiz endpoint reports a drained category as a success with a
// null question and "exhausted": true rather than as an error.
package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/server"
	"github.com/desertthunder/fyyur/internal/services"
	"github.com/desertthunder/fyyur/internal/shared"
)

// CategoriesResponse is the body of GET /categories.
type CategoriesResponse struct {
	Success    bool                  `json:"success"`
	Categories projection.Categories `json:"categories"`
}

// QuestionsResponse is the body of the question listing, search and per-category endpoints.
type QuestionsResponse struct {
	Success         bool                  `json:"success"`
	Questions       []projection.Question `json:"questions"`
	TotalQuestions  int                   `json:"total_questions"`
	Categories      projection.Categories `json:"categories,omitempty"`
	CurrentCategory *string               `json:"current_category"`
}

// QuizResponse is the body of POST /quizzes.
type QuizResponse struct {
	Success   bool                 `json:"success"`
	Question  *projection.Question `json:"question"`
	Exhausted bool                 `json:"exhausted"`
}

// QuestionRequest is the body of POST /questions. A non-nil SearchTerm turns the request into a search.
type QuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexID  `json:"category"`
	Difficulty int     `json:"difficulty"`
	SearchTerm *string `json:"searchTerm"`
}

// SearchRequest is the body of POST /questions/search.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []int64 `json:"previous_questions"`
	QuizCategory      struct {
		ID   flexID `json:"id"`
		Type string `json:"type"`
	} `json:"quiz_category"`
}

// flexID accepts an ID sent either as a JSON number or as a numeric string.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "" {
		*f = 0
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*f = flexID(id)
	return nil
}

// Handler serves the Trivia API. It implements [server.Handler].
type Handler struct {
	trivia *services.Trivia
}

// New returns a Handler backed by trivia.
func New(trivia *services.Trivia) *Handler {
	return &Handler{trivia: trivia}
}

// NewRouter wires the Trivia handler, its middleware stack and the JSON 404 fallback.
func NewRouter(db *sql.DB, trivia *services.Trivia, logger *log.Logger) *server.BasicRouter {
	fail := func(w http.ResponseWriter, r *http.Request, err error) {
		if server.Status(err) >= http.StatusInternalServerError {
			log.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
		}
		server.WriteError(w, err)
	}

	router := server.NewBasicRouter()
	router.Use(
		server.Recover(logger, fail),
		server.RequestLogger(logger),
		server.CORS(),
		server.Transactional(db, fail),
	)
	router.Handler(New(trivia))
	router.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.WriteError(w, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, shared.ErrNotFound))
	}))
	return router
}

// Routes returns the Trivia route table.
func (h *Handler) Routes() []server.Route {
	return []server.Route{
		{Method: http.MethodGet, Path: "/categories", Handler: h.categories},
		{Method: http.MethodGet, Path: "/categories/{id}/questions", Handler: h.questionsByCategory},
		{Method: http.MethodGet, Path: "/questions", Handler: h.questions},
		{Method: http.MethodPost, Path: "/questions", Handler: h.createQuestion},
		{Method: http.MethodPost, Path: "/questions/search", Handler: h.searchQuestions},
		{Method: http.MethodDelete, Path: "/questions/{id}", Handler: h.deleteQuestion},
		{Method: http.MethodPost, Path: "/quizzes", Handler: h.quiz},
	}
}

func store(r *http.Request) (*repositories.Store, error) {
	st := repositories.StoreFrom(r.Context())
	if st == nil {
		return nil, errors.New("no store on request context")
	}
	return st, nil
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	categories, err := h.trivia.Categories(r.Context(), st)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

func (h *Handler) questions(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			server.WriteError(w, fmt.Errorf("%w: page %q", shared.ErrInvalidInput, raw))
			return
		}
	}

	result, err := h.trivia.Questions(r.Context(), st, page)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, listing(result))
}

func (h *Handler) questionsByCategory(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		server.WriteError(w, err)
		return
	}

	result, err := h.trivia.QuestionsByCategory(r.Context(), st, id)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, listing(result))
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		server.WriteError(w, err)
		return
	}

	if err := h.trivia.DeleteQuestion(r.Context(), st, id); err != nil {
		server.WriteError(w, err)
		return
	}

	log.FromContext(r.Context()).Info("question deleted", "id", id)
	server.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": id})
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	var req QuestionRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, err)
		return
	}

	if req.SearchTerm != nil {
		h.search(w, r, st, *req.SearchTerm)
		return
	}

	q := &models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: int64(req.Category),
		Difficulty: req.Difficulty,
	}
	if err := h.trivia.CreateQuestion(r.Context(), st, q); err != nil {
		server.WriteError(w, err)
		return
	}

	log.FromContext(r.Context()).Info("question created", "id", q.ID, "category", q.CategoryID)
	server.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "created": q.ID})
}

func (h *Handler) searchQuestions(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	var req SearchRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, err)
		return
	}
	h.search(w, r, st, req.SearchTerm)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, st *repositories.Store, term string) {
	result, err := h.trivia.SearchQuestions(r.Context(), st, term)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, listing(result))
}

func (h *Handler) quiz(w http.ResponseWriter, r *http.Request) {
	st, err := store(r)
	if err != nil {
		server.WriteError(w, err)
		return
	}

	var req QuizRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, err)
		return
	}

	q, err := h.trivia.NextQuizQuestion(r.Context(), st, int64(req.QuizCategory.ID), req.PreviousQuestions)
	switch {
	case errors.Is(err, shared.ErrExhausted):
		server.WriteJSON(w, http.StatusOK, QuizResponse{Success: true, Exhausted: true})
	case err != nil:
		server.WriteError(w, err)
	default:
		server.WriteJSON(w, http.StatusOK, QuizResponse{Success: true, Question: q})
	}
}

func listing(page services.QuestionPage) QuestionsResponse {
	return QuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
		Categories:      page.Categories,
		CurrentCategory: page.CurrentCategory,
	}
}
