package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/quiz"
	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/services"
	tu "github.com/desertthunder/fyyur/internal/testing"
)

type triviaAPI struct {
	t      *testing.T
	st     *repositories.Store
	router http.Handler
}

// newTriviaAPI serves an API over two categories: Science with science questions and Art with two.
func newTriviaAPI(t *testing.T, science int) *triviaAPI {
	t.Helper()
	db := tu.SetupTestDB(t)
	st := repositories.NewStore(db)
	ctx := context.Background()

	for _, kind := range []string{"Science", "Art"} {
		if err := st.Categories.Create(ctx, &models.Category{Type: kind}); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	add := func(text string, category int64) {
		q := &models.Question{Question: text, Answer: "Answer", CategoryID: category, Difficulty: 2}
		if err := st.Questions.Create(ctx, q); err != nil {
			t.Fatalf("failed to create question: %v", err)
		}
	}
	for i := range science {
		add(fmt.Sprintf("What is science fact %d?", i+1), 1)
	}
	add("Which Dutch graphic artist drew impossible staircases?", 2)
	add("Who painted La Giaconda?", 2)

	trivia := services.NewTrivia(10, quiz.NewSelector(rand.New(rand.NewPCG(1, 1))))
	return &triviaAPI{t: t, st: st, router: NewRouter(db, trivia, log.New(&bytes.Buffer{}))}
}

func (a *triviaAPI) call(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			a.t.Fatalf("%s %s: invalid JSON %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int, success bool, body map[string]any) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if body["success"] != success {
		t.Errorf("expected success=%v, got %v", success, body["success"])
	}
}

func TestCategories(t *testing.T) {
	a := newTriviaAPI(t, 1)
	rec, body := a.call(http.MethodGet, "/categories", "")

	expectStatus(t, rec, http.StatusOK, true, body)

	categories, ok := body["categories"].(map[string]any)
	if !ok || categories["1"] != "Science" || categories["2"] != "Art" {
		t.Errorf("unexpected categories %v", body["categories"])
	}

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}

func TestQuestions(t *testing.T) {
	t.Run("Paginated", func(t *testing.T) {
		a := newTriviaAPI(t, 12)
		rec, body := a.call(http.MethodGet, "/questions?page=2", "")

		expectStatus(t, rec, http.StatusOK, true, body)

		if got := len(body["questions"].([]any)); got != 4 {
			t.Errorf("expected 4 questions on page 2, got %d", got)
		}
		if body["total_questions"] != float64(14) {
			t.Errorf("expected 14 total questions, got %v", body["total_questions"])
		}
		if _, ok := body["categories"].(map[string]any); !ok {
			t.Error("expected categories on the listing")
		}
		if v, ok := body["current_category"]; !ok || v != nil {
			t.Errorf("expected null current_category, got %v", v)
		}
	})

	t.Run("DefaultsToFirstPage", func(t *testing.T) {
		a := newTriviaAPI(t, 12)
		_, body := a.call(http.MethodGet, "/questions", "")

		if got := len(body["questions"].([]any)); got != 10 {
			t.Errorf("expected 10 questions, got %d", got)
		}
	})

	t.Run("PastTheEnd", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodGet, "/questions?page=1000", "")

		expectStatus(t, rec, http.StatusNotFound, false, body)
		if body["error"] != float64(404) || body["message"] != "Not found" {
			t.Errorf("unexpected error body %v", body)
		}
	})

	t.Run("HugePage", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodGet, "/questions?page=1844674407370955162", "")

		expectStatus(t, rec, http.StatusNotFound, false, body)
	})

	t.Run("BadPage", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodGet, "/questions?page=two", "")

		expectStatus(t, rec, http.StatusBadRequest, false, body)
	})
}

func TestDeleteQuestion(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodDelete, "/questions/1", "")

		expectStatus(t, rec, http.StatusOK, true, body)
		if body["deleted"] != float64(1) {
			t.Errorf("expected deleted=1, got %v", body["deleted"])
		}

		if _, err := a.st.Questions.Get(context.Background(), 1); err == nil {
			t.Error("expected question to be gone")
		}
	})

	t.Run("Absent", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodDelete, "/questions/1000", "")

		expectStatus(t, rec, http.StatusNotFound, false, body)
	})
}

func TestCreateQuestion(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		a := newTriviaAPI(t, 0)
		rec, body := a.call(http.MethodPost, "/questions",
			`{"question": "What is the capital of Peru?", "answer": "Lima", "category": "2", "difficulty": 3}`)

		expectStatus(t, rec, http.StatusOK, true, body)

		id := int64(body["created"].(float64))
		q, err := a.st.Questions.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("failed to get created question: %v", err)
		}
		if q.Answer != "Lima" || q.CategoryID != 2 || q.Difficulty != 3 {
			t.Errorf("unexpected stored question %+v", q)
		}
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing answer", `{"question": "Q?", "category": 1, "difficulty": 1}`, http.StatusBadRequest},
		{"difficulty out of range", `{"question": "Q?", "answer": "A", "category": 1, "difficulty": 9}`, http.StatusBadRequest},
		{"unknown category", `{"question": "Q?", "answer": "A", "category": 42, "difficulty": 1}`, http.StatusUnprocessableEntity},
		{"malformed", `{"question":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTriviaAPI(t, 0)
			rec, body := a.call(http.MethodPost, "/questions", tt.body)

			expectStatus(t, rec, tt.status, false, body)

			all, err := a.st.Questions.List(context.Background(), nil)
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(all) != 2 {
				t.Errorf("expected nothing stored, got %d questions", len(all))
			}
		})
	}
}

func TestSearchQuestions(t *testing.T) {
	a := newTriviaAPI(t, 3)

	for _, path := range []string{"/questions/search", "/questions"} {
		t.Run(path, func(t *testing.T) {
			rec, body := a.call(http.MethodPost, path, `{"searchTerm": "PAINTED"}`)

			expectStatus(t, rec, http.StatusOK, true, body)
			if body["total_questions"] != float64(1) {
				t.Errorf("expected 1 match, got %v", body["total_questions"])
			}
		})
	}

	t.Run("NoMatch", func(t *testing.T) {
		rec, body := a.call(http.MethodPost, "/questions/search", `{"searchTerm": "zebra crossing"}`)

		expectStatus(t, rec, http.StatusOK, true, body)
		if qs, ok := body["questions"].([]any); !ok || len(qs) != 0 {
			t.Errorf("expected empty questions list, got %v", body["questions"])
		}
	})
}

func TestQuestionsByCategory(t *testing.T) {
	a := newTriviaAPI(t, 3)

	rec, body := a.call(http.MethodGet, "/categories/2/questions", "")
	expectStatus(t, rec, http.StatusOK, true, body)

	if body["total_questions"] != float64(2) || body["current_category"] != "Art" {
		t.Errorf("unexpected body %v", body)
	}

	rec, body = a.call(http.MethodGet, "/categories/9/questions", "")
	expectStatus(t, rec, http.StatusNotFound, false, body)
}

func TestQuiz(t *testing.T) {
	t.Run("Draw", func(t *testing.T) {
		a := newTriviaAPI(t, 3)
		rec, body := a.call(http.MethodPost, "/quizzes",
			`{"previous_questions": [4], "quiz_category": {"id": "2", "type": "Art"}}`)

		expectStatus(t, rec, http.StatusOK, true, body)

		q, ok := body["question"].(map[string]any)
		if !ok || q["id"] != float64(5) {
			t.Errorf("expected the only unseen art question 5, got %v", body["question"])
		}
		if body["exhausted"] != false {
			t.Error("expected exhausted=false")
		}
	})

	t.Run("AllCategories", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodPost, "/quizzes",
			`{"previous_questions": [1, 2], "quiz_category": {"id": 0, "type": "click"}}`)

		expectStatus(t, rec, http.StatusOK, true, body)
		if q := body["question"].(map[string]any); q["id"] != float64(3) {
			t.Errorf("expected question 3, got %v", q)
		}
	})

	t.Run("Exhausted", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodPost, "/quizzes",
			`{"previous_questions": [2, 3], "quiz_category": {"id": 2}}`)

		expectStatus(t, rec, http.StatusOK, true, body)
		if body["question"] != nil || body["exhausted"] != true {
			t.Errorf("expected null question and exhausted, got %v", body)
		}
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		a := newTriviaAPI(t, 1)
		rec, body := a.call(http.MethodPost, "/quizzes", `{"previous_questions": [], "quiz_category": {"id": 12}}`)

		expectStatus(t, rec, http.StatusUnprocessableEntity, false, body)
	})
}

func TestRouting(t *testing.T) {
	a := newTriviaAPI(t, 0)

	rec, body := a.call(http.MethodGet, "/nope", "")
	expectStatus(t, rec, http.StatusNotFound, false, body)

	rec, _ = a.call(http.MethodOptions, "/questions", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected preflight 204, got %d", rec.Code)
	}
}
