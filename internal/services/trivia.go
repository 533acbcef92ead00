package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/query"
	"github.com/desertthunder/fyyur/internal/quiz"
	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/shared"
)

// QuestionPage is a list of questions with the context the Trivia client renders next to it.
type QuestionPage struct {
	Questions       []projection.Question
	TotalQuestions  int
	Categories      projection.Categories
	CurrentCategory *string // nil when the list spans every category
}

// Trivia serves the question and quiz operations of the Trivia API.
type Trivia struct {
	pageSize int
	selector *quiz.Selector
}

// NewTrivia creates a Trivia service. A non-positive pageSize falls back to [query.DefaultPageSize]
// and a nil selector draws from the global random source.
func NewTrivia(pageSize int, selector *quiz.Selector) *Trivia {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	if selector == nil {
		selector = quiz.NewSelector(nil)
	}
	return &Trivia{pageSize: pageSize, selector: selector}
}

// PageSize reports the number of questions per page.
func (t *Trivia) PageSize() int { return t.pageSize }

// Categories returns every category keyed by ID.
func (t *Trivia) Categories(ctx context.Context, st *repositories.Store) (projection.Categories, error) {
	categories, err := st.Categories.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return projection.CategoryMap(categories), nil
}

// Questions returns one page of all questions. A page with no questions is [shared.ErrNotFound].
func (t *Trivia) Questions(ctx context.Context, st *repositories.Store, page int) (QuestionPage, error) {
	questions, err := st.Questions.List(ctx, nil)
	if err != nil {
		return QuestionPage{}, err
	}

	current := query.Paginate(questions, page, t.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, fmt.Errorf("questions page %d: %w", page, shared.ErrNotFound)
	}

	categories, err := t.Categories(ctx, st)
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:      projection.TriviaList(current),
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

func (t *Trivia) DeleteQuestion(ctx context.Context, st *repositories.Store, id int64) error {
	return st.Questions.Delete(ctx, id)
}

// CreateQuestion stores a new question. Its category must exist.
func (t *Trivia) CreateQuestion(ctx context.Context, st *repositories.Store, q *models.Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := st.Categories.Get(ctx, q.CategoryID); err != nil {
		return mustExist(err, "category", q.CategoryID)
	}

	return st.Questions.Create(ctx, q)
}

// SearchQuestions returns every question whose text contains term. No match is an empty page.
func (t *Trivia) SearchQuestions(ctx context.Context, st *repositories.Store, term string) (QuestionPage, error) {
	questions, err := st.Questions.List(ctx, nil)
	if err != nil {
		return QuestionPage{}, err
	}

	matches := query.Search(questions, term, func(q *models.Question) string { return q.Question })
	return QuestionPage{
		Questions:      projection.TriviaList(matches),
		TotalQuestions: len(matches),
	}, nil
}

// QuestionsByCategory returns every question filed under the category.
func (t *Trivia) QuestionsByCategory(ctx context.Context, st *repositories.Store, categoryID int64) (QuestionPage, error) {
	category, err := st.Categories.Get(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, err
	}

	questions, err := st.Questions.List(ctx, map[string]any{"category_id": category.ID})
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:       projection.TriviaList(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: &category.Type,
	}, nil
}

// NextQuizQuestion draws a question from the category, or from all categories when categoryID
// is [quiz.AllCategories], skipping the IDs in previous.
//
// An unknown category is [shared.ErrConstraintViolation]. When nothing unseen is left the
// error wraps [shared.ErrExhausted].
func (t *Trivia) NextQuizQuestion(ctx context.Context, st *repositories.Store, categoryID int64, previous []int64) (*projection.Question, error) {
	criteria := map[string]any{}
	if categoryID != quiz.AllCategories {
		if _, err := st.Categories.Get(ctx, categoryID); err != nil {
			return nil, mustExist(err, "category", categoryID)
		}
		criteria["category_id"] = categoryID
	}

	pool, err := st.Questions.List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	q, err := t.selector.Next(pool, categoryID, previous)
	if errors.Is(err, shared.ErrExhausted) {
		return nil, err
	} else if err != nil {
		return nil, fmt.Errorf("failed to draw question: %w", err)
	}

	out := projection.Trivia(q)
	return &out, nil
}
