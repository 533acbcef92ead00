package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/fyyur/internal/models"
)

var _ models.Repository[*models.Question] = (*QuestionRepository)(nil)

// QuestionRepository implements models.Repository[*models.Question].
type QuestionRepository struct {
	db DBTX
}

// NewQuestionRepository creates a new QuestionRepository with the given database connection
func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question. The category must exist.
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (question, answer, category_id, difficulty) VALUES (?, ?, ?, ?)`,
		q.Question, q.Answer, q.CategoryID, q.Difficulty,
	)
	if err != nil {
		return translate(err, "failed to insert question")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read question id: %w", err)
	}
	q.ID = id
	return nil
}

// Get retrieves a question by ID
func (r *QuestionRepository) Get(ctx context.Context, id int64) (*models.Question, error) {
	var q models.Question
	err := r.db.QueryRowContext(ctx,
		`SELECT id, question, answer, category_id, difficulty FROM questions WHERE id = ?`, id,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.CategoryID, &q.Difficulty)
	if err != nil {
		return nil, translate(err, "question %d", id)
	}
	return &q, nil
}

// Update overwrites every field of an existing question
func (r *QuestionRepository) Update(ctx context.Context, q *models.Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE questions SET question = ?, answer = ?, category_id = ?, difficulty = ? WHERE id = ?`,
		q.Question, q.Answer, q.CategoryID, q.Difficulty, q.ID,
	)
	if err != nil {
		return translate(err, "failed to update question")
	}
	return requireAffected(result, "question", q.ID)
}

// Delete removes a question by ID
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return translate(err, "failed to delete question")
	}
	return requireAffected(result, "question", id)
}

// List retrieves questions ordered by ID, optionally filtered by "category_id"
func (r *QuestionRepository) List(ctx context.Context, criteria map[string]any) ([]*models.Question, error) {
	query := `SELECT id, question, answer, category_id, difficulty FROM questions WHERE 1 = 1`
	args := []any{}

	if categoryID, ok := criteriaID(criteria, "category_id"); ok {
		query += " AND category_id = ?"
		args = append(args, categoryID)
	}

	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "failed to query questions")
	}
	defer rows.Close()

	questions := []*models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return questions, nil
}
