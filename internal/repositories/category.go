package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/fyyur/internal/models"
)

var _ models.Repository[*models.Category] = (*CategoryRepository)(nil)

// CategoryRepository implements models.Repository[*models.Category].
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository creates a new CategoryRepository with the given database connection
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category. Types are unique.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `INSERT INTO categories (type) VALUES (?)`, category.Type)
	if err != nil {
		return translate(err, "failed to insert category")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read category id: %w", err)
	}
	category.ID = id
	return nil
}

// Get retrieves a category by ID
func (r *CategoryRepository) Get(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, `SELECT id, type FROM categories WHERE id = ?`, id).Scan(&c.ID, &c.Type)
	if err != nil {
		return nil, translate(err, "category %d", id)
	}
	return &c, nil
}

// Update renames an existing category
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `UPDATE categories SET type = ? WHERE id = ?`, category.Type, category.ID)
	if err != nil {
		return translate(err, "failed to update category")
	}
	return requireAffected(result, "category", category.ID)
}

// Delete removes a category. Categories that still hold questions cannot be deleted.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return translate(err, "failed to delete category")
	}
	return requireAffected(result, "category", id)
}

// List retrieves every category ordered by ID. No criteria are supported.
func (r *CategoryRepository) List(ctx context.Context, _ map[string]any) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, translate(err, "failed to query categories")
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return categories, nil
}
