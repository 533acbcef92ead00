// package models defines the data model for the directory and trivia services
package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/fyyur/internal/shared"
	"github.com/go-playground/validator/v10"
)

// Model defines the base interface for all persistent models.
type Model interface {
	Key() int64      // Key returns the unique identifier for this model, zero before insert
	Validate() error // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(ctx context.Context, model T) error                      // Create inserts a new model and assigns its ID
	Get(ctx context.Context, id int64) (T, error)                   // Get retrieves a model by its ID
	Update(ctx context.Context, model T) error                      // Update overwrites every field of an existing model
	Delete(ctx context.Context, id int64) error                     // Delete removes a model from the database by its ID
	List(ctx context.Context, criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs struct validation and folds field failures into a single [shared.ErrValidationFailed].
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", shared.ErrValidationFailed, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", shared.ErrValidationFailed, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a URL"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// NormalizeGenres trims each genre, drops empty entries and duplicates, and keeps first-seen order.
//
// A single comma-joined string is split, so legacy "Jazz,Folk" values become two genres.
func NormalizeGenres(genres []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, raw := range genres {
		for _, g := range strings.Split(raw, ",") {
			g = strings.TrimSpace(g)
			key := strings.ToLower(g)
			if g == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, g)
		}
	}
	return out
}
