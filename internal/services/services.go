package services

import (
	"errors"
	"fmt"

	"github.com/desertthunder/fyyur/internal/shared"
)

// mustExist converts a NotFound on a referenced record into a ConstraintViolation.
func mustExist(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return fmt.Errorf("%s %d does not exist: %w", entity, id, shared.ErrConstraintViolation)
	}
	return err
}
