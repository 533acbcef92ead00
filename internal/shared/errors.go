package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Domain errors
	ErrNotFound            = fmt.Errorf("not found")
	ErrValidationFailed    = fmt.Errorf("validation failed")
	ErrConstraintViolation = fmt.Errorf("constraint violation")
	ErrExhausted           = fmt.Errorf("no eligible item remains")

	// API errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
