package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/desertthunder/fyyur/internal/shared"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Status maps an error onto its HTTP status code.
//
//   - [shared.ErrNotFound] : 404
//   - [shared.ErrValidationFailed], [shared.ErrInvalidInput] : 400
//   - [shared.ErrConstraintViolation] : 422
//   - anything else : 500
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	// Malformed or incomplete input is 400. 422 is kept for well-formed input that
	// references a missing record.
	case errors.Is(err, shared.ErrValidationFailed), errors.Is(err, shared.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the public message for a status code.
func Message(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Not found"
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusUnprocessableEntity:
		return "Unprocessable entity"
	case http.StatusMethodNotAllowed:
		return "Method not allowed"
	default:
		return "Internal server error"
	}
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the JSON error envelope for err.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)
	WriteJSON(w, status, ErrorBody{Success: false, Error: status, Message: Message(status)})
}

// DecodeJSON reads a JSON request body into v. Malformed or oversized bodies are [shared.ErrInvalidInput].
func DecodeJSON(r *http.Request, v any) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", shared.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return nil
}

// PathID parses the named path value as a positive integer ID. Anything else is [shared.ErrNotFound].
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s %q: %w", name, raw, shared.ErrNotFound)
	}
	return id, nil
}
