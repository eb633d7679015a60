// Package server provides the HTTP REST API for letter generation.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/phrases"
	"github.com/jonathan/letter-studio/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBodyTooLarge indicates the request body exceeded the configured limit
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		tooLargeErr   *ErrBodyTooLarge
		inputErr      *composer.InputError
		schemaErr     *schemas.ValidationError
		documentErr   *schemas.DocumentError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, phrases.ErrUnknownOption),
		errors.As(err, &validationErr),
		errors.As(err, &inputErr),
		errors.As(err, &schemaErr),
		errors.As(err, &documentErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope. Details carries per-field schema
// violations when there are any.
type errorBody struct {
	Error     string               `json:"error"`
	Details   []schemas.FieldError `json:"details,omitempty"`
	Index     *int                 `json:"index,omitempty"`
	RequestID string               `json:"request_id,omitempty"`
}

func newErrorBody(err error, requestID string) errorBody {
	body := errorBody{Error: err.Error(), RequestID: requestID}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		body.Details = schemaErr.Errors
	}
	var batchErr *composer.BatchError
	if errors.As(err, &batchErr) {
		idx := batchErr.Index
		body.Index = &idx
	}
	return body
}
