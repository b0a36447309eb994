// Package apperr defines the error taxonomy that crosses module boundaries:
// validation, insufficient credits, generation and storage failures.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError - the request is rejected before any work happens
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation - build a ValidationError with a user-visible message
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InsufficientCreditsError - the balance does not cover the requested amount
type InsufficientCreditsError struct {
	Needed int
	Have   int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("You need %d credits, but you only have %d. Please purchase more credits.", e.Needed, e.Have)
}

// GenerationError - the provider call failed or returned an unusable payload
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGeneration - build a GenerationError wrapping the provider failure
func NewGeneration(err error, format string, args ...interface{}) *GenerationError {
	return &GenerationError{Message: fmt.Sprintf(format, args...), Err: err}
}

// StorageError - a persistence read/write failed
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Failed to %s. Your change may not have been saved.", e.Op)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// HTTPStatus - map a typed error to a response status code
func HTTPStatus(err error) int {
	var (
		validationErr  *ValidationError
		creditsErr     *InsufficientCreditsError
		generationErr  *GenerationError
		persistenceErr *StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &creditsErr):
		return http.StatusPaymentRequired
	case errors.As(err, &generationErr):
		return http.StatusBadGateway
	case errors.As(err, &persistenceErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
