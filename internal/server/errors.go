// Package server provides the HTTP REST API for the job recommender.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/job-recommender/internal/recommend"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrCandidateNotFound indicates the candidate does not exist
type ErrCandidateNotFound struct {
	CandidateID int64
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %d", e.CandidateID)
}

// ErrJobNotFound indicates the job posting does not exist
type ErrJobNotFound struct {
	JobID int64
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %d", e.JobID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Recommendation pipeline errors map upstream failures to gateway statuses
// so clients can distinguish bad requests from provider outages.
func HTTPStatus(err error) int {
	var emptyQuery *recommend.EmptyQueryError
	if errors.As(err, &emptyQuery) {
		return http.StatusBadRequest
	}
	var embedErr *recommend.EmbeddingError
	if errors.As(err, &embedErr) {
		if embedErr.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	var indexErr *recommend.VectorIndexError
	if errors.As(err, &indexErr) {
		if indexErr.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrCandidateNotFound, *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
