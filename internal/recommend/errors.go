// Package recommend implements the hybrid job recommendation engine:
// content-based scoring over embeddings, implicit-feedback collaborative
// filtering, and the fusion pass that blends the two signals.
package recommend

import (
	"context"
	"errors"
	"fmt"
)

// EmptyQueryError indicates the query profile produced no usable text to
// embed.
type EmptyQueryError struct{}

func (e *EmptyQueryError) Error() string {
	return "recommendation query is empty: at least one of skills, title or description is required"
}

// EmbeddingError indicates the embedding service failed or returned no
// vector for a non-empty query.
type EmbeddingError struct {
	Cause error
}

func (e *EmbeddingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding stage failed: %v", e.Cause)
	}
	return "embedding stage returned no vector"
}

func (e *EmbeddingError) Unwrap() error {
	return e.Cause
}

// Timeout reports whether the embedding call was cut off by its deadline.
func (e *EmbeddingError) Timeout() bool {
	return errors.Is(e.Cause, context.DeadlineExceeded)
}

// VectorIndexError indicates the vector index was unreachable or returned a
// malformed response.
type VectorIndexError struct {
	Cause error
}

func (e *VectorIndexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vector index stage failed: %v", e.Cause)
	}
	return "vector index stage failed"
}

func (e *VectorIndexError) Unwrap() error {
	return e.Cause
}

// Timeout reports whether the index query was cut off by its deadline.
func (e *VectorIndexError) Timeout() bool {
	return errors.Is(e.Cause, context.DeadlineExceeded)
}
