// Package types provides type definitions for structured data used throughout the job-recommender system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// QueryProfile describes what the candidate is looking for. It is either
// supplied explicitly in the request or assembled from the candidate's
// stored resume profile.
type QueryProfile struct {
	Skills      []string `json:"skills,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
}

// IsEmpty reports whether the profile carries no usable query text.
func (q *QueryProfile) IsEmpty() bool {
	if strings.TrimSpace(q.Title) != "" || strings.TrimSpace(q.Description) != "" {
		return false
	}
	for _, s := range q.Skills {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// FieldWeights control how strongly each profile field biases the query
// embedding. They are emphasis multipliers, not probabilities, and need not
// sum to 1.
type FieldWeights struct {
	Skills      float64 `json:"skills"`
	Title       float64 `json:"title"`
	Description float64 `json:"description"`
}

// DefaultFieldWeights returns the standard field emphasis: skills and title
// carry equal weight so the embedding captures role context as well as
// technology, description is secondary.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{Skills: 0.4, Title: 0.4, Description: 0.2}
}

// RecommendRequest is the body of POST /recommendations. When skills, title
// and description are all absent the server falls back to the candidate's
// stored profile.
type RecommendRequest struct {
	CandidateID int64    `json:"candidate_id" validate:"required,gt=0"`
	TopN        int      `json:"top_n,omitempty" validate:"omitempty,gt=0,lte=50"`
	Skills      []string `json:"skills,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Query builds the QueryProfile carried by the request.
func (r *RecommendRequest) Query() QueryProfile {
	return QueryProfile{
		Skills:      r.Skills,
		Title:       r.Title,
		Description: r.Description,
	}
}
