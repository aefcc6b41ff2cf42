package types

import (
	"github.com/go-playground/validator/v10"
)

// FeedbackType classifies an implicit feedback event.
type FeedbackType string

// Known feedback types. Apply is the strongest signal; the store enforces at
// most one row per (candidate, job, type).
const (
	FeedbackApply FeedbackType = "apply"
	FeedbackLike  FeedbackType = "like"
)

// Weight returns the signal strength for the feedback type. Unrecognized
// types get a neutral 0.5 rather than being dropped.
func (t FeedbackType) Weight() float64 {
	switch t {
	case FeedbackApply:
		return 1.0
	case FeedbackLike:
		return 0.7
	default:
		return 0.5
	}
}

// FeedbackEvent is one recorded candidate reaction to a job. Score is an
// optional strength override supplied by the feedback source.
type FeedbackEvent struct {
	CandidateID int64        `json:"candidate_id"`
	JobID       int64        `json:"job_id"`
	Type        FeedbackType `json:"feedback_type"`
	Score       *float64     `json:"score,omitempty"`
}

// EffectiveWeight is the interaction strength used by the collaborative
// filter: the explicit score scaled by the type weight when present and
// positive, the type weight alone otherwise.
func (e *FeedbackEvent) EffectiveWeight() float64 {
	w := e.Type.Weight()
	if e.Score != nil && *e.Score > 0 {
		return *e.Score * w
	}
	return w
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	CandidateID int64    `json:"candidate_id" validate:"required,gt=0"`
	JobID       int64    `json:"job_id" validate:"required,gt=0"`
	Type        string   `json:"feedback_type" validate:"required,oneof=apply like"`
	Score       *float64 `json:"score,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Event converts the request into a FeedbackEvent.
func (r *FeedbackRequest) Event() FeedbackEvent {
	return FeedbackEvent{
		CandidateID: r.CandidateID,
		JobID:       r.JobID,
		Type:        FeedbackType(r.Type),
		Score:       r.Score,
	}
}
