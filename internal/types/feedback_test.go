package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackType_Weight(t *testing.T) {
	tests := []struct {
		name   string
		ftype  FeedbackType
		weight float64
	}{
		{"apply is strongest", FeedbackApply, 1.0},
		{"like is medium", FeedbackLike, 0.7},
		{"unknown gets neutral default", FeedbackType("view"), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.weight, tt.ftype.Weight())
		})
	}
}

func TestFeedbackEvent_EffectiveWeight(t *testing.T) {
	score := 0.8
	zero := 0.0

	tests := []struct {
		name  string
		event FeedbackEvent
		want  float64
	}{
		{"no score uses type weight", FeedbackEvent{Type: FeedbackApply}, 1.0},
		{"score scales type weight", FeedbackEvent{Type: FeedbackApply, Score: &score}, 0.8},
		{"score scales like weight", FeedbackEvent{Type: FeedbackLike, Score: &score}, 0.8 * 0.7},
		{"zero score ignored", FeedbackEvent{Type: FeedbackLike, Score: &zero}, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.event.EffectiveWeight(), 1e-9)
		})
	}
}

func TestFeedbackRequest_Validate(t *testing.T) {
	valid := FeedbackRequest{CandidateID: 1, JobID: 2, Type: "apply"}
	require.NoError(t, valid.Validate())

	badType := FeedbackRequest{CandidateID: 1, JobID: 2, Type: "dislike"}
	assert.Error(t, badType.Validate())

	badScore := 1.5
	outOfRange := FeedbackRequest{CandidateID: 1, JobID: 2, Type: "like", Score: &badScore}
	assert.Error(t, outOfRange.Validate())
}

func TestFeedbackRequest_Event(t *testing.T) {
	score := 0.9
	r := FeedbackRequest{CandidateID: 3, JobID: 9, Type: "like", Score: &score}
	e := r.Event()
	assert.Equal(t, int64(3), e.CandidateID)
	assert.Equal(t, int64(9), e.JobID)
	assert.Equal(t, FeedbackLike, e.Type)
	require.NotNil(t, e.Score)
	assert.Equal(t, 0.9, *e.Score)
}
