package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryProfile_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		profile QueryProfile
		empty   bool
	}{
		{"all empty", QueryProfile{}, true},
		{"whitespace only", QueryProfile{Title: "  ", Skills: []string{" ", ""}}, true},
		{"title set", QueryProfile{Title: "Backend Developer"}, false},
		{"description set", QueryProfile{Description: "Building APIs"}, false},
		{"one skill", QueryProfile{Skills: []string{"Go"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.profile.IsEmpty())
		})
	}
}

func TestDefaultFieldWeights(t *testing.T) {
	w := DefaultFieldWeights()
	assert.Equal(t, 0.4, w.Skills)
	assert.Equal(t, 0.4, w.Title)
	assert.Equal(t, 0.2, w.Description)
}

func TestRecommendRequest_Validate(t *testing.T) {
	valid := RecommendRequest{CandidateID: 7, TopN: 5, Title: "Data Engineer"}
	require.NoError(t, valid.Validate())

	missingCandidate := RecommendRequest{TopN: 5}
	assert.Error(t, missingCandidate.Validate())

	tooMany := RecommendRequest{CandidateID: 7, TopN: 51}
	assert.Error(t, tooMany.Validate())
}

func TestRecommendRequest_Query(t *testing.T) {
	r := RecommendRequest{
		CandidateID: 1,
		Skills:      []string{"Python", "SQL"},
		Title:       "Analyst",
		Description: "Dashboards",
	}
	q := r.Query()
	assert.Equal(t, []string{"Python", "SQL"}, q.Skills)
	assert.Equal(t, "Analyst", q.Title)
	assert.Equal(t, "Dashboards", q.Description)
}
