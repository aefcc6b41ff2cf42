package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-recommender/internal/types"
)

func TestComposeQueryText_RepeatsByWeight(t *testing.T) {
	profile := types.QueryProfile{
		Skills:      []string{"Go", "SQL"},
		Title:       "Backend Developer",
		Description: "APIs and databases",
	}

	text := ComposeQueryText(profile, types.DefaultFieldWeights())

	// Default weights 0.4/0.4/0.2 repeat each field 4/4/2 times.
	assert.Equal(t, 4, strings.Count(text, "Go, SQL"))
	assert.Equal(t, 4, strings.Count(text, "Backend Developer"))
	assert.Equal(t, 2, strings.Count(text, "APIs and databases"))
}

func TestComposeQueryText_MissingFieldsContributeNothing(t *testing.T) {
	profile := types.QueryProfile{Title: "Data Engineer"}
	text := ComposeQueryText(profile, types.DefaultFieldWeights())

	assert.Equal(t, "Data Engineer Data Engineer Data Engineer Data Engineer", text)
}

func TestComposeQueryText_EmptyProfile(t *testing.T) {
	text := ComposeQueryText(types.QueryProfile{}, types.DefaultFieldWeights())
	assert.Empty(t, text)

	text = ComposeQueryText(types.QueryProfile{Skills: []string{"  "}}, types.DefaultFieldWeights())
	assert.Empty(t, text)
}

func TestComposeQueryText_Deterministic(t *testing.T) {
	profile := types.QueryProfile{
		Skills: []string{"Python", "Spark"},
		Title:  "Data Engineer",
	}
	w := types.DefaultFieldWeights()

	first := ComposeQueryText(profile, w)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComposeQueryText(profile, w))
	}
}

func TestComposeQueryText_WeightRounding(t *testing.T) {
	profile := types.QueryProfile{Title: "Analyst"}

	// 0.25 * 10 rounds to 3 repeats, not 2.
	text := ComposeQueryText(profile, types.FieldWeights{Title: 0.25})
	assert.Equal(t, 3, strings.Count(text, "Analyst"))

	// Zero weight drops the field entirely.
	text = ComposeQueryText(profile, types.FieldWeights{Title: 0})
	assert.Empty(t, text)

	// A weight under 0.05 rounds to zero repeats, so a profile whose only
	// populated field carries such a weight composes to an empty query.
	text = ComposeQueryText(profile, types.FieldWeights{Title: 0.04})
	assert.Empty(t, text)
}

func TestComposeQueryText_WeightsNeedNotSumToOne(t *testing.T) {
	profile := types.QueryProfile{Skills: []string{"Go"}, Title: "SRE"}
	text := ComposeQueryText(profile, types.FieldWeights{Skills: 1.0, Title: 1.0})

	assert.Equal(t, 10, strings.Count(text, "Go"))
	assert.Equal(t, 10, strings.Count(text, "SRE"))
}

func TestComposeJobText(t *testing.T) {
	job := types.JobCandidate{
		JobID:       1,
		Title:       "Platform Engineer",
		Skills:      []string{"Go", " Kubernetes ", ""},
		Description: "Run the clusters.",
	}

	text := ComposeJobText(job)
	assert.Equal(t, "Platform Engineer Go, Kubernetes Run the clusters.", text)
}

func TestComposeJobText_SkipsEmptyFields(t *testing.T) {
	assert.Equal(t, "SRE", ComposeJobText(types.JobCandidate{Title: " SRE "}))
	assert.Empty(t, ComposeJobText(types.JobCandidate{}))
}
