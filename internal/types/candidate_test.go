package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateProfile_QueryProfile(t *testing.T) {
	c := CandidateProfile{
		CandidateID: 12,
		Title:       "Machine Learning Engineer",
		AboutMe:     "Five years of model serving experience.",
		Skills: []CandidateSkill{
			{Name: "Python"},
			{Name: ""},
			{Name: "TensorFlow"},
		},
	}

	q := c.QueryProfile()
	assert.Equal(t, []string{"Python", "TensorFlow"}, q.Skills)
	assert.Equal(t, "Machine Learning Engineer", q.Title)
	assert.Equal(t, "Five years of model serving experience.", q.Description)
	assert.False(t, q.IsEmpty())
}

func TestCandidateProfile_QueryProfile_Empty(t *testing.T) {
	c := CandidateProfile{CandidateID: 5}
	q := c.QueryProfile()
	assert.True(t, q.IsEmpty())
}
