package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillOverlap_Symmetry(t *testing.T) {
	a := []string{"Go", "Python", "SQL"}
	b := []string{"python", "Rust"}

	assert.Equal(t, SkillOverlap(a, b), SkillOverlap(b, a))
}

func TestSkillOverlap_IdenticalSets(t *testing.T) {
	a := []string{"Go", "Kubernetes"}
	assert.Equal(t, 1.0, SkillOverlap(a, a))
}

func TestSkillOverlap_EmptySides(t *testing.T) {
	assert.Equal(t, 0.0, SkillOverlap(nil, []string{"Go"}))
	assert.Equal(t, 0.0, SkillOverlap([]string{"Go"}, nil))
	assert.Equal(t, 0.0, SkillOverlap(nil, nil))
	assert.Equal(t, 0.0, SkillOverlap([]string{" ", ""}, []string{"Go"}))
}

func TestSkillOverlap_CaseAndWhitespace(t *testing.T) {
	a := []string{"  python ", "TensorFlow"}
	b := []string{"Python", "tensorflow"}
	assert.Equal(t, 1.0, SkillOverlap(a, b))
}

func TestSkillOverlap_Monotonicity(t *testing.T) {
	query := []string{"Python", "SQL"}
	job := []string{"Python"}
	base := SkillOverlap(query, job)

	// Adding a shared skill never decreases the score.
	withShared := SkillOverlap(query, []string{"Python", "SQL"})
	assert.GreaterOrEqual(t, withShared, base)

	// Adding a non-shared skill to either side never increases it.
	withNoiseJob := SkillOverlap(query, []string{"Python", "COBOL"})
	assert.LessOrEqual(t, withNoiseJob, base)
	withNoiseQuery := SkillOverlap([]string{"Python", "SQL", "COBOL"}, job)
	assert.LessOrEqual(t, withNoiseQuery, base)
}

func TestSkillOverlap_PartialMatch(t *testing.T) {
	// Overlap coefficient: intersection over the smaller set.
	query := []string{"Python"}
	job := []string{"Python", "TensorFlow", "Docker"}
	assert.Equal(t, 1.0, SkillOverlap(query, job))

	query = []string{"Python", "Rust"}
	job = []string{"Python", "TensorFlow", "Docker"}
	assert.Equal(t, 0.5, SkillOverlap(query, job))
}

func TestSkillOverlap_DuplicatesCollapse(t *testing.T) {
	a := []string{"Go", "go", "GO"}
	b := []string{"Go", "Python"}
	assert.Equal(t, 1.0, SkillOverlap(a, b))
}

func TestSkillOverlap_Range(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c"}, {"b", "c", "d", "e"}},
		{{"x"}, {"y"}},
		{{"a"}, {"a", "b"}},
	}
	for _, c := range cases {
		score := SkillOverlap(c[0], c[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
