package recommend

import (
	"math"
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

// ComposeQueryText builds a single weighted text blob from the profile for
// embedding. Each non-empty field is repeated round(weight*10) times before
// concatenation; repeated tokens pull the embedding vector toward that
// field's semantic content. Deterministic for identical input. A weight
// below 0.05 rounds to zero repeats, so a field carrying only such a
// weight drops out of the query entirely.
func ComposeQueryText(profile types.QueryProfile, weights types.FieldWeights) string {
	skillsText := strings.TrimSpace(strings.Join(nonEmpty(profile.Skills), ", "))
	titleText := strings.TrimSpace(profile.Title)
	descText := strings.TrimSpace(profile.Description)

	var parts []string
	parts = appendRepeated(parts, skillsText, weights.Skills)
	parts = appendRepeated(parts, titleText, weights.Title)
	parts = appendRepeated(parts, descText, weights.Description)

	return strings.Join(parts, " ")
}

// ComposeJobText builds the document embedded for a job posting. Unlike the
// query side there is no field weighting; the posting is indexed as written.
func ComposeJobText(job types.JobCandidate) string {
	var parts []string
	if t := strings.TrimSpace(job.Title); t != "" {
		parts = append(parts, t)
	}
	if skills := strings.Join(nonEmpty(job.Skills), ", "); skills != "" {
		parts = append(parts, skills)
	}
	if d := strings.TrimSpace(job.Description); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

// appendRepeated appends text round(weight*10) times; empty text or a
// non-positive repeat count contributes nothing.
func appendRepeated(parts []string, text string, weight float64) []string {
	if text == "" {
		return parts
	}
	repeats := int(math.Round(weight * 10))
	for i := 0; i < repeats; i++ {
		parts = append(parts, text)
	}
	return parts
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}
