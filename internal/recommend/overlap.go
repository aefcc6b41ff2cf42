package recommend

import "strings"

// SkillOverlap compares two skill lists and returns a normalized overlap
// score in [0,1]. Skills are matched case-insensitively after trimming
// whitespace; duplicates collapse. Returns 0 when either side is empty.
//
// The formula is the overlap coefficient: |A ∩ B| / min(|A|, |B|). It is
// symmetric, identical sets score 1, and adding a shared skill never
// decreases the score.
func SkillOverlap(querySkills, jobSkills []string) float64 {
	a := normalizeSkillSet(querySkills)
	b := normalizeSkillSet(jobSkills)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}

	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}

	score := float64(inter) / float64(smaller)
	if score > 1 {
		score = 1
	}
	return score
}

// normalizeSkillSet lowercases and trims skill names into a set, dropping
// empties.
func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		norm := strings.ToLower(strings.TrimSpace(s))
		if norm != "" {
			set[norm] = struct{}{}
		}
	}
	return set
}
