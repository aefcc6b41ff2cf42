package recommend

import (
	"sort"

	"github.com/jonathan/job-recommender/internal/types"
)

// CFOutcome is the result of a collaborative-filtering pass. Sparse data is
// not an error: Insufficient marks an empty outcome so the fusion layer can
// fall back to content-only weighting.
type CFOutcome struct {
	Results      []types.CFScore
	Insufficient bool
}

// insufficientCF is the fallback-trigger outcome.
func insufficientCF() CFOutcome {
	return CFOutcome{Insufficient: true}
}

// RecommendCollaborative scores candidate jobs for the target user by
// user-based collaborative filtering over the interaction matrix.
//
// Neighbor users are weighted by weighted Jaccard similarity: the sum of
// min(targetWeight, otherWeight) over shared jobs divided by the sum of
// max over the union (a missing interaction counts as 0 in the max). Each
// candidate job not yet seen by the target is scored by the sum of
// similarity(target, neighbor) * weight(neighbor, job) over neighbors who
// interacted with it. Scores are normalized against the best entry, so the
// top result is always 1.0.
func RecommendCollaborative(targetUser int64, candidateJobIDs []int64, m *InteractionMatrix, topN int) CFOutcome {
	targetJobs := m.Jobs(targetUser)
	if len(targetJobs) == 0 {
		// Cold-start user: no history, nothing to match neighbors on.
		return insufficientCF()
	}

	similarities := neighborSimilarities(targetUser, targetJobs, m)
	if len(similarities) == 0 {
		return insufficientCF()
	}

	type rawScore struct {
		jobID int64
		score float64
	}
	var raw []rawScore
	for _, jobID := range candidateJobIDs {
		if _, seen := targetJobs[jobID]; seen {
			continue
		}
		score := 0.0
		for userID, jobWeight := range m.UsersForJob(jobID) {
			if sim, ok := similarities[userID]; ok {
				score += sim * jobWeight
			}
		}
		if score > 0 {
			raw = append(raw, rawScore{jobID: jobID, score: score})
		}
	}

	if len(raw) == 0 {
		return insufficientCF()
	}

	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].score != raw[j].score {
			return raw[i].score > raw[j].score
		}
		return raw[i].jobID < raw[j].jobID
	})
	if len(raw) > topN {
		raw = raw[:topN]
	}

	maxScore := raw[0].score
	results := make([]types.CFScore, 0, len(raw))
	for _, r := range raw {
		results = append(results, types.CFScore{
			JobID:      r.jobID,
			Similarity: r.score / maxScore,
			RawScore:   r.score,
		})
	}
	return CFOutcome{Results: results}
}

// neighborSimilarities computes weighted Jaccard similarity between the
// target and every other user sharing at least one job. The target itself is
// never compared.
func neighborSimilarities(targetUser int64, targetJobs map[int64]struct{}, m *InteractionMatrix) map[int64]float64 {
	similarities := make(map[int64]float64)

	for _, otherID := range m.Users() {
		if otherID == targetUser {
			continue
		}
		otherJobs := m.Jobs(otherID)

		shared := false
		for jobID := range targetJobs {
			if _, ok := otherJobs[jobID]; ok {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}

		numerator := 0.0
		denominator := 0.0
		for jobID := range union(targetJobs, otherJobs) {
			tw, tok := m.Weight(targetUser, jobID)
			ow, ook := m.Weight(otherID, jobID)
			if tok && ook {
				numerator += min64(tw, ow)
			}
			denominator += max64(weightOrZero(tw, tok), weightOrZero(ow, ook))
		}

		if denominator > 0 {
			similarities[otherID] = numerator / denominator
		}
	}

	return similarities
}

func union(a, b map[int64]struct{}) map[int64]struct{} {
	u := make(map[int64]struct{}, len(a)+len(b))
	for k := range a {
		u[k] = struct{}{}
	}
	for k := range b {
		u[k] = struct{}{}
	}
	return u
}

func weightOrZero(w float64, ok bool) float64 {
	if !ok {
		return 0
	}
	return w
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
