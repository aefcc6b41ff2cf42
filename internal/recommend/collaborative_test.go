package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/types"
)

func apply(user, job int64) types.FeedbackEvent {
	return types.FeedbackEvent{CandidateID: user, JobID: job, Type: types.FeedbackApply}
}

func like(user, job int64) types.FeedbackEvent {
	return types.FeedbackEvent{CandidateID: user, JobID: job, Type: types.FeedbackLike}
}

func TestRecommendCollaborative_ColdStartUser(t *testing.T) {
	m := BuildInteractionMatrix([]types.FeedbackEvent{apply(2, 100)})

	outcome := RecommendCollaborative(1, []int64{100, 200}, m, 5)
	assert.True(t, outcome.Insufficient)
	assert.Empty(t, outcome.Results)
}

func TestRecommendCollaborative_IdenticalUsersSimilarityOne(t *testing.T) {
	// Users 1 and 2 share identical interaction sets and weights; user 2
	// also applied to job 300, which should surface with full similarity
	// weighting.
	events := []types.FeedbackEvent{
		apply(1, 100), like(1, 200),
		apply(2, 100), like(2, 200),
		apply(2, 300),
	}
	m := BuildInteractionMatrix(events)

	sims := neighborSimilarities(1, m.Jobs(1), m)
	require.Contains(t, sims, int64(2))
	// Weighted Jaccard over {100:1.0, 200:0.7} vs {100:1.0, 200:0.7, 300:1.0}:
	// min-sum 1.7 / max-sum 2.7.
	assert.InDelta(t, 1.7/2.7, sims[2], 1e-9)

	// With truly identical sets the similarity is exactly 1.
	m2 := BuildInteractionMatrix([]types.FeedbackEvent{
		apply(1, 100), like(1, 200),
		apply(2, 100), like(2, 200),
	})
	sims2 := neighborSimilarities(1, m2.Jobs(1), m2)
	assert.InDelta(t, 1.0, sims2[2], 1e-9)
}

func TestRecommendCollaborative_SelfNeverCompared(t *testing.T) {
	events := []types.FeedbackEvent{apply(1, 100), apply(1, 200)}
	m := BuildInteractionMatrix(events)

	sims := neighborSimilarities(1, m.Jobs(1), m)
	assert.NotContains(t, sims, int64(1))
	assert.Empty(t, sims)
}

func TestRecommendCollaborative_NoSharedJobsContributesNothing(t *testing.T) {
	events := []types.FeedbackEvent{
		apply(1, 100),
		apply(2, 200), apply(2, 300),
	}
	m := BuildInteractionMatrix(events)

	sims := neighborSimilarities(1, m.Jobs(1), m)
	assert.NotContains(t, sims, int64(2))

	outcome := RecommendCollaborative(1, []int64{200, 300}, m, 5)
	assert.True(t, outcome.Insufficient)
}

func TestRecommendCollaborative_ScoresAndNormalization(t *testing.T) {
	// User 1 (target) and user 2 overlap on job 100; user 2 applied to jobs
	// 200 and 300. Both are candidates the target has not seen.
	events := []types.FeedbackEvent{
		apply(1, 100),
		apply(2, 100), apply(2, 200), like(2, 300),
	}
	m := BuildInteractionMatrix(events)

	outcome := RecommendCollaborative(1, []int64{200, 300}, m, 5)
	require.False(t, outcome.Insufficient)
	require.Len(t, outcome.Results, 2)

	// Exactly one entry normalized to 1.0, everything else below it.
	assert.Equal(t, 1.0, outcome.Results[0].Similarity)
	for _, r := range outcome.Results[1:] {
		assert.Less(t, r.Similarity, 1.0)
		assert.Greater(t, r.Similarity, 0.0)
	}

	// Apply-backed job 200 outranks like-backed job 300.
	assert.Equal(t, int64(200), outcome.Results[0].JobID)
	assert.Equal(t, int64(300), outcome.Results[1].JobID)
	assert.Greater(t, outcome.Results[0].RawScore, outcome.Results[1].RawScore)
}

func TestRecommendCollaborative_ExcludesAlreadySeenJobs(t *testing.T) {
	events := []types.FeedbackEvent{
		apply(1, 100), apply(1, 200),
		apply(2, 100), apply(2, 200), apply(2, 300),
	}
	m := BuildInteractionMatrix(events)

	outcome := RecommendCollaborative(1, []int64{100, 200, 300}, m, 5)
	require.False(t, outcome.Insufficient)
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, int64(300), outcome.Results[0].JobID)
}

func TestRecommendCollaborative_TieBreakByJobID(t *testing.T) {
	// Jobs 300 and 200 get identical raw scores from the same neighbor;
	// the lower job ID must come first.
	events := []types.FeedbackEvent{
		apply(1, 100),
		apply(2, 100), apply(2, 300), apply(2, 200),
	}
	m := BuildInteractionMatrix(events)

	outcome := RecommendCollaborative(1, []int64{300, 200}, m, 5)
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, int64(200), outcome.Results[0].JobID)
	assert.Equal(t, int64(300), outcome.Results[1].JobID)
	assert.Equal(t, outcome.Results[0].RawScore, outcome.Results[1].RawScore)
}

func TestRecommendCollaborative_TruncatesToTopN(t *testing.T) {
	events := []types.FeedbackEvent{apply(1, 100), apply(2, 100)}
	candidates := []int64{}
	for job := int64(200); job < 210; job++ {
		events = append(events, apply(2, job))
		candidates = append(candidates, job)
	}
	m := BuildInteractionMatrix(events)

	outcome := RecommendCollaborative(1, candidates, m, 3)
	require.False(t, outcome.Insufficient)
	assert.Len(t, outcome.Results, 3)
}

func TestRecommendCollaborative_MultipleNeighborsAccumulate(t *testing.T) {
	// Two neighbors both applied to job 500; its score should be the sum of
	// each neighbor's similarity * weight and outrank a single-supporter job.
	events := []types.FeedbackEvent{
		apply(1, 100), apply(1, 200),
		apply(2, 100), apply(2, 200), apply(2, 500),
		apply(3, 100), apply(3, 500), apply(3, 600),
	}
	m := BuildInteractionMatrix(events)

	outcome := RecommendCollaborative(1, []int64{500, 600}, m, 5)
	require.False(t, outcome.Insufficient)
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, int64(500), outcome.Results[0].JobID)
	assert.Greater(t, outcome.Results[0].RawScore, outcome.Results[1].RawScore)
}
