package vectorindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/types"
)

func TestMemoryIndex_QueryOrdersByDistance(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	jobs := []types.JobCandidate{
		{JobID: 1, Title: "Exact match"},
		{JobID: 2, Title: "Orthogonal"},
		{JobID: 3, Title: "Opposite"},
	}
	vectors := [][]float32{
		{1, 0},
		{0, 1},
		{-1, 0},
	}
	require.NoError(t, index.Upsert(ctx, jobs, vectors))

	hits, err := index.Query(ctx, []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, int64(1), hits[0].JobID)
	assert.InDelta(t, 0.0, hits[0].Distance, 1e-6)
	assert.Equal(t, int64(2), hits[1].JobID)
	assert.InDelta(t, 1.0, hits[1].Distance, 1e-6)
	assert.Equal(t, int64(3), hits[2].JobID)
	assert.InDelta(t, 2.0, hits[2].Distance, 1e-6)
}

func TestMemoryIndex_LimitAndUpsertReplace(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx,
		[]types.JobCandidate{{JobID: 1}, {JobID: 2}},
		[][]float32{{1, 0}, {0, 1}},
	))
	assert.Equal(t, 2, index.Len())

	// Re-upserting the same job replaces its vector instead of duplicating.
	require.NoError(t, index.Upsert(ctx,
		[]types.JobCandidate{{JobID: 2}},
		[][]float32{{1, 0}},
	))
	assert.Equal(t, 2, index.Len())

	hits, err := index.Query(ctx, []float32{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 0.0, hits[0].Distance, 1e-6)
}

func TestMemoryIndex_UpsertLengthMismatch(t *testing.T) {
	index := NewMemoryIndex()
	err := index.Upsert(context.Background(), []types.JobCandidate{{JobID: 1}}, nil)
	assert.Error(t, err)
}

func TestMemoryIndex_ZeroNormVector(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []types.JobCandidate{{JobID: 1}}, [][]float32{{0, 0}}))

	hits, err := index.Query(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 2.0, hits[0].Distance)
}
