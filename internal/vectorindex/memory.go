package vectorindex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/types"
)

// MemoryIndex is a brute-force cosine-distance index for tests, local
// development and the CLI demo path. Safe for concurrent use.
type MemoryIndex struct {
	mu      sync.RWMutex
	jobs    map[int64]types.JobCandidate
	vectors map[int64][]float32
}

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		jobs:    make(map[int64]types.JobCandidate),
		vectors: make(map[int64][]float32),
	}
}

// Upsert stores jobs with their vectors, replacing existing entries.
func (x *MemoryIndex) Upsert(_ context.Context, jobs []types.JobCandidate, vectors [][]float32) error {
	if len(jobs) != len(vectors) {
		return fmt.Errorf("jobs and vectors length mismatch: %d != %d", len(jobs), len(vectors))
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	for i, job := range jobs {
		x.jobs[job.JobID] = job
		x.vectors[job.JobID] = vectors[i]
	}
	return nil
}

// Query returns up to limit jobs sorted ascending by cosine distance
// (1 - cosine similarity, range [0,2]).
func (x *MemoryIndex) Query(_ context.Context, vector []float32, limit int) ([]recommend.IndexHit, error) {
	if limit <= 0 {
		return nil, nil
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	hits := make([]recommend.IndexHit, 0, len(x.vectors))
	for jobID, v := range x.vectors {
		hits = append(hits, recommend.IndexHit{
			JobCandidate: x.jobs[jobID],
			Distance:     cosineDistance(vector, v),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].JobID < hits[j].JobID
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// Len returns the number of indexed jobs.
func (x *MemoryIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.vectors)
}

// cosineDistance computes 1 - cosine similarity. Zero-length or zero-norm
// vectors are treated as maximally distant.
func cosineDistance(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 2
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 2
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
