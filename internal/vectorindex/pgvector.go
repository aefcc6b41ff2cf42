// Package vectorindex provides nearest-neighbor job search backends for the
// content-based recommender.
package vectorindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/types"
)

// PGVectorIndex searches job embeddings stored in Postgres with the pgvector
// extension. Distances come from the cosine operator (<=>), which yields
// values in [0,2] as the recommender assumes.
type PGVectorIndex struct {
	pool      *pgxpool.Pool
	dimension int
}

// NewPGVectorIndex creates an index over the given pool. dimension is the
// embedding width enforced on upsert.
func NewPGVectorIndex(pool *pgxpool.Pool, dimension int) *PGVectorIndex {
	return &PGVectorIndex{pool: pool, dimension: dimension}
}

// Query returns the nearest indexed jobs, sorted ascending by cosine
// distance.
func (x *PGVectorIndex) Query(ctx context.Context, vector []float32, limit int) ([]recommend.IndexHit, error) {
	rows, err := x.pool.Query(ctx,
		`SELECT j.id, j.title, j.skills, j.description, (e.vector <=> $1::vector) AS distance
		 FROM job_embeddings e
		 JOIN jobs j ON j.id = e.job_id
		 WHERE j.status = 'ACTIVE'
		 ORDER BY e.vector <=> $1::vector
		 LIMIT $2`,
		vectorToString(vector), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query job embeddings: %w", err)
	}
	defer rows.Close()

	var hits []recommend.IndexHit
	for rows.Next() {
		var hit recommend.IndexHit
		if err := rows.Scan(&hit.JobID, &hit.Title, &hit.Skills, &hit.Description, &hit.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan job embedding row: %w", err)
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job embedding rows: %w", err)
	}
	return hits, nil
}

// Upsert stores one embedding per job, replacing any previous vector.
func (x *PGVectorIndex) Upsert(ctx context.Context, jobs []types.JobCandidate, vectors [][]float32) error {
	if len(jobs) != len(vectors) {
		return fmt.Errorf("jobs and vectors length mismatch: %d != %d", len(jobs), len(vectors))
	}

	tx, err := x.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for i, job := range jobs {
		if x.dimension > 0 && len(vectors[i]) != x.dimension {
			return fmt.Errorf("job %d: vector dimension %d, want %d", job.JobID, len(vectors[i]), x.dimension)
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO job_embeddings (job_id, vector)
			 VALUES ($1, $2::vector)
			 ON CONFLICT (job_id) DO UPDATE SET vector = $2::vector, updated_at = NOW()`,
			job.JobID, vectorToString(vectors[i]),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert embedding for job %d: %w", job.JobID, err)
		}
	}

	return tx.Commit(ctx)
}

// vectorToString converts a float32 slice to pgvector text format: [0.1,0.2].
func vectorToString(v []float32) string {
	parts := make([]string, len(v))
	for i, val := range v {
		parts[i] = fmt.Sprintf("%g", val)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
