package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-recommender/internal/types"
)

// ErrJobNotFound indicates the requested job does not exist.
var ErrJobNotFound = errors.New("job not found")

// JobCreateInput holds the fields for creating a job posting.
type JobCreateInput struct {
	Title       string   `json:"title"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
	Address     string   `json:"address,omitempty"`
}

// ActiveJobIDs returns the IDs of all jobs currently open for
// recommendation.
func (db *DB) ActiveJobIDs(ctx context.Context) ([]int64, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id FROM jobs WHERE status = 'ACTIVE' ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active job ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job ids: %w", err)
	}
	return ids, nil
}

// ListActiveJobs returns active jobs with their full text, for indexing and
// catalog listings.
func (db *DB) ListActiveJobs(ctx context.Context, limit, offset int) ([]types.JobCandidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, skills, description
		 FROM jobs
		 WHERE status = 'ACTIVE'
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetJob returns a single job by ID.
func (db *DB) GetJob(ctx context.Context, jobID int64) (*types.JobCandidate, error) {
	var job types.JobCandidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, skills, description FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&job.JobID, &job.Title, &job.Skills, &job.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %d: %w", jobID, err)
	}
	return &job, nil
}

// JobsByIDs resolves job metadata for a set of IDs. Missing IDs are simply
// absent from the result map.
func (db *DB) JobsByIDs(ctx context.Context, ids []int64) (map[int64]types.JobCandidate, error) {
	if len(ids) == 0 {
		return map[int64]types.JobCandidate{}, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, title, skills, description FROM jobs WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by ids: %w", err)
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]types.JobCandidate, len(jobs))
	for _, job := range jobs {
		byID[job.JobID] = job
	}
	return byID, nil
}

// CreateJob inserts a new active job posting and returns its ID.
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, skills, description, address, status)
		 VALUES ($1, $2, $3, $4, 'ACTIVE')
		 RETURNING id`,
		input.Title, input.Skills, input.Description, input.Address,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

func scanJobs(rows pgx.Rows) ([]types.JobCandidate, error) {
	var jobs []types.JobCandidate
	for rows.Next() {
		var job types.JobCandidate
		if err := rows.Scan(&job.JobID, &job.Title, &job.Skills, &job.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}
