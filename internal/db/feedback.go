package db

import (
	"context"
	"fmt"

	"github.com/jonathan/job-recommender/internal/types"
)

// AllFeedbackEvents returns every feedback event in the store. The
// interaction matrix is rebuilt from this full scan on each recommendation
// request.
func (db *DB) AllFeedbackEvents(ctx context.Context) ([]types.FeedbackEvent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, job_id, feedback_type, score
		 FROM job_feedback`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback events: %w", err)
	}
	defer rows.Close()

	var events []types.FeedbackEvent
	for rows.Next() {
		var e types.FeedbackEvent
		if err := rows.Scan(&e.CandidateID, &e.JobID, &e.Type, &e.Score); err != nil {
			return nil, fmt.Errorf("failed to scan feedback event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback events: %w", err)
	}
	return events, nil
}

// UpsertFeedback records a feedback event. The (candidate, job, type) pair
// is unique; a repeat event updates the score instead of inserting a
// duplicate row.
func (db *DB) UpsertFeedback(ctx context.Context, event types.FeedbackEvent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_feedback (candidate_id, job_id, feedback_type, score)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (candidate_id, job_id, feedback_type)
		 DO UPDATE SET score = $4, updated_at = NOW()`,
		event.CandidateID, event.JobID, event.Type, event.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert feedback: %w", err)
	}
	return nil
}
