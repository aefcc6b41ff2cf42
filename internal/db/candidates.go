package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-recommender/internal/types"
)

// ErrCandidateNotFound indicates the requested candidate does not exist.
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateExists reports whether a candidate row exists.
func (db *DB) CandidateExists(ctx context.Context, candidateID int64) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM candidates WHERE candidate_id = $1)`,
		candidateID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check candidate %d: %w", candidateID, err)
	}
	return exists, nil
}

// GetCandidateProfile returns a candidate with the skills and about-me of
// their most recent resume. Used as the query-profile fallback when a
// recommendation request carries no explicit query.
func (db *DB) GetCandidateProfile(ctx context.Context, candidateID int64) (*types.CandidateProfile, error) {
	profile := &types.CandidateProfile{CandidateID: candidateID}

	var aboutMe *string
	err := db.pool.QueryRow(ctx,
		`SELECT c.fullname, c.title, r.about_me
		 FROM candidates c
		 LEFT JOIN resumes r ON r.candidate_id = c.candidate_id
		 WHERE c.candidate_id = $1
		 ORDER BY r.created_at DESC NULLS LAST
		 LIMIT 1`,
		candidateID,
	).Scan(&profile.FullName, &profile.Title, &aboutMe)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate %d: %w", candidateID, err)
	}
	if aboutMe != nil {
		profile.AboutMe = *aboutMe
	}

	skills, err := db.candidateSkills(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	profile.Skills = skills

	return profile, nil
}

// ListCandidateProfiles returns candidates joined with their resume skills,
// paginated.
func (db *DB) ListCandidateProfiles(ctx context.Context, limit, offset int) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id FROM candidates ORDER BY candidate_id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan candidate id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate ids: %w", err)
	}

	profiles := make([]types.CandidateProfile, 0, len(ids))
	for _, id := range ids {
		profile, err := db.GetCandidateProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

// candidateSkills returns the skills of the candidate's most recent resume.
func (db *DB) candidateSkills(ctx context.Context, candidateID int64) ([]types.CandidateSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.skill_name, COALESCE(s.skill_type, ''), COALESCE(s.years_of_experience, 0)
		 FROM skills s
		 JOIN resumes r ON r.id = s.resume_id
		 WHERE r.candidate_id = $1
		   AND r.id = (SELECT id FROM resumes WHERE candidate_id = $1 ORDER BY created_at DESC LIMIT 1)
		 ORDER BY s.skill_name`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills for candidate %d: %w", candidateID, err)
	}
	defer rows.Close()

	var skills []types.CandidateSkill
	for rows.Next() {
		var s types.CandidateSkill
		if err := rows.Scan(&s.Name, &s.Type, &s.YearsOfExperience); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill rows: %w", err)
	}
	return skills, nil
}
