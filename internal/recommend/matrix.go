package recommend

import (
	"github.com/jonathan/job-recommender/internal/types"
)

// InteractionMatrix holds per-user weighted job interactions derived from
// the full feedback event set. It is rebuilt per request and never mutated
// after construction.
type InteractionMatrix struct {
	userJobs map[int64]map[int64]struct{} // user -> set of jobs
	weights  map[int64]map[int64]float64  // user -> job -> effective weight
	jobUsers map[int64]map[int64]float64  // job -> user -> effective weight
}

// BuildInteractionMatrix converts raw feedback events into the weighted
// interaction maps used by the collaborative filter.
//
// When multiple events exist for the same (user, job) pair — e.g. a like and
// a later apply — the maximum effective weight wins. Max is deterministic
// regardless of event order and never lets a weaker duplicate erase a
// stronger signal.
func BuildInteractionMatrix(events []types.FeedbackEvent) *InteractionMatrix {
	m := &InteractionMatrix{
		userJobs: make(map[int64]map[int64]struct{}),
		weights:  make(map[int64]map[int64]float64),
		jobUsers: make(map[int64]map[int64]float64),
	}

	for i := range events {
		e := &events[i]
		w := e.EffectiveWeight()

		if existing, ok := m.weights[e.CandidateID][e.JobID]; ok && existing >= w {
			continue
		}

		if m.userJobs[e.CandidateID] == nil {
			m.userJobs[e.CandidateID] = make(map[int64]struct{})
			m.weights[e.CandidateID] = make(map[int64]float64)
		}
		m.userJobs[e.CandidateID][e.JobID] = struct{}{}
		m.weights[e.CandidateID][e.JobID] = w

		if m.jobUsers[e.JobID] == nil {
			m.jobUsers[e.JobID] = make(map[int64]float64)
		}
		m.jobUsers[e.JobID][e.CandidateID] = w
	}

	return m
}

// Jobs returns the set of jobs the user has interacted with, nil for an
// unknown user.
func (m *InteractionMatrix) Jobs(userID int64) map[int64]struct{} {
	return m.userJobs[userID]
}

// Weight returns the effective interaction weight for a (user, job) pair.
// The second return is false when no interaction exists.
func (m *InteractionMatrix) Weight(userID, jobID int64) (float64, bool) {
	w, ok := m.weights[userID][jobID]
	return w, ok
}

// UsersForJob returns the users who interacted with the job and their
// weights, nil when nobody has.
func (m *InteractionMatrix) UsersForJob(jobID int64) map[int64]float64 {
	return m.jobUsers[jobID]
}

// Users returns the IDs of all users present in the matrix.
func (m *InteractionMatrix) Users() []int64 {
	ids := make([]int64, 0, len(m.userJobs))
	for id := range m.userJobs {
		ids = append(ids, id)
	}
	return ids
}
