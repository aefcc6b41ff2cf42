package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/job-recommender/internal/db"
	"github.com/jonathan/job-recommender/internal/types"
)

const (
	defaultTopN      = 10
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// recommendationResponse is the POST /recommendations envelope.
type recommendationResponse struct {
	OK      bool                     `json:"ok"`
	Results *types.RecommendationSet `json:"results"`
}

// handleRecommendations runs the hybrid recommendation pipeline for a
// candidate. When the request carries no query fields the candidate's
// stored resume profile is used instead.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	ctx := r.Context()
	query := req.Query()
	if query.IsEmpty() {
		profile, err := s.store.GetCandidateProfile(ctx, req.CandidateID)
		if errors.Is(err, db.ErrCandidateNotFound) {
			writeError(w, http.StatusNotFound, (&ErrCandidateNotFound{CandidateID: req.CandidateID}).Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load candidate profile")
			return
		}
		query = profile.QueryProfile()
	} else {
		exists, err := s.store.CandidateExists(ctx, req.CandidateID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to check candidate")
			return
		}
		if !exists {
			writeError(w, http.StatusNotFound, (&ErrCandidateNotFound{CandidateID: req.CandidateID}).Error())
			return
		}
	}

	// The pool feeds the collaborative pass only; failure to load it
	// degrades the call to content-only rather than failing it.
	jobIDs, err := s.store.ActiveJobIDs(ctx)
	if err != nil {
		log.Printf("active job pool unavailable: %v", err)
		jobIDs = nil
	}

	set, err := s.recommender.Recommend(ctx, req.CandidateID, query, jobIDs, topN)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, recommendationResponse{OK: true, Results: set})
}

// handleFeedback records a candidate's reaction to a job posting.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ctx := r.Context()
	exists, err := s.store.CandidateExists(ctx, req.CandidateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check candidate")
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, (&ErrCandidateNotFound{CandidateID: req.CandidateID}).Error())
		return
	}

	if _, err := s.store.GetJob(ctx, req.JobID); err != nil {
		if errors.Is(err, db.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, (&ErrJobNotFound{JobID: req.JobID}).Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to check job")
		return
	}

	if err := s.store.UpsertFeedback(ctx, req.Event()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record feedback")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// handleListJobs returns a page of active job postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobs, err := s.store.ListActiveJobs(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs, "count": len(jobs)})
}

// handleGetJob returns a single job posting by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if errors.Is(err, db.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, (&ErrJobNotFound{JobID: jobID}).Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// handleCreateJob creates a new active job posting.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var input db.JobCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(input.Title) == "" {
		writeError(w, http.StatusBadRequest, (&ErrValidation{Field: "title", Message: "must not be empty"}).Error())
		return
	}

	jobID, err := s.store.CreateJob(r.Context(), &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"job_id": jobID})
}

// handleListCandidates returns a page of candidate profiles.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates, err := s.store.ListCandidateProfiles(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"candidates": candidates, "count": len(candidates)})
}

// handleGetCandidate returns a single candidate profile by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	profile, err := s.store.GetCandidateProfile(r.Context(), candidateID)
	if errors.Is(err, db.ErrCandidateNotFound) {
		writeError(w, http.StatusNotFound, (&ErrCandidateNotFound{CandidateID: candidateID}).Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get candidate")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// pagination parses limit and offset query parameters.
func pagination(r *http.Request) (limit, offset int, err error) {
	limit = defaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageLimit {
			return 0, 0, &ErrValidation{Field: "limit", Message: "must be between 1 and 200"}
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, &ErrValidation{Field: "offset", Message: "must be non-negative"}
		}
	}
	return limit, offset, nil
}
