package recommend

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-recommender/internal/types"
)

// Default hybrid blend when collaborative data is available.
const (
	contentWeightDefault = 0.8
	cfWeightDefault      = 0.2
)

// FeedbackSource supplies the full feedback event set the interaction
// matrix is rebuilt from on every request.
type FeedbackSource interface {
	AllFeedbackEvents(ctx context.Context) ([]types.FeedbackEvent, error)
}

// JobMetadata resolves job details for collaborative results, which carry
// only IDs and scores until enriched.
type JobMetadata interface {
	JobsByIDs(ctx context.Context, ids []int64) (map[int64]types.JobCandidate, error)
}

// HybridRecommender fuses the content-based and collaborative signals. The
// two paths are independent read-only computations and run concurrently; a
// collaborative failure degrades to content-only weighting and never fails
// the call.
type HybridRecommender struct {
	content  *ContentRecommender
	feedback FeedbackSource
	metadata JobMetadata // optional; nil leaves CF results unenriched

	contentWeight float64
	cfWeight      float64
}

// NewHybridRecommender creates the fusion orchestrator with the default
// blend. metadata may be nil.
func NewHybridRecommender(content *ContentRecommender, feedback FeedbackSource, metadata JobMetadata) *HybridRecommender {
	return &HybridRecommender{
		content:       content,
		feedback:      feedback,
		metadata:      metadata,
		contentWeight: contentWeightDefault,
		cfWeight:      cfWeightDefault,
	}
}

// SetBlend overrides the content share of the hybrid blend; the
// collaborative share is the complement. Values outside [0,1] are ignored.
func (h *HybridRecommender) SetBlend(content float64) {
	if content < 0 || content > 1 {
		return
	}
	h.contentWeight = content
	h.cfWeight = 1 - content
}

// Recommend returns the three views of a hybrid recommendation call:
// content-only, collaborative-only, and the fused ranking with per-job
// score provenance.
//
// Both passes over-fetch topN*2 for re-ranking headroom. Collaborative
// scores only re-rank within the content candidate pool; they never add jobs
// the content pass did not surface. A content-path failure is fatal and
// propagates; the collaborative path degrades silently to content-only
// weights (content 1.0 / cf 0.0).
func (h *HybridRecommender) Recommend(ctx context.Context, candidateID int64, profile types.QueryProfile, candidateJobIDs []int64, topN int) (*types.RecommendationSet, error) {
	fetchN := topN * 2

	var contentResults []types.ScoredJob
	var cf CFOutcome

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		results, err := h.content.Recommend(gctx, profile, fetchN)
		if err != nil {
			return err
		}
		contentResults = results
		return nil
	})

	g.Go(func() error {
		// Collaborative failures are fallback triggers, never errors.
		cf = h.collaborative(gctx, candidateID, candidateJobIDs, fetchN)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	contentWeight, cfWeight := 1.0, 0.0
	if !cf.Insufficient && len(cf.Results) > 0 {
		contentWeight, cfWeight = h.contentWeight, h.cfWeight
	}

	cfSimilarity := make(map[int64]float64, len(cf.Results))
	for _, r := range cf.Results {
		cfSimilarity[r.JobID] = r.Similarity
	}

	hybrid := make([]types.ScoredJob, len(contentResults))
	copy(hybrid, contentResults)
	finalScores := make(map[int64]float64, len(hybrid))
	for i := range hybrid {
		score := contentWeight*hybrid[i].Similarity + cfWeight*cfSimilarity[hybrid[i].JobID]
		finalScores[hybrid[i].JobID] = score
	}

	stableSortByScore(hybrid, finalScores)
	if len(hybrid) > topN {
		hybrid = hybrid[:topN]
	}
	for i := range hybrid {
		score := finalScores[hybrid[i].JobID]
		hybrid[i].FinalScore = &score
		hybrid[i].SourceWeight = &types.SourceWeight{Content: contentWeight, CF: cfWeight}
	}

	contentView := contentResults
	if len(contentView) > topN {
		contentView = contentView[:topN]
	}
	cfView := cf.Results
	if len(cfView) > topN {
		cfView = cfView[:topN]
	}

	return &types.RecommendationSet{
		ContentBased:  contentView,
		Collaborative: cfView,
		Hybrid:        hybrid,
	}, nil
}

// collaborative runs the CF pass end to end: event scan, matrix build,
// neighbor scoring, metadata enrichment. Every failure maps to an
// insufficient-data outcome.
func (h *HybridRecommender) collaborative(ctx context.Context, candidateID int64, candidateJobIDs []int64, topN int) CFOutcome {
	if h.feedback == nil {
		return insufficientCF()
	}

	events, err := h.feedback.AllFeedbackEvents(ctx)
	if err != nil {
		log.Printf("collaborative pass skipped for candidate %d: %v", candidateID, err)
		return insufficientCF()
	}

	matrix := BuildInteractionMatrix(events)
	outcome := RecommendCollaborative(candidateID, candidateJobIDs, matrix, topN)
	if outcome.Insufficient || h.metadata == nil {
		return outcome
	}

	ids := make([]int64, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		ids = append(ids, r.JobID)
	}
	jobs, err := h.metadata.JobsByIDs(ctx, ids)
	if err != nil {
		// Scores stand on their own; missing metadata is not a failure.
		log.Printf("collaborative metadata lookup failed: %v", err)
		return outcome
	}
	for i := range outcome.Results {
		if job, ok := jobs[outcome.Results[i].JobID]; ok {
			outcome.Results[i].Title = job.Title
			outcome.Results[i].Skills = job.Skills
			outcome.Results[i].Description = job.Description
		}
	}
	return outcome
}

// stableSortByScore sorts jobs descending by their fused score, preserving
// the content ordering on ties.
func stableSortByScore(jobs []types.ScoredJob, scores map[int64]float64) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return scores[jobs[i].JobID] > scores[jobs[j].JobID]
	})
}
