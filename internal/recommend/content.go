package recommend

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/job-recommender/internal/types"
)

// Embedder turns free text into a fixed-dimension vector. Implementations
// return (nil, nil) for empty input.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// IndexHit is one vector-index match. Distance is the index's raw distance,
// normalized to [0,2], sorted ascending by the index.
type IndexHit struct {
	types.JobCandidate
	Distance float64
}

// VectorIndex performs nearest-neighbor search over indexed jobs.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, limit int) ([]IndexHit, error)
}

// ContentConfig holds the tunables of the content-based pass.
type ContentConfig struct {
	// FieldWeights bias the query embedding toward specific profile fields.
	FieldWeights types.FieldWeights
	// SkillWeight is the share of the base score taken by skill overlap;
	// the remainder goes to semantic similarity.
	SkillWeight float64
	// MinThreshold drops candidates whose combined similarity falls below it.
	MinThreshold float64
	// OverfetchFactor controls how many index candidates are pulled per
	// requested result to leave room for post-filtering.
	OverfetchFactor int
	// EmbedTimeout and QueryTimeout bound the two outbound calls
	// independently.
	EmbedTimeout time.Duration
	QueryTimeout time.Duration
}

// DefaultContentConfig returns the standard tuning: semantic similarity
// primary (70%), skill overlap secondary (30%), threshold 0.15, 5x
// overfetch.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		FieldWeights:    types.DefaultFieldWeights(),
		SkillWeight:     0.3,
		MinThreshold:    0.15,
		OverfetchFactor: 5,
		EmbedTimeout:    15 * time.Second,
		QueryTimeout:    10 * time.Second,
	}
}

// ContentRecommender ranks jobs by semantic similarity to the query profile,
// blended with skill overlap and a title-term boost. The embedder and index
// handles are constructed once at startup and injected.
type ContentRecommender struct {
	embedder Embedder
	index    VectorIndex
	cfg      ContentConfig
}

// NewContentRecommender creates a content-based recommender over the given
// collaborators.
func NewContentRecommender(embedder Embedder, index VectorIndex, cfg ContentConfig) *ContentRecommender {
	if cfg.OverfetchFactor <= 0 {
		cfg.OverfetchFactor = 5
	}
	return &ContentRecommender{embedder: embedder, index: index, cfg: cfg}
}

// Recommend returns up to topN jobs ranked by combined content score.
//
// The combined score is
//
//	(1-skillWeight)*semantic + skillWeight*overlap + titleBoost
//
// where titleBoost adds 0.1 per shared title term, capped at 0.2. Candidates
// below the minimum threshold are dropped. The sort is stable: ties keep the
// index's original (distance) order.
func (r *ContentRecommender) Recommend(ctx context.Context, profile types.QueryProfile, topN int) ([]types.ScoredJob, error) {
	text := ComposeQueryText(profile, r.cfg.FieldWeights)
	if text == "" {
		return nil, &EmptyQueryError{}
	}

	vector, err := r.embed(ctx, text)
	if err != nil {
		return nil, err
	}

	hits, err := r.query(ctx, vector, topN*r.cfg.OverfetchFactor)
	if err != nil {
		return nil, err
	}

	queryTitleTerms := titleTerms(profile.Title)

	scored := make([]types.ScoredJob, 0, len(hits))
	for _, hit := range hits {
		semantic := clamp01(1 - hit.Distance)
		overlap := SkillOverlap(profile.Skills, hit.Skills)
		boost := titleBoost(queryTitleTerms, hit.Title)

		base := (1-r.cfg.SkillWeight)*semantic + r.cfg.SkillWeight*overlap
		similarity := base + boost
		if similarity < r.cfg.MinThreshold {
			continue
		}

		scored = append(scored, types.ScoredJob{
			JobID:              hit.JobID,
			Title:              hit.Title,
			Skills:             hit.Skills,
			Description:        hit.Description,
			SemanticSimilarity: semantic,
			SkillOverlap:       overlap,
			TitleBoost:         boost,
			Similarity:         similarity,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored, nil
}

// embed obtains the query vector under its own deadline.
func (r *ContentRecommender) embed(ctx context.Context, text string) ([]float32, error) {
	if r.cfg.EmbedTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.EmbedTimeout)
		defer cancel()
	}

	vector, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, &EmbeddingError{Cause: err}
	}
	if len(vector) == 0 {
		return nil, &EmbeddingError{}
	}
	return vector, nil
}

// query runs the nearest-neighbor search under its own deadline.
func (r *ContentRecommender) query(ctx context.Context, vector []float32, limit int) ([]IndexHit, error) {
	if r.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.QueryTimeout)
		defer cancel()
	}

	hits, err := r.index.Query(ctx, vector, limit)
	if err != nil {
		return nil, &VectorIndexError{Cause: err}
	}
	return hits, nil
}

// titleTerms tokenizes a title on whitespace, lowercased.
func titleTerms(title string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, term := range strings.Fields(strings.ToLower(title)) {
		terms[term] = struct{}{}
	}
	return terms
}

// titleBoost adds 0.1 per title term shared between the query and the job,
// capped at 0.2. Zero when the query has no title.
func titleBoost(queryTerms map[string]struct{}, jobTitle string) float64 {
	if len(queryTerms) == 0 {
		return 0
	}
	seen := make(map[string]struct{})
	for _, term := range strings.Fields(strings.ToLower(jobTitle)) {
		if _, ok := queryTerms[term]; ok {
			seen[term] = struct{}{}
		}
	}
	boost := 0.1 * float64(len(seen))
	if boost > 0.2 {
		boost = 0.2
	}
	return boost
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
