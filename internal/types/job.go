package types

// JobCandidate is a job surfaced by the vector index or catalog, immutable
// for the duration of one recommendation call.
type JobCandidate struct {
	JobID       int64    `json:"job_id"`
	Title       string   `json:"title"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// SourceWeight records how much each signal source contributed to a hybrid
// score. Content + CF always sums to 1.0.
type SourceWeight struct {
	Content float64 `json:"content"`
	CF      float64 `json:"cf"`
}

// ScoredJob is a job with its per-signal content scores. FinalScore and
// SourceWeight are attached only by the hybrid fusion pass.
type ScoredJob struct {
	JobID       int64    `json:"job_id"`
	Title       string   `json:"title"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`

	// Score provenance. SemanticSimilarity and SkillOverlap are each in
	// [0,1], TitleBoost in [0,0.2]. Similarity is the combined content
	// score and may slightly exceed 1 when the boost applies.
	SemanticSimilarity float64 `json:"semantic_similarity"`
	SkillOverlap       float64 `json:"skill_overlap"`
	TitleBoost         float64 `json:"title_boost"`
	Similarity         float64 `json:"similarity"`

	FinalScore   *float64      `json:"final_score,omitempty"`
	SourceWeight *SourceWeight `json:"source_weight,omitempty"`
}

// CFScore is a collaborative-filtering result: similarity is the score
// normalized against the best entry in the result set, RawScore the
// unnormalized neighbor-weighted sum.
type CFScore struct {
	JobID       int64    `json:"job_id"`
	Title       string   `json:"title,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Description string   `json:"description,omitempty"`
	Similarity  float64  `json:"similarity"`
	RawScore    float64  `json:"raw_cf_score"`
}

// RecommendationSet carries the three audit views of a hybrid call so
// callers can see what each signal contributed.
type RecommendationSet struct {
	ContentBased  []ScoredJob `json:"content_based"`
	Collaborative []CFScore   `json:"collaborative"`
	Hybrid        []ScoredJob `json:"hybrid_top"`
}
