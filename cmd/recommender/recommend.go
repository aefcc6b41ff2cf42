package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/db"
	"github.com/jonathan/job-recommender/internal/embedding"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/types"
	"github.com/jonathan/job-recommender/internal/vectorindex"
	"github.com/spf13/cobra"
)

var (
	recCandidateID int64
	recTopN        int
	recSkills      []string
	recTitle       string
	recDescription string
	recVerbose     bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations for a candidate",
	Long:  "Run the hybrid recommendation pipeline for one candidate and print the ranked jobs. Without --skills, --title or --description the candidate's stored resume profile is used as the query.",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().Int64Var(&recCandidateID, "candidate", 0, "Candidate ID (required)")
	recommendCmd.Flags().IntVar(&recTopN, "top-n", 10, "Number of recommendations")
	recommendCmd.Flags().StringSliceVar(&recSkills, "skills", nil, "Query skills (comma separated)")
	recommendCmd.Flags().StringVar(&recTitle, "title", "", "Query job title")
	recommendCmd.Flags().StringVar(&recDescription, "description", "", "Query description text")
	recommendCmd.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print per-signal score breakdowns")

	_ = recommendCmd.MarkFlagRequired("candidate")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireAPIKey(cfg); err != nil {
		return err
	}
	if recTopN < 1 || recTopN > 50 {
		return fmt.Errorf("--top-n must be between 1 and 50")
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	tuning, err := config.NewRecommenderConfig()
	if err != nil {
		return fmt.Errorf("failed to load recommender config: %w", err)
	}

	contentCfg := recommend.DefaultContentConfig()
	contentCfg.SkillWeight = tuning.SkillWeight
	contentCfg.MinThreshold = tuning.MinThreshold
	contentCfg.OverfetchFactor = tuning.OverfetchFactor

	index := vectorindex.NewPGVectorIndex(database.Pool(), cfg.VectorDim)
	content := recommend.NewContentRecommender(embedder, index, contentCfg)
	engine := recommend.NewHybridRecommender(content, database, database)
	engine.SetBlend(tuning.ContentWeight)

	profile := types.QueryProfile{
		Skills:      recSkills,
		Title:       recTitle,
		Description: recDescription,
	}
	if profile.IsEmpty() {
		candidate, err := database.GetCandidateProfile(ctx, recCandidateID)
		if err != nil {
			return fmt.Errorf("failed to load candidate %d: %w", recCandidateID, err)
		}
		profile = candidate.QueryProfile()
	}

	jobIDs, err := database.ActiveJobIDs(ctx)
	if err != nil {
		// CF degrades without the job pool; content still works.
		log.Printf("failed to load active job IDs, collaborative pass degraded: %v", err)
		jobIDs = nil
	}

	set, err := engine.Recommend(ctx, recCandidateID, profile, jobIDs, recTopN)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if recVerbose || cfg.Verbose {
		printer.PrintQueryProfile(&profile)
		printer.PrintRecommendationSet(set)
		return nil
	}

	for i, job := range set.Hybrid {
		score := job.Similarity
		if job.FinalScore != nil {
			score = *job.FinalScore
		}
		fmt.Fprintf(os.Stdout, "%2d. [%d] %s (%.3f)\n", i+1, job.JobID, job.Title, score)
	}
	if len(set.Hybrid) == 0 {
		fmt.Fprintln(os.Stdout, "No jobs above the similarity threshold.")
	}
	return nil
}
