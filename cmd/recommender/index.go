package main

import (
	"fmt"
	"os"

	"github.com/jonathan/job-recommender/internal/db"
	"github.com/jonathan/job-recommender/internal/embedding"
	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/vectorindex"
	"github.com/spf13/cobra"
)

var indexBatchSize int

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Embed active jobs and refresh the vector index",
	Long:  "Embed every active job posting with the configured model and upsert the vectors into the pgvector index. Safe to re-run; existing entries are replaced.",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().IntVar(&indexBatchSize, "batch-size", 32, "Jobs embedded per API call")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireAPIKey(cfg); err != nil {
		return err
	}
	if indexBatchSize < 1 {
		return fmt.Errorf("--batch-size must be at least 1")
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

	index := vectorindex.NewPGVectorIndex(database.Pool(), cfg.VectorDim)

	indexed := 0
	for offset := 0; ; offset += indexBatchSize {
		jobs, err := database.ListActiveJobs(ctx, indexBatchSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}
		if len(jobs) == 0 {
			break
		}

		texts := make([]string, len(jobs))
		for i, job := range jobs {
			texts[i] = recommend.ComposeJobText(job)
		}

		vectors, err := embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to embed batch at offset %d: %w", offset, err)
		}

		if err := index.Upsert(ctx, jobs, vectors); err != nil {
			return fmt.Errorf("failed to upsert batch at offset %d: %w", offset, err)
		}
		indexed += len(jobs)

		if len(jobs) < indexBatchSize {
			break
		}
	}

	fmt.Fprintf(os.Stdout, "Indexed %d active jobs\n", indexed)
	return nil
}
