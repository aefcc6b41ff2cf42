package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/job-recommender/internal/db"
	"github.com/jonathan/job-recommender/internal/fetch"
	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	importFile    string
	importURL     string
	importTitle   string
	importSkills  []string
	importAddress string
	importBrowser bool
	importVerbose bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import job postings from a JSON file or a job board URL",
	Long: `Import job postings into the catalog. With --file, the JSON batch is
validated against schemas/job_import.schema.json before anything is written.
With --url, the posting page is fetched (cached for a week), the description
extracted with platform-aware selectors, and a single job created. Run
'recommender index' afterwards to make the new jobs searchable.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to JSON batch file")
	importCmd.Flags().StringVarP(&importURL, "url", "u", "", "Job posting URL to fetch")
	importCmd.Flags().StringVar(&importTitle, "title", "", "Job title (required with --url)")
	importCmd.Flags().StringSliceVar(&importSkills, "skills", nil, "Job skills (with --url)")
	importCmd.Flags().StringVar(&importAddress, "address", "", "Job location (with --url)")
	importCmd.Flags().BoolVar(&importBrowser, "browser", false, "Force headless browser rendering for --url")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Verbose fetch output")

	rootCmd.AddCommand(importCmd)
}

// importBatch mirrors the job_import schema.
type importBatch struct {
	Jobs []importJob `json:"jobs"`
}

type importJob struct {
	Title       string   `json:"title"`
	Skills      []string `json:"skills,omitempty"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	URL         string   `json:"url,omitempty"`
}

func runImport(cmd *cobra.Command, _ []string) error {
	if importFile == "" && importURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if importFile != "" && importURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if importFile != "" {
		return importFromFile(cmd, database)
	}
	return importFromURL(cmd, database)
}

func importFromFile(cmd *cobra.Command, database *db.DB) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.JobImportSchema)
	if schemaPath == "" {
		return fmt.Errorf("job import schema not found: %s", schemas.JobImportSchema)
	}
	if err := schemas.ValidateJSON(schemaPath, importFile); err != nil {
		return fmt.Errorf("import file rejected: %w", err)
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var batch importBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	ctx := cmd.Context()
	for i, job := range batch.Jobs {
		id, err := database.CreateJob(ctx, &db.JobCreateInput{
			Title:       job.Title,
			Skills:      job.Skills,
			Description: job.Description,
			Address:     job.Address,
		})
		if err != nil {
			return fmt.Errorf("failed to create job %d of %d: %w", i+1, len(batch.Jobs), err)
		}
		fmt.Fprintf(os.Stdout, "Created job %d: %s\n", id, job.Title)
	}

	fmt.Fprintf(os.Stdout, "Imported %d jobs. Run 'recommender index' to make them searchable.\n", len(batch.Jobs))
	return nil
}

func importFromURL(cmd *cobra.Command, database *db.DB) error {
	if importTitle == "" {
		return fmt.Errorf("--title is required with --url")
	}

	ctx := cmd.Context()

	fetcher := fetch.NewCachedFetcher(database, nil)
	result, err := fetcher.Fetch(ctx, importURL)
	if err != nil {
		return fmt.Errorf("failed to fetch posting: %w", err)
	}

	text := result.Text
	if importBrowser || fetch.NeedsBrowser(text) {
		// Thin HTTP result means a client-side rendered board.
		html, err := fetch.RenderWithBrowser(ctx, importURL, fetch.DefaultBrowserTimeout, importVerbose)
		if err != nil {
			return fmt.Errorf("failed to render posting: %w", err)
		}
		text, err = fetch.ExtractPostingText(importURL, html)
		if err != nil {
			return fmt.Errorf("failed to extract posting text: %w", err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no posting text extracted from %s", importURL)
	}

	id, err := database.CreateJob(ctx, &db.JobCreateInput{
		Title:       importTitle,
		Skills:      importSkills,
		Description: text,
		Address:     importAddress,
	})
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Created job %d from %s (%s)\n", id, importURL, fetch.DetectPlatform(importURL))
	fmt.Fprintln(os.Stdout, "Run 'recommender index' to make it searchable.")
	return nil
}
