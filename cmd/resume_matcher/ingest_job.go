package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingest"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting from a text file or URL",
	Long: `Ingest a job posting from either a text file or URL, parse it into a
structured job description, and print it as JSON, write it to a file, or
save it to the database.`,
	RunE: runIngestJob,
}

var (
	ingestTextFile    string
	ingestURL         string
	ingestOutputFile  string
	ingestSave        bool
	ingestDatabaseURL string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().StringVarP(&ingestOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	ingestJobCmd.Flags().BoolVar(&ingestSave, "save", false, "Save the job description to the database")
	ingestJobCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "Database URL (required with --save, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	var text string
	if ingestTextFile != "" {
		data, err := os.ReadFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}
		text = extract.CleanText(string(data))
	} else {
		if _, err := url.ParseRequestURI(ingestURL); err != nil {
			return fmt.Errorf("invalid url: %w", err)
		}
		result, err := fetch.Posting(ctx, ingestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		text = result.Text
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("job posting yielded no readable text")
	}

	jd := ingest.JobDescription(text, ingestURL)

	if ingestSave {
		dbURL := ingestDatabaseURL
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL required when using --save")
		}

		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.InitSchema(ctx); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}

		id, err := database.SaveJobDescription(ctx, jd)
		if err != nil {
			return fmt.Errorf("failed to save job description: %w", err)
		}
		jd.ID = id
	}

	jsonBytes, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if ingestOutputFile != "" {
		if err := os.WriteFile(ingestOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
		if ingestSave {
			_, _ = fmt.Fprintf(os.Stdout, "Saved job description: %s\n", jd.ID)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", ingestOutputFile)
		return nil
	}

	if ingestSave {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
		_, _ = fmt.Fprintf(os.Stdout, "Saved job description: %s\n", jd.ID)
		_, _ = fmt.Fprintf(os.Stdout, "Title: %s\n", jd.Title)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)

	return nil
}
