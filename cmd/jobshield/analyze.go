package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkale/jobshield/internal/config"
	"github.com/mkale/jobshield/internal/fetch"
	"github.com/mkale/jobshield/internal/ingestion"
	"github.com/mkale/jobshield/internal/observability"
	"github.com/mkale/jobshield/internal/scoring"
	"github.com/mkale/jobshield/internal/types"
)

var (
	analyzeJob        string
	analyzeURL        string
	analyzeConfigPath string
	analyzeLexicon    string
	analyzeDomain     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a job posting for fraud risk",
	Long:  `Score a job posting from a text file or URL and print the risk assessment.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Path to custom lexicon file")
	analyzeCmd.Flags().StringVar(&analyzeDomain, "domain", "", "Company domain override")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Allow headless browser rendering for SPA portals")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print the feature breakdown as well")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:         analyzeJob,
		JobURL:      analyzeURL,
		LexiconPath: analyzeLexicon,
		UseBrowser:  analyzeUseBrowser,
		Verbose:     analyzeVerbose,
	}
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --url is required")
	}

	engine, err := buildEngine(cfg.LexiconPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var job *types.JobPosting
	if cfg.Job != "" {
		text, err := ingestion.ReadPostingFile(cfg.Job)
		if err != nil {
			return err
		}
		job = ingestion.ParsePosting(text)
	} else {
		text, platform, err := fetch.Posting(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to fetch posting: %w", err)
		}
		job = ingestion.ParsePosting(text)
		job.URL = cfg.JobURL
		if platform != fetch.PlatformUnknown {
			job.JobPortal = string(platform)
		}
	}

	if analyzeDomain != "" {
		job.CompanyDomain = analyzeDomain
	}

	assessment, err := engine.Score(ctx, job)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if analyzeJSON {
		report := scoring.BuildReport(job, assessment)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAssessment(job, assessment)
	if cfg.Verbose {
		printer.PrintFeatures(assessment.Features)
	}
	return nil
}
