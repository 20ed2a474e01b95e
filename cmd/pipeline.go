package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"property-insights/core/config"
	"property-insights/core/logger"
	"property-insights/core/pipeline"
	"property-insights/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for pipeline run command
	demographicsFlag string
	listingsFlag     string
	thresholdFlag    int
	scorerFlag       string
	jsonOutput       bool
)

// pipelineCmd is the parent command for pipeline operations.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the demographics/listings record-linkage pipeline",
	Long: `Operate the record-linkage pipeline directly from the CLI.
Useful for inspecting match quality before serving the data.`,
}

// pipelineRunCmd executes one pipeline pass and prints the run report.
var pipelineRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pipeline once and print the reconciliation report",
	Long: `Run the pipeline once against the configured (or flagged) sources.

Prints how many listings matched a canonical postal code, how many were
dropped at reconciliation, and the size of the joined output table.

Examples:
  # Run with configured sources
  pipeline run

  # Run against explicit files
  pipeline run --demographics data/demographics.csv --listings data/listings.csv

  # Stricter matching, full result as JSON
  pipeline run --threshold 90 --json`,
	RunE: runPipeline,
}

func init() {
	pipelineCmd.AddCommand(pipelineRunCmd)

	pipelineRunCmd.Flags().StringVar(&demographicsFlag, "demographics", "", "Path to the demographics source (overrides config)")
	pipelineRunCmd.Flags().StringVar(&listingsFlag, "listings", "", "Path to the listings source (overrides config)")
	pipelineRunCmd.Flags().IntVar(&thresholdFlag, "threshold", -1, "Minimum acceptable similarity score 0-100 (overrides config)")
	pipelineRunCmd.Flags().StringVar(&scorerFlag, "scorer", "", "Similarity scorer: partial_ratio, ratio, token_sort_ratio (overrides config)")
	pipelineRunCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON instead of a text report")

	RootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Apply flag overrides
	if demographicsFlag != "" {
		cfg.Pipeline.DemographicsPath = demographicsFlag
		cfg.Pipeline.Source = pipeline.SourceFile
	}
	if listingsFlag != "" {
		cfg.Pipeline.ListingsPath = listingsFlag
		cfg.Pipeline.Source = pipeline.SourceFile
	}
	if thresholdFlag >= 0 {
		cfg.Pipeline.Threshold = thresholdFlag
	}
	if scorerFlag != "" {
		cfg.Pipeline.Scorer = scorerFlag
	}

	// Connect to storage when the sources live in a bucket
	var store storage.Client
	if cfg.Pipeline.Source == pipeline.SourceStorage {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	spec, err := pipeline.SpecFromConfig(cfg.Pipeline, store, cfg.Storage.Bucket)
	if err != nil {
		return err
	}

	l.Info("Running pipeline",
		zap.String("demographics", spec.Demographics.Name()),
		zap.String("listings", spec.Listings.Name()),
		zap.Int("threshold", spec.Threshold),
		zap.String("scorer", spec.ScorerName),
	)

	result, err := pipeline.Run(ctx, spec)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printReport(result)
	return nil
}

// printReport writes a human-readable run report to stdout.
func printReport(result *pipeline.Result) {
	fmt.Println("Pipeline run report")
	fmt.Println("===================")
	if result.Warning != "" {
		fmt.Printf("WARNING: %s\n\n", result.Warning)
	}
	s := result.Summary
	fmt.Printf("Demographic rows:        %d\n", s.DemographicRows)
	fmt.Printf("Listing rows:            %d\n", s.ListingRows)
	fmt.Printf("Canonical codes:         %d\n", s.CanonicalCodes)
	fmt.Printf("Distinct prefixes:       %d\n", s.DistinctPrefixes)
	fmt.Printf("Matched listings:        %d\n", s.Matched)
	fmt.Printf("Dropped (no prefix):     %d\n", s.DroppedNoPrefix)
	fmt.Printf("Dropped (low score):     %d\n", s.DroppedBelowThreshold)
	fmt.Printf("Joined output rows:      %d\n", s.Joined)
	fmt.Printf("Generated at:            %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
}
