package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ibero-edu/microcred-recommender/internal/extraction"
	"github.com/ibero-edu/microcred-recommender/internal/observability"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract weighted candidate terms from a document",
	Long:  "Extracts the ranked, deduplicated candidate terms from a document without ranking catalogs, useful for inspecting what an analysis would match on.",
	RunE:  runExtract,
}

var (
	extractDoc      string
	extractOutput   string
	extractMaxTerms int
	extractVerbose  bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractDoc, "doc", "d", "", "Path to the document text file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().IntVar(&extractMaxTerms, "max-terms", 0, "Candidate terms to keep")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted term table instead of raw JSON only")

	_ = extractCmd.MarkFlagRequired("doc")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	docBytes, err := os.ReadFile(extractDoc)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	terms := extraction.Extract(string(docBytes), extractMaxTerms)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintTerms(terms)
	}

	jsonBytes, err := json.MarshalIndent(terms, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal terms: %w", err)
	}

	if extractOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(extractOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Terms written to %s\n", extractOutput)
	return nil
}
