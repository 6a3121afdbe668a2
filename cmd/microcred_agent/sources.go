package main

import (
	"fmt"
	"os"

	"github.com/ibero-edu/microcred-recommender/internal/kb"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Print the external certification source list",
	Long:  "Prints the human-readable list of industry certification and platform sources the external matcher draws from.",
	RunE:  runSources,
}

var sourcesOutput string

func init() {
	sourcesCmd.Flags().StringVarP(&sourcesOutput, "out", "o", "", "Path to output text file (default: stdout)")
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(_ *cobra.Command, _ []string) error {
	text := kb.SourcesText()

	if sourcesOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, text)
		return nil
	}
	if err := os.WriteFile(sourcesOutput, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Sources written to %s\n", sourcesOutput)
	return nil
}
