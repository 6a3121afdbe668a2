// Package main provides the entry point for the microcredential recommendation CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "microcred_agent",
	Short: "Microcredential recommendation engine",
	Long:  "Microcred Agent analyzes teaching documents, extracts their key competencies and recommends matching short courses, specializations and external certifications, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
