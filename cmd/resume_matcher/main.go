// Package main provides the entry point for the resume matcher service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume Matching & Scoring Engine",
	Long:  "Resume matcher scores resumes against job descriptions with a hybrid of keyword, semantic, skill, and experience signals, served over a REST API or run one-off from the CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
