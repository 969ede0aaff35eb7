// Package main implements the resume_targeter CLI for relevance selection
// and ATS keyword scoring.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_targeter",
	Short: "Target-aware resume selection and ATS scoring",
	Long:  "Resume Targeter selects the most job-relevant experiences and bullets from a canonical profile and scores resumes against prioritized ATS keyword lists.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
