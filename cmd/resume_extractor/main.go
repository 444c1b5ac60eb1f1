// Package main provides the entry point for the resume extraction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_extractor",
	Short: "Resume text extraction and segmentation CLI",
	Long:  "Resume Extractor parses resume documents (plain text, PDF, DOCX, HTML) into structured JSON records with contact details, skills, education, and a segmented work history.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
