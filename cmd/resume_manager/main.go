// Package main provides the entry point for the Resume Manager HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_manager",
	Short: "Resume Manager HTTP API Server",
	Long:  "Resume Manager stores resume records in a JSON file and offers AI-assisted parsing, enhancement and improvement suggestions via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
