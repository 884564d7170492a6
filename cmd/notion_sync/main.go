// Package main provides the entry point for the notion_sync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notion_sync",
	Short: "Sync Notion pages to markdown",
	Long:  "notion_sync pulls pages from a Notion database and writes them as frontmatter-headed markdown documents for a static site generator.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
