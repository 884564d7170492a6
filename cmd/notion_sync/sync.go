package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonas-martinez/notion-sync/internal/config"
	"github.com/jonas-martinez/notion-sync/internal/images"
	"github.com/jonas-martinez/notion-sync/internal/markdown"
	"github.com/jonas-martinez/notion-sync/internal/notion"
	"github.com/jonas-martinez/notion-sync/internal/observability"
	"github.com/jonas-martinez/notion-sync/internal/output"
	"github.com/jonas-martinez/notion-sync/internal/pipeline"
)

var syncCommand = &cobra.Command{
	Use:   "sync",
	Short: "Fetch pages from Notion and write markdown documents",
	Long: `Fetches the configured database, converts each page's block tree to
markdown, and writes one frontmatter-headed document per page under the
content root. Requires NOTION_API_KEY and NOTION_DATABASE_ID in the
environment (a .env file is honored).`,
	RunE: runSyncCmd,
}

var (
	syncPublished bool
	syncVerbose   bool
	syncDryRun    bool
)

func init() {
	syncCommand.Flags().BoolVarP(&syncPublished, "published", "p", false, "Sync only pages whose status is published")
	syncCommand.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Print a detail box per synced page")
	syncCommand.Flags().BoolVar(&syncDryRun, "dry-run", false, "Run the full pipeline without writing files or downloading images")

	rootCmd.AddCommand(syncCommand)
}

func runSyncCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s := &pipeline.Sync{
		Source:        notion.NewClient(cfg.APIKey, cfg.DatabaseID),
		Converter:     markdown.NewConverter(),
		Images:        images.NewDownloader(cfg.ImageDir),
		Resolver:      output.NewResolver(cfg.ContentRoot),
		Limiter:       pipeline.NewIntervalLimiter(cfg.RequestInterval),
		Printer:       observability.NewPrinter(os.Stdout, syncVerbose),
		DefaultLocale: cfg.DefaultLocale,
		DryRun:        syncDryRun,
	}

	return s.Run(context.Background(), syncPublished)
}
