// Package pipeline provides the high-level orchestration for a sync run:
// fetch, assemble, enrich, and write, one page at a time.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"github.com/jonas-martinez/notion-sync/internal/images"
	"github.com/jonas-martinez/notion-sync/internal/markdown"
	"github.com/jonas-martinez/notion-sync/internal/notion"
	"github.com/jonas-martinez/notion-sync/internal/observability"
	"github.com/jonas-martinez/notion-sync/internal/output"
	"github.com/jonas-martinez/notion-sync/internal/readtime"
)

// ErrEmptyContent marks a page whose assembled body is empty. It is the
// one recovered failure: the page is skipped and the run continues.
var ErrEmptyContent = errors.New("pipeline: page has no content")

// Source lists page records and retrieves block trees.
type Source interface {
	ListPages(ctx context.Context, publishedOnly bool) ([]notionapi.Page, error)
	BlockTree(ctx context.Context, pageID string) ([]notion.Node, error)
}

// ImageFetcher downloads an image and returns its local filename.
type ImageFetcher interface {
	Download(ctx context.Context, rawURL string, opts images.Options) (string, error)
}

// Limiter gates remote calls. *rate.Limiter satisfies it in production;
// tests inject a zero-delay recorder.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewIntervalLimiter returns a limiter that releases one call per
// interval, matching the remote service's fixed-rate quota.
func NewIntervalLimiter(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Sync drives the fetch → assemble → enrich → write loop. Pages are
// processed strictly sequentially; the limiter is awaited before every
// per-page fetch so the aggregate request rate stays under the quota.
type Sync struct {
	Source        Source
	Converter     *markdown.Converter
	Images        ImageFetcher
	Resolver      *output.Resolver
	Limiter       Limiter
	Printer       *observability.Printer
	DefaultLocale string
	DryRun        bool
}

// Run synchronizes every selected page. Only ErrEmptyContent is recovered;
// configuration, extraction, fetch, and write failures abort the run.
func (s *Sync) Run(ctx context.Context, publishedOnly bool) error {
	records, err := s.Source.ListPages(ctx, publishedOnly)
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}
	s.Printer.Infof("syncing %d pages", len(records))

	written, skipped := 0, 0
	for _, record := range records {
		if err := s.Limiter.Wait(ctx); err != nil {
			return err
		}

		page, err := notion.ExtractPage(record, s.DefaultLocale)
		if err != nil {
			return err
		}

		if err := s.syncPage(ctx, page); err != nil {
			if errors.Is(err, ErrEmptyContent) {
				s.Printer.Skipf(page, "empty content")
				skipped++
				continue
			}
			return fmt.Errorf("failed to sync page %q: %w", page.Title, err)
		}
		written++
	}

	s.Printer.PrintSummary(written, skipped)
	return nil
}

func (s *Sync) syncPage(ctx context.Context, page notion.Page) error {
	nodes, err := s.Source.BlockTree(ctx, page.ID)
	if err != nil {
		return err
	}

	body, err := s.Converter.ConvertAll(nodes)
	if err != nil {
		return err
	}

	stat := readtime.Estimate(body)

	var coverFile string
	if page.Cover != "" && !s.DryRun {
		coverFile, err = s.Images.Download(ctx, page.Cover, images.Options{IsCover: true})
		if err != nil {
			return err
		}
	}

	if strings.TrimSpace(body) == "" {
		return ErrEmptyContent
	}

	doc, err := output.Document(frontmatterFor(page, coverFile, stat.Text), body+"\n")
	if err != nil {
		return err
	}

	path := s.Resolver.Resolve(page.Collection, page.Locale, page.Slug)
	s.Printer.PrintPage(page, path, stat.Text)

	if s.DryRun {
		s.Printer.Infof("dry-run: would write %s", path)
		return nil
	}
	return s.Resolver.Write(path, []byte(doc))
}

func frontmatterFor(page notion.Page, coverFile, readingTime string) output.Frontmatter {
	var coverAlt string
	if page.Cover != "" {
		coverAlt = page.Title
	}

	return output.Frontmatter{
		ID:            page.ID,
		Type:          page.Type,
		Slug:          page.Slug,
		Title:         page.Title,
		Cover:         page.Cover,
		CoverAlt:      coverAlt,
		CoverFileName: coverFile,
		Tags:          page.Tags,
		CreatedTime:   page.CreatedTime,
		LastEdited:    page.LastEdited,
		Icon:          page.Icon,
		Archived:      page.Archived,
		Category:      page.Category,
		Locale:        page.Locale,
		Status:        page.Status,
		PublishDate:   page.PublishDate,
		Description:   page.Description,
		ReadingTime:   readingTime,
	}
}
