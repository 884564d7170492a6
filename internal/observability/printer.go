// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonas-martinez/notion-sync/internal/notion"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles progress and verbose output during a sync run.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// Infof prints a progress line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Skipf prints a diagnostic for a page that was skipped.
func (p *Printer) Skipf(page notion.Page, reason string) {
	p.Infof("skip %q (%s): %s", page.Title, page.ID, reason)
}

// PrintPage outputs a per-page box in verbose mode.
func (p *Printer) PrintPage(page notion.Page, path, readingTime string) {
	if !p.verbose {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Slug:       %s\n", page.Slug))
	sb.WriteString(fmt.Sprintf("Collection: %s\n", page.Collection))
	if page.Locale != "" {
		sb.WriteString(fmt.Sprintf("Locale:     %s\n", page.Locale))
	}
	if len(page.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:       %s\n", strings.Join(page.Tags, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Reading:    %s\n", readingTime))
	sb.WriteString(fmt.Sprintf("Output:     %s", path))

	p.printBox(page.Title, sb.String())
}

// PrintSummary outputs the end-of-run completion line.
func (p *Printer) PrintSummary(written, skipped int) {
	p.Infof("sync complete: %d written, %d skipped", written, skipped)
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}
