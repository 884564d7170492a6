// Package output places synchronized documents on disk: it resolves
// destination paths and renders the frontmatter header.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver computes destination file paths under a content root.
type Resolver struct {
	Root string
}

// NewResolver creates a Resolver rooted at root.
func NewResolver(root string) *Resolver {
	return &Resolver{Root: root}
}

// Resolve returns the destination path for a page. The shape is
// <root>/<collection>/<locale>/<slug>.md; an empty locale segment is
// elided so default-locale docs sit at the collection root.
func (r *Resolver) Resolve(collection, locale, slug string) string {
	if locale == "" {
		return filepath.Join(r.Root, collection, slug+".md")
	}
	return filepath.Join(r.Root, collection, locale, slug+".md")
}

// EnsureDir creates every directory component of filePath short of the
// file name. Safe to call repeatedly.
func (r *Resolver) EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// Write resolves the directory and overwrites filePath with content.
func (r *Resolver) Write(filePath string, content []byte) error {
	if err := r.EnsureDir(filePath); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}
