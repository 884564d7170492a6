package output

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the fixed metadata header prepended to every document.
// Field order matters: the site generator diffs synced files, so the
// rendered key order must stay stable across runs.
type Frontmatter struct {
	ID            string     `yaml:"id"`
	Type          string     `yaml:"type"`
	Slug          string     `yaml:"slug"`
	Title         string     `yaml:"title"`
	Cover         string     `yaml:"cover"`
	CoverAlt      string     `yaml:"coverAlt"`
	CoverFileName string     `yaml:"coverFileName"`
	Tags          []string   `yaml:"tags"`
	CreatedTime   time.Time  `yaml:"created_time"`
	LastEdited    time.Time  `yaml:"last_edited_time"`
	Icon          any        `yaml:"icon"`
	Archived      bool       `yaml:"archived"`
	Category      string     `yaml:"category"`
	Locale        string     `yaml:"locale"`
	Status        *string    `yaml:"status"`
	PublishDate   *time.Time `yaml:"publish_date"`
	Description   *string    `yaml:"description"`
	ReadingTime   string     `yaml:"reading_time"`
}

// Render marshals the frontmatter between YAML delimiters.
func (f Frontmatter) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("failed to render frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to render frontmatter: %w", err)
	}

	buf.WriteString("---\n")
	return buf.String(), nil
}

// Document concatenates the rendered frontmatter, a blank line, and body.
func Document(f Frontmatter, body string) (string, error) {
	head, err := f.Render()
	if err != nil {
		return "", err
	}
	return head + "\n" + body, nil
}
