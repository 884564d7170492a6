// Package notion wraps the Notion API client and normalizes its loosely
// typed page records into the canonical values the sync pipeline consumes.
package notion

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"github.com/jomei/notionapi"
)

// DefaultCollection buckets pages that declare no collection property.
const DefaultCollection = "etc"

// DefaultCategory is used when a page declares no category property.
const DefaultCategory = "unknown"

// docsCollection is the one collection whose default-locale pages live at
// the collection root instead of a locale subfolder.
const docsCollection = "docs"

// Page is one synchronized content item, extracted once per run and never
// mutated afterwards.
type Page struct {
	ID          string
	Title       string
	Slug        string
	Type        string
	Cover       string
	Tags        []string
	Collection  string
	Locale      string
	Category    string
	Status      *string
	PublishDate *time.Time
	Description *string
	CreatedTime time.Time
	LastEdited  time.Time
	Icon        any
	Archived    bool
}

// ExtractPage normalizes a raw page record. Defaults are applied here, at
// the extraction boundary, never downstream. A record with no title
// property at all is malformed and aborts the run.
func ExtractPage(record notionapi.Page, defaultLocale string) (Page, error) {
	titleProp := findTitle(record.Properties)
	if titleProp == nil {
		return Page{}, fmt.Errorf("malformed page %s: missing title property", record.ID)
	}

	title := PlainText(titleProp.Title)
	if title == "" {
		title = "Untitled"
	}

	page := Page{
		ID:          string(record.ID),
		Title:       title,
		Slug:        resolveSlug(record, title),
		Type:        string(record.Object),
		Cover:       coverURL(record.Cover),
		Tags:        multiSelectNames(record.Properties, "tags"),
		Collection:  selectOr(record.Properties, "collection", DefaultCollection),
		Category:    selectOr(record.Properties, "category", DefaultCategory),
		Status:      optionalSelect(record.Properties, "status"),
		PublishDate: dateValue(record.Properties, "publish_date"),
		Description: optionalRichText(record.Properties, "description"),
		CreatedTime: record.CreatedTime,
		LastEdited:  record.LastEditedTime,
		Icon:        iconValue(record.Icon),
		Archived:    record.Archived,
	}

	declared := selectOr(record.Properties, "locale", "")
	page.Locale = ResolveLocale(page.Collection, declared, defaultLocale)

	return page, nil
}

// ResolveLocale collapses the declared locale to "" for default-locale docs
// pages; every other page keeps its declared locale unchanged. Pure.
func ResolveLocale(collection, declared, defaultLocale string) string {
	if collection == docsCollection && declared == defaultLocale {
		return ""
	}
	return declared
}

// PlainText joins the plain-text content of rich text spans.
func PlainText(spans []notionapi.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.PlainText)
	}
	return strings.TrimSpace(sb.String())
}

// resolveSlug prefers the explicit slug property, then a sanitized title,
// then an id-derived fallback. The result is never empty.
func resolveSlug(record notionapi.Page, title string) string {
	if prop, ok := findProperty(record.Properties, "slug").(*notionapi.RichTextProperty); ok {
		if explicit := PlainText(prop.RichText); explicit != "" {
			return explicit
		}
	}

	if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
		return normalized
	}

	return "page-" + shortID(string(record.ID))
}

// shortID returns the first uuid group of a page id, tolerating the
// undashed form Notion sometimes hands back.
func shortID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()[:8]
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func coverURL(cover *notionapi.Image) string {
	if cover == nil {
		return ""
	}
	if cover.File != nil && cover.File.URL != "" {
		return cover.File.URL
	}
	if cover.External != nil {
		return cover.External.URL
	}
	return ""
}

func iconValue(icon *notionapi.Icon) any {
	if icon == nil {
		return nil
	}

	out := map[string]any{"type": string(icon.Type)}
	if icon.Emoji != nil {
		out["emoji"] = string(*icon.Emoji)
	}
	if icon.File != nil {
		out["file"] = map[string]any{"url": icon.File.URL}
	}
	if icon.External != nil {
		out["external"] = map[string]any{"url": icon.External.URL}
	}
	return out
}

// findProperty looks a property up by name, case-insensitively; Notion
// databases are hand-curated and property casing drifts.
func findProperty(props notionapi.Properties, name string) notionapi.Property {
	if prop, ok := props[name]; ok {
		return prop
	}
	for key, prop := range props {
		if strings.EqualFold(key, name) {
			return prop
		}
	}
	return nil
}

func findTitle(props notionapi.Properties) *notionapi.TitleProperty {
	for _, prop := range props {
		if title, ok := prop.(*notionapi.TitleProperty); ok {
			return title
		}
	}
	return nil
}

func selectOr(props notionapi.Properties, name, fallback string) string {
	switch prop := findProperty(props, name).(type) {
	case *notionapi.SelectProperty:
		if prop.Select.Name != "" {
			return prop.Select.Name
		}
	case *notionapi.StatusProperty:
		if prop.Status.Name != "" {
			return prop.Status.Name
		}
	}
	return fallback
}

func optionalSelect(props notionapi.Properties, name string) *string {
	if value := selectOr(props, name, ""); value != "" {
		return &value
	}
	return nil
}

func optionalRichText(props notionapi.Properties, name string) *string {
	if prop, ok := findProperty(props, name).(*notionapi.RichTextProperty); ok {
		if text := PlainText(prop.RichText); text != "" {
			return &text
		}
	}
	return nil
}

// multiSelectNames preserves source order and does not deduplicate.
func multiSelectNames(props notionapi.Properties, name string) []string {
	prop, ok := findProperty(props, name).(*notionapi.MultiSelectProperty)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(prop.MultiSelect))
	for _, option := range prop.MultiSelect {
		names = append(names, option.Name)
	}
	return names
}

func dateValue(props notionapi.Properties, name string) *time.Time {
	prop, ok := findProperty(props, name).(*notionapi.DateProperty)
	if !ok || prop.Date == nil || prop.Date.Start == nil {
		return nil
	}
	start := time.Time(*prop.Date.Start)
	return &start
}
