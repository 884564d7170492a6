package markdown

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/jonas-martinez/notion-sync/internal/notion"
)

// Converter assembles a page's block tree into a single markdown body.
// Output order is exactly source document order; nothing is reordered,
// deduplicated, or cached.
type Converter struct {
	registry *Registry
}

// NewConverter creates a Converter with the built-in media overrides
// (embed, image, video) installed.
func NewConverter() *Converter {
	c := &Converter{registry: NewRegistry()}
	c.registry.Register(notionapi.BlockTypeEmbed, transformEmbed)
	c.registry.Register(notionapi.BlockTypeImage, transformImage)
	c.registry.Register(notionapi.BlockTypeVideo, transformVideo)
	return c
}

// Register overrides the handler for a block type.
func (c *Converter) Register(blockType notionapi.BlockType, fn Transformer) {
	c.registry.Register(blockType, fn)
}

// ConvertAll walks the tree depth-first in document order and concatenates
// the per-block fragments. An empty tree yields an empty string.
func (c *Converter) ConvertAll(nodes []notion.Node) (string, error) {
	var parts []string
	var prevType notionapi.BlockType

	for _, n := range nodes {
		fragment, err := c.convertNode(n)
		if err != nil {
			return "", err
		}
		if fragment == "" {
			continue
		}

		blockType := n.Block.GetType()
		if len(parts) > 0 {
			if isListType(blockType) && blockType == prevType {
				parts = append(parts, "\n")
			} else {
				parts = append(parts, "\n\n")
			}
		}
		parts = append(parts, fragment)
		prevType = blockType
	}

	return strings.Join(parts, ""), nil
}

// convertNode renders one block and, for structural types, its children
// indented beneath it.
func (c *Converter) convertNode(n notion.Node) (string, error) {
	fragment, err := c.registry.Transform(c, n)
	if err != nil {
		return "", err
	}
	if len(n.Children) == 0 {
		return fragment, nil
	}

	childBody, err := c.ConvertAll(n.Children)
	if err != nil {
		return "", err
	}
	if childBody == "" {
		return fragment, nil
	}

	switch n.Block.GetType() {
	case notionapi.BlockTypeQuote, notionapi.BlockTypeCallout:
		return fragment + "\n" + prefixLines(childBody, "> "), nil
	case notionapi.BlockTypeBulletedListItem, notionapi.BlockTypeNumberedListItem,
		notionapi.BlockTypeToDo, notionapi.BlockTypeToggle:
		return fragment + "\n" + prefixLines(childBody, "  "), nil
	default:
		return fragment + "\n\n" + childBody, nil
	}
}

func genericTransform(c *Converter, n notion.Node) (string, error) {
	switch block := n.Block.(type) {
	case *notionapi.ParagraphBlock:
		return c.RichText(block.Paragraph.RichText), nil
	case *notionapi.Heading1Block:
		return "# " + c.RichText(block.Heading1.RichText), nil
	case *notionapi.Heading2Block:
		return "## " + c.RichText(block.Heading2.RichText), nil
	case *notionapi.Heading3Block:
		return "### " + c.RichText(block.Heading3.RichText), nil
	case *notionapi.BulletedListItemBlock:
		return "- " + c.RichText(block.BulletedListItem.RichText), nil
	case *notionapi.NumberedListItemBlock:
		return "1. " + c.RichText(block.NumberedListItem.RichText), nil
	case *notionapi.ToDoBlock:
		marker := "- [ ] "
		if block.ToDo.Checked {
			marker = "- [x] "
		}
		return marker + c.RichText(block.ToDo.RichText), nil
	case *notionapi.QuoteBlock:
		return "> " + c.RichText(block.Quote.RichText), nil
	case *notionapi.CalloutBlock:
		return "> " + c.RichText(block.Callout.RichText), nil
	case *notionapi.CodeBlock:
		text := notion.PlainText(block.Code.RichText)
		return fmt.Sprintf("```%s\n%s\n```", block.Code.Language, text), nil
	case *notionapi.DividerBlock:
		return "---", nil
	case *notionapi.BookmarkBlock:
		return bookmarkFragment(c, block), nil
	case *notionapi.ToggleBlock:
		return c.RichText(block.Toggle.RichText), nil
	case *notionapi.ChildPageBlock:
		return block.ChildPage.Title, nil
	default:
		// Unsupported block types are dropped, not errors.
		return "", nil
	}
}

func bookmarkFragment(c *Converter, block *notionapi.BookmarkBlock) string {
	if block.Bookmark.URL == "" {
		return ""
	}
	label := c.RichText(block.Bookmark.Caption)
	if label == "" {
		label = block.Bookmark.URL
	}
	return fmt.Sprintf("[%s](%s)", label, block.Bookmark.URL)
}

func isListType(t notionapi.BlockType) bool {
	switch t {
	case notionapi.BlockTypeBulletedListItem, notionapi.BlockTypeNumberedListItem, notionapi.BlockTypeToDo:
		return true
	}
	return false
}

func prefixLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
