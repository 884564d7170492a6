package markdown

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// RichText renders rich text spans with their annotations applied:
// bold, italic, strikethrough, inline code, and links.
func (c *Converter) RichText(spans []notionapi.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(renderSpan(span))
	}
	return strings.TrimSpace(sb.String())
}

func renderSpan(span notionapi.RichText) string {
	text := span.PlainText
	if text == "" {
		return ""
	}

	// Annotations wrap the trimmed core so markers stay attached to the
	// text; surrounding whitespace is re-applied outside them.
	leading := text[:len(text)-len(strings.TrimLeft(text, " "))]
	trailing := text[len(strings.TrimRight(text, " ")):]
	core := strings.Trim(text, " ")

	if core != "" && span.Annotations != nil {
		a := span.Annotations
		if a.Code {
			core = "`" + core + "`"
		}
		if a.Bold {
			core = "**" + core + "**"
		}
		if a.Italic {
			core = "_" + core + "_"
		}
		if a.Strikethrough {
			core = "~~" + core + "~~"
		}
	}

	text = leading + core + trailing
	if span.Href != "" {
		return fmt.Sprintf("[%s](%s)", text, span.Href)
	}
	return text
}
