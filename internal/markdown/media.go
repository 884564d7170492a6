package markdown

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/jonas-martinez/notion-sync/internal/notion"
)

// defaultImageAlt is the alt text used when an image has no caption.
const defaultImageAlt = "article image"

// videoFrameAttrs are the fixed title and permission attributes applied to
// every rendered video frame.
const videoFrameAttrs = `title="video player" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen`

// transformEmbed renders an embeddable frame with a caption converted from
// the embed's rich text. Embeds without a URL are silently dropped.
func transformEmbed(c *Converter, n notion.Node) (string, error) {
	block, ok := n.Block.(*notionapi.EmbedBlock)
	if !ok || block.Embed.URL == "" {
		return "", nil
	}

	fragment := fmt.Sprintf(`<iframe src=%q></iframe>`, block.Embed.URL)
	if caption := c.RichText(block.Embed.Caption); caption != "" {
		fragment += "\n\n" + caption
	}
	return fragment, nil
}

// transformImage prefers the hosted file URL over the external URL. Alt
// text comes from the first caption span, falling back to a fixed string.
// A block with neither URL produces a degenerate fragment, not an error.
func transformImage(c *Converter, n notion.Node) (string, error) {
	block, ok := n.Block.(*notionapi.ImageBlock)
	if !ok {
		return "", nil
	}

	var url string
	if block.Image.File != nil && block.Image.File.URL != "" {
		url = block.Image.File.URL
	} else if block.Image.External != nil {
		url = block.Image.External.URL
	}

	alt := defaultImageAlt
	if len(block.Image.Caption) > 0 && block.Image.Caption[0].PlainText != "" {
		alt = block.Image.Caption[0].PlainText
	}

	return fmt.Sprintf("![%s](%s)", alt, url), nil
}

// transformVideo renders an embeddable frame for the block's external URL,
// rewriting YouTube watch URLs to their embed form. The caption field is
// accepted but not rendered, matching the output contract.
func transformVideo(_ *Converter, n notion.Node) (string, error) {
	block, ok := n.Block.(*notionapi.VideoBlock)
	if !ok || block.Video.External == nil || block.Video.External.URL == "" {
		return "", nil
	}

	url := youtubeEmbedURL(block.Video.External.URL)
	return fmt.Sprintf(`<iframe width="100%%" height="480" src=%q %s></iframe>`, url, videoFrameAttrs), nil
}

// youtubeEmbedURL rewrites a YouTube watch URL to its embed form. The
// rewrite deliberately truncates at the first & before extracting the v=
// value; keep that order when touching this. Non-watch URLs pass through
// unchanged.
func youtubeEmbedURL(raw string) string {
	if !strings.Contains(raw, "youtube.com/watch") {
		return raw
	}

	truncated, _, _ := strings.Cut(raw, "&")
	_, id, found := strings.Cut(truncated, "v=")
	if !found || id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}
