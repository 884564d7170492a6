package markdown

import (
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonas-martinez/notion-sync/internal/notion"
)

func imageNode(image notionapi.Image) notion.Node {
	return notion.Node{Block: &notionapi.ImageBlock{
		BasicBlock: notionapi.BasicBlock{Object: "block", Type: notionapi.BlockTypeImage},
		Image:      image,
	}}
}

func videoNode(video notionapi.Video) notion.Node {
	return notion.Node{Block: &notionapi.VideoBlock{
		BasicBlock: notionapi.BasicBlock{Object: "block", Type: notionapi.BlockTypeVideo},
		Video:      video,
	}}
}

func embedNode(embed notionapi.Embed) notion.Node {
	return notion.Node{Block: &notionapi.EmbedBlock{
		BasicBlock: notionapi.BasicBlock{Object: "block", Type: notionapi.BlockTypeEmbed},
		Embed:      embed,
	}}
}

func TestImage_PrefersHostedFile(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{imageNode(notionapi.Image{
		File:     &notionapi.FileObject{URL: "https://files.notion.so/shot.png"},
		External: &notionapi.FileObject{URL: "https://cdn.example.com/shot.png"},
	})})
	require.NoError(t, err)

	assert.Equal(t, "![article image](https://files.notion.so/shot.png)", body)
}

func TestImage_CaptionBecomesAlt(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{imageNode(notionapi.Image{
		External: &notionapi.FileObject{URL: "https://cdn.example.com/logo.png"},
		Caption:  spans("Logo"),
	})})
	require.NoError(t, err)

	assert.Equal(t, "![Logo](https://cdn.example.com/logo.png)", body)
}

func TestImage_NoCaptionUsesFallbackAlt(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{imageNode(notionapi.Image{
		External: &notionapi.FileObject{URL: "https://cdn.example.com/logo.png"},
	})})
	require.NoError(t, err)

	assert.Equal(t, "![article image](https://cdn.example.com/logo.png)", body)
}

func TestImage_NoURLIsDegenerateNotError(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{imageNode(notionapi.Image{})})
	require.NoError(t, err)
	assert.Equal(t, "![article image]()", body)
}

func TestVideo_YouTubeWatchRewritten(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{videoNode(notionapi.Video{
		External: &notionapi.FileObject{URL: "https://www.youtube.com/watch?v=abc123&t=30s"},
	})})
	require.NoError(t, err)

	assert.Contains(t, body, `src="https://www.youtube.com/embed/abc123"`)
	assert.Contains(t, body, `title="video player"`)
	assert.Contains(t, body, "allowfullscreen")
}

func TestVideo_EmbedFormPassesThrough(t *testing.T) {
	url := "https://www.youtube.com/embed/abc123"
	body, err := NewConverter().ConvertAll([]notion.Node{videoNode(notionapi.Video{
		External: &notionapi.FileObject{URL: url},
	})})
	require.NoError(t, err)

	assert.Contains(t, body, `src="`+url+`"`)
}

func TestVideo_CaptionDropped(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{videoNode(notionapi.Video{
		External: &notionapi.FileObject{URL: "https://www.youtube.com/embed/abc123"},
		Caption:  spans("never rendered"),
	})})
	require.NoError(t, err)

	assert.NotContains(t, body, "never rendered")
}

func TestVideo_NoExternalURLDropped(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{videoNode(notionapi.Video{})})
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestEmbed_WithCaption(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{embedNode(notionapi.Embed{
		URL:     "https://codepen.io/pen/xyz",
		Caption: spans("A demo"),
	})})
	require.NoError(t, err)

	assert.Equal(t, "<iframe src=\"https://codepen.io/pen/xyz\"></iframe>\n\nA demo", body)
}

func TestEmbed_NoURLSilentlyDropped(t *testing.T) {
	body, err := NewConverter().ConvertAll([]notion.Node{embedNode(notionapi.Embed{
		Caption: spans("orphan caption"),
	})})
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestYoutubeEmbedURL_TruncateThenExtract(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=abc123&t=30s": "https://www.youtube.com/embed/abc123",
		"https://www.youtube.com/watch?v=abc123":       "https://www.youtube.com/embed/abc123",
		"https://www.youtube.com/embed/abc123":         "https://www.youtube.com/embed/abc123",
		"https://vimeo.com/12345":                      "https://vimeo.com/12345",
		"https://www.youtube.com/watch?t=30s&v=abc123": "https://www.youtube.com/watch?t=30s&v=abc123",
		"https://www.youtube.com/watch?v=":             "https://www.youtube.com/watch?v=",
	}

	for input, want := range cases {
		assert.Equal(t, want, youtubeEmbedURL(input), "input %s", input)
	}
}
