// Package markdown converts Notion block trees into markdown documents.
// A registry of per-block-type transformers sits in front of a generic
// converter; callers can override individual block types without touching
// the rest of the pipeline.
package markdown

import (
	"github.com/jomei/notionapi"

	"github.com/jonas-martinez/notion-sync/internal/notion"
)

// Transformer converts one block into a markdown fragment. Transformers
// receive the Converter so they can recursively convert nested rich text,
// such as captions.
type Transformer func(c *Converter, n notion.Node) (string, error)

// Registry maps block types to transformers. Unregistered types fall back
// to the generic converter.
type Registry struct {
	handlers map[notionapi.BlockType]Transformer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[notionapi.BlockType]Transformer{}}
}

// Register installs or overrides the handler for a block type.
func (r *Registry) Register(blockType notionapi.BlockType, fn Transformer) {
	r.handlers[blockType] = fn
}

// Transform converts one block, falling back to the generic converter for
// unregistered types.
func (r *Registry) Transform(c *Converter, n notion.Node) (string, error) {
	if fn, ok := r.handlers[n.Block.GetType()]; ok {
		return fn(c, n)
	}
	return genericTransform(c, n)
}
