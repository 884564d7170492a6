package notion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jomei/notionapi"
)

// pageSize is the maximum result count the Notion API allows per call.
const pageSize = 100

// publishedStatus is the select value that marks a page as published.
const publishedStatus = "published"

// Node is one node of a page's content tree: the raw block plus its
// fetched children. The tree is read-only input to the converter.
type Node struct {
	Block    notionapi.Block
	Children []Node
}

// Client wraps the Notion API for one database.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

// NewClient creates a Client for the given integration token and database.
// Undashed database ids are normalized to the dashed uuid form.
func NewClient(apiKey, databaseID string) *Client {
	if parsed, err := uuid.Parse(databaseID); err == nil {
		databaseID = parsed.String()
	}

	return &Client{
		api:        notionapi.NewClient(notionapi.Token(apiKey)),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

// ListPages queries the database, following pagination. When publishedOnly
// is set the filter is applied server-side, so the caller never sees
// unpublished records.
func (c *Client) ListPages(ctx context.Context, publishedOnly bool) ([]notionapi.Page, error) {
	request := &notionapi.DatabaseQueryRequest{PageSize: pageSize}
	if publishedOnly {
		request.Filter = &notionapi.PropertyFilter{
			Property: "status",
			Select:   &notionapi.SelectFilterCondition{Equals: publishedStatus},
		}
	}

	var pages []notionapi.Page
	for {
		resp, err := c.api.Database.Query(ctx, c.databaseID, request)
		if err != nil {
			return nil, fmt.Errorf("failed to query database %s: %w", c.databaseID, err)
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		request.StartCursor = resp.NextCursor
	}
}

// BlockTree retrieves the full block tree for a page, descending into
// every block that reports children. Nesting is kept structural.
func (c *Client) BlockTree(ctx context.Context, pageID string) ([]Node, error) {
	return c.fetchChildren(ctx, notionapi.BlockID(pageID))
}

func (c *Client) fetchChildren(ctx context.Context, id notionapi.BlockID) ([]Node, error) {
	var nodes []Node

	pagination := &notionapi.Pagination{PageSize: pageSize}
	for {
		resp, err := c.api.Block.GetChildren(ctx, id, pagination)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch children of block %s: %w", id, err)
		}

		for _, block := range resp.Results {
			node := Node{Block: block}
			if block.GetHasChildren() {
				children, err := c.fetchChildren(ctx, block.GetID())
				if err != nil {
					return nil, err
				}
				node.Children = children
			}
			nodes = append(nodes, node)
		}

		if !resp.HasMore {
			return nodes, nil
		}
		pagination.StartCursor = notionapi.Cursor(resp.NextCursor)
	}
}
