package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type SearchRequest struct {
	Documents      []string `json:"documents,omitempty"`
	File           string   `json:"file,omitempty"`
	Query          string   `json:"query"`
	MaxRerank      uint64   `json:"max_rerank,omitempty"`
	ReturnMetadata bool     `json:"return_metadata,omitempty"`
}

type SearchResult struct {
	Document uint64  `json:"document"`
	Type     string  `json:"object,omitempty"`
	Score    float64 `json:"score"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Search ranks documents by semantic similarity to a query, routed by
// engine id.
//
// Deprecated: the search endpoint is deprecated, use GenerateEmbedding
// and rank by vector similarity instead.
func (c *Client) Search(ctx context.Context, engine string, req SearchRequest) ([]SearchResult, error) {
	if engine == "" {
		return nil, ErrBadParameter.With("missing engine")
	}
	if req.Query == "" {
		return nil, ErrBadParameter.With("missing query")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response struct {
		Data []SearchResult `json:"data"`
	}
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("engines", engine, "search")); err != nil {
		return nil, err
	}

	// Return success
	return response.Data, nil
}
