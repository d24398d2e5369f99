package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ClassificationRequest struct {
	Model       string     `json:"model"`
	Query       string     `json:"query"`
	Examples    [][]string `json:"examples,omitempty"`
	File        string     `json:"file,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	SearchModel string     `json:"search_model,omitempty"`
	Temperature float64    `json:"temperature,omitempty"`
	MaxExamples uint64     `json:"max_examples,omitempty"`
}

type Classification struct {
	Completion       string            `json:"completion,omitempty"`
	Label            string            `json:"label"`
	Model            string            `json:"model,omitempty"`
	Type             string            `json:"object,omitempty"`
	SearchModel      string            `json:"search_model,omitempty"`
	SelectedExamples []SelectedExample `json:"selected_examples,omitempty"`
}

type SelectedExample struct {
	Document uint64 `json:"document"`
	Label    string `json:"label,omitempty"`
	Text     string `json:"text,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Classifications classifies a query given labeled examples.
//
// Deprecated: the classifications endpoint is deprecated, use
// Completion with an instruction prompt instead.
func (c *Client) Classifications(ctx context.Context, req ClassificationRequest) (*Classification, error) {
	if req.Model == "" {
		return nil, ErrBadParameter.With("missing model")
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
	var response Classification
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("classifications")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
