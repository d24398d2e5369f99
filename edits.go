package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type EditRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input,omitempty"`
	Instruction    string  `json:"instruction"`
	NumCompletions uint64  `json:"n,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	TopP           float64 `json:"top_p,omitempty"`
}

type Edit struct {
	Type    string   `json:"object,omitempty"`
	Created uint64   `json:"created,omitempty"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Edit generates an edited version of the input given an instruction
func (c *Client) Edit(ctx context.Context, req EditRequest) (*Edit, error) {
	if req.Model == "" {
		return nil, ErrBadParameter.With("missing model")
	}
	if req.Instruction == "" {
		return nil, ErrBadParameter.With("missing instruction")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Edit
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("edits")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
