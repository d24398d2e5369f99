package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Engine struct {
	Id    string `json:"id"`
	Type  string `json:"object,omitempty"`
	Owner string `json:"owner,omitempty"`
	Ready bool   `json:"ready,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// ListEngines returns all engines.
//
// Deprecated: engines are deprecated, use ListModels instead.
func (c *Client) ListEngines(ctx context.Context) ([]Engine, error) {
	// Return the response
	var response struct {
		Data []Engine `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("engines")); err != nil {
		return nil, err
	}

	// Return success
	return response.Data, nil
}

// GetEngine returns one engine.
//
// Deprecated: engines are deprecated, use GetModel instead.
func (c *Client) GetEngine(ctx context.Context, engine string) (*Engine, error) {
	if engine == "" {
		return nil, ErrBadParameter.With("missing engine")
	}

	// Return the response
	var response Engine
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("engines", engine)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
