package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Model struct {
	Name      string `json:"id"`
	Type      string `json:"object,omitempty"`
	CreatedAt uint64 `json:"created,omitempty"`
	OwnedBy   string `json:"owned_by,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// ListModels returns all the models
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	// Return the response
	var response struct {
		Data []Model `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models")); err != nil {
		return nil, err
	}

	// Return success
	return response.Data, nil
}

// GetModel returns one model
func (c *Client) GetModel(ctx context.Context, model string) (*Model, error) {
	if model == "" {
		return nil, ErrBadParameter.With("missing model")
	}

	// Return the response
	var response Model
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models", model)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// DeleteModel deletes a fine-tuned model. You must have the Owner
// role in your organization to delete a model.
func (c *Client) DeleteModel(ctx context.Context, model string) error {
	if model == "" {
		return ErrBadParameter.With("missing model")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("models", model)); err != nil {
		return err
	}

	// Return success
	return nil
}
