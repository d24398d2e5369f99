package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModerationRequest struct {
	Input string `json:"input"`
	Model string `json:"model,omitempty"`
}

type Moderation struct {
	Id      string             `json:"id"`
	Model   string             `json:"model,omitempty"`
	Results []ModerationResult `json:"results"`
}

type ModerationResult struct {
	Flagged        bool               `json:"flagged"`
	Categories     map[string]bool    `json:"categories,omitempty"`
	CategoryScores map[string]float64 `json:"category_scores,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Moderations classifies whether the input violates the content policy
func (c *Client) Moderations(ctx context.Context, req ModerationRequest) (*Moderation, error) {
	if req.Input == "" {
		return nil, ErrBadParameter.With("missing input")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Moderation
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("moderations")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
