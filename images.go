package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ImageRequest struct {
	Prompt         string `json:"prompt"`
	NumCompletions uint64 `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	User           string `json:"user,omitempty"`
}

// ImageEditRequest edits an image given a prompt. The mask is
// optional and marks the areas to be replaced.
type ImageEditRequest struct {
	Image          client.File `json:"image"`
	Mask           client.File `json:"mask,omitempty"`
	Prompt         string      `json:"prompt"`
	NumCompletions uint64      `json:"n,omitempty"`
	Size           string      `json:"size,omitempty"`
	ResponseFormat string      `json:"response_format,omitempty"`
	User           string      `json:"user,omitempty"`
}

type ImageVariationRequest struct {
	Image          client.File `json:"image"`
	NumCompletions uint64      `json:"n,omitempty"`
	Size           string      `json:"size,omitempty"`
	ResponseFormat string      `json:"response_format,omitempty"`
	User           string      `json:"user,omitempty"`
}

type Images struct {
	Created uint64  `json:"created,omitempty"`
	Data    []Image `json:"data"`
}

type Image struct {
	Url  string `json:"url,omitempty"`
	Data string `json:"b64_json,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// CreateImage generates images from a text prompt
func (c *Client) CreateImage(ctx context.Context, req ImageRequest) (*Images, error) {
	if req.Prompt == "" {
		return nil, ErrBadParameter.With("missing prompt")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Images
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("images", "generations")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// EditImage generates edited images from a source image and a prompt
func (c *Client) EditImage(ctx context.Context, req ImageEditRequest) (*Images, error) {
	if req.Prompt == "" {
		return nil, ErrBadParameter.With("missing prompt")
	}

	// Request
	payload, err := client.NewMultipartRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Images
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("images", "edits")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// ImageVariation generates variations of a source image
func (c *Client) ImageVariation(ctx context.Context, req ImageVariationRequest) (*Images, error) {
	// Request
	payload, err := client.NewMultipartRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Images
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("images", "variations")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
