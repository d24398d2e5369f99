package openai

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Embeddings is the metadata for generated embedding vectors
type Embeddings struct {
	Type  string      `json:"object,omitempty"`
	Model string      `json:"model,omitempty"`
	Data  []Embedding `json:"data"`
	Usage Usage       `json:"usage,omitempty"`
}

// Embedding is a single vector
type Embedding struct {
	Type   string    `json:"object,omitempty"`
	Index  uint64    `json:"index"`
	Vector []float64 `json:"embedding"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Embedding) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Vector)
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

type reqEmbedding struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// GenerateEmbedding generates embedding vectors for the given inputs
func (c *Client) GenerateEmbedding(ctx context.Context, model string, input []string) (*Embeddings, error) {
	// Bail out if no input
	if model == "" {
		return nil, ErrBadParameter.With("missing model")
	}
	if len(input) == 0 {
		return nil, ErrBadParameter.With("missing input")
	}

	// Request
	payload, err := client.NewJSONRequest(reqEmbedding{
		Model: model,
		Input: input,
	})
	if err != nil {
		return nil, err
	}

	// Response
	var response Embeddings
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("embeddings")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Embedding generates one embedding vector for one input
func (c *Client) Embedding(ctx context.Context, model, input string) ([]float64, error) {
	response, err := c.GenerateEmbedding(ctx, model, []string{input})
	if err != nil {
		return nil, err
	}
	if len(response.Data) == 0 {
		return nil, ErrNotFound.With("no embeddings returned")
	}
	return response.Data[0].Vector, nil
}
