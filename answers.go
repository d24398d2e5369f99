package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AnswerRequest struct {
	Model           string     `json:"model"`
	Question        string     `json:"question"`
	Examples        [][]string `json:"examples"`
	ExamplesContext string     `json:"examples_context"`
	Documents       []string   `json:"documents,omitempty"`
	File            string     `json:"file,omitempty"`
	SearchModel     string     `json:"search_model,omitempty"`
	MaxRerank       uint64     `json:"max_rerank,omitempty"`
	Temperature     float64    `json:"temperature,omitempty"`
	MaxTokens       uint64     `json:"max_tokens,omitempty"`
	Stop            []string   `json:"stop,omitempty"`
	NumCompletions  uint64     `json:"n,omitempty"`
}

type Answer struct {
	Answers           []string           `json:"answers"`
	Completion        string             `json:"completion,omitempty"`
	Model             string             `json:"model,omitempty"`
	Type              string             `json:"object,omitempty"`
	SearchModel       string             `json:"search_model,omitempty"`
	SelectedDocuments []SelectedDocument `json:"selected_documents,omitempty"`
}

type SelectedDocument struct {
	Document uint64 `json:"document"`
	Text     string `json:"text,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Answers generates an answer to a question given examples and
// context documents.
//
// Deprecated: the answers endpoint is deprecated, use Completion with
// an instruction prompt instead.
func (c *Client) Answers(ctx context.Context, req AnswerRequest) (*Answer, error) {
	if req.Model == "" {
		return nil, ErrBadParameter.With("missing model")
	}
	if req.Question == "" {
		return nil, ErrBadParameter.With("missing question")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Answer
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("answers")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
