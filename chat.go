package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatRequest struct {
	Model            string         `json:"model"`
	Messages         []ChatMessage  `json:"messages"`
	Temperature      float64        `json:"temperature,omitempty"`
	TopP             float64        `json:"top_p,omitempty"`
	NumCompletions   uint64         `json:"n,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	MaxTokens        uint64         `json:"max_tokens,omitempty"`
	PresencePenalty  float64        `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64        `json:"frequency_penalty,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

type ChatCompletion struct {
	Id      string       `json:"id"`
	Type    string       `json:"object,omitempty"`
	Created uint64       `json:"created,omitempty"`
	Model   string       `json:"model,omitempty"`
	Choices []ChatChoice `json:"choices"`
	Usage   Usage        `json:"usage,omitempty"`
}

type ChatChoice struct {
	Index        uint64      `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// ChatCompletion generates a completion for a chat conversation
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatCompletion, error) {
	if req.Model == "" {
		return nil, ErrBadParameter.With("missing model")
	}
	if len(req.Messages) == 0 {
		return nil, ErrBadParameter.With("missing messages")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response ChatCompletion
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
