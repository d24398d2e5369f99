package openai

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CompletionRequest struct {
	Model            string         `json:"model,omitempty"`
	Prompt           string         `json:"prompt,omitempty"`
	Suffix           string         `json:"suffix,omitempty"`
	MaxTokens        uint64         `json:"max_tokens,omitempty"`
	Temperature      float64        `json:"temperature,omitempty"`
	TopP             float64        `json:"top_p,omitempty"`
	NumCompletions   uint64         `json:"n,omitempty"`
	LogProbs         uint64         `json:"logprobs,omitempty"`
	Echo             bool           `json:"echo,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	PresencePenalty  float64        `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64        `json:"frequency_penalty,omitempty"`
	BestOf           uint64         `json:"best_of,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

type Completion struct {
	Id      string   `json:"id"`
	Type    string   `json:"object,omitempty"`
	Created uint64   `json:"created,omitempty"`
	Model   string   `json:"model,omitempty"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage,omitempty"`
}

type Choice struct {
	Text         string `json:"text"`
	Index        uint64 `json:"index"`
	LogProbs     any    `json:"logprobs,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
}

type Usage struct {
	PromptTokens     uint64 `json:"prompt_tokens,omitempty"`
	CompletionTokens uint64 `json:"completion_tokens,omitempty"`
	TotalTokens      uint64 `json:"total_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Completion) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Completion generates a text completion for a model and prompt
func (c *Client) Completion(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if req.Model == "" {
		return nil, ErrBadParameter.With("missing model")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Completion
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// EngineCompletion generates a text completion routed by engine id.
//
// Deprecated: per-engine routing is deprecated, use Completion with a
// model instead.
func (c *Client) EngineCompletion(ctx context.Context, engine string, req CompletionRequest) (*Completion, error) {
	if engine == "" {
		return nil, ErrBadParameter.With("missing engine")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response Completion
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("engines", engine, "completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
