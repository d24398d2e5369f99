package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FineTuneRequest struct {
	TrainingFile                 string  `json:"training_file"`
	ValidationFile               string  `json:"validation_file,omitempty"`
	Model                        string  `json:"model,omitempty"`
	NumEpochs                    uint64  `json:"n_epochs,omitempty"`
	BatchSize                    uint64  `json:"batch_size,omitempty"`
	LearningRateMultiplier       float64 `json:"learning_rate_multiplier,omitempty"`
	PromptLossWeight             float64 `json:"prompt_loss_weight,omitempty"`
	ComputeClassificationMetrics bool    `json:"compute_classification_metrics,omitempty"`
	Suffix                       string  `json:"suffix,omitempty"`
}

type FineTune struct {
	Id              string          `json:"id"`
	Type            string          `json:"object,omitempty"`
	Model           string          `json:"model,omitempty"`
	CreatedAt       uint64          `json:"created_at,omitempty"`
	UpdatedAt       uint64          `json:"updated_at,omitempty"`
	FineTunedModel  string          `json:"fine_tuned_model,omitempty"`
	OrganizationId  string          `json:"organization_id,omitempty"`
	Status          string          `json:"status,omitempty"`
	Hyperparams     any             `json:"hyperparams,omitempty"`
	TrainingFiles   []FileMeta      `json:"training_files,omitempty"`
	ValidationFiles []FileMeta      `json:"validation_files,omitempty"`
	ResultFiles     []FileMeta      `json:"result_files,omitempty"`
	Events          []FineTuneEvent `json:"events,omitempty"`
}

type FineTuneEvent struct {
	Type      string `json:"object,omitempty"`
	CreatedAt uint64 `json:"created_at,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// ListFineTunes returns all fine-tuning jobs for the organization
func (c *Client) ListFineTunes(ctx context.Context) ([]FineTune, error) {
	// Return the response
	var response struct {
		Data []FineTune `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("fine-tunes")); err != nil {
		return nil, err
	}

	// Return success
	return response.Data, nil
}

// CreateFineTune creates a fine-tuning job from an uploaded training file
func (c *Client) CreateFineTune(ctx context.Context, req FineTuneRequest) (*FineTune, error) {
	if req.TrainingFile == "" {
		return nil, ErrBadParameter.With("missing training file")
	}

	// Request
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response FineTune
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("fine-tunes")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// GetFineTune returns one fine-tuning job
func (c *Client) GetFineTune(ctx context.Context, job string) (*FineTune, error) {
	if job == "" {
		return nil, ErrBadParameter.With("missing job")
	}

	// Return the response
	var response FineTune
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("fine-tunes", job)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// CancelFineTune cancels a fine-tuning job
func (c *Client) CancelFineTune(ctx context.Context, job string) (*FineTune, error) {
	if job == "" {
		return nil, ErrBadParameter.With("missing job")
	}

	// Response
	var response FineTune
	payload, err := client.NewJSONRequest(struct{}{})
	if err != nil {
		return nil, err
	}
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("fine-tunes", job, "cancel")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// ListFineTuneEvents returns the events for a fine-tuning job
func (c *Client) ListFineTuneEvents(ctx context.Context, job string) ([]FineTuneEvent, error) {
	if job == "" {
		return nil, ErrBadParameter.With("missing job")
	}

	// Return the response
	var response struct {
		Data []FineTuneEvent `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("fine-tunes", job, "events")); err != nil {
		return nil, err
	}

	// Return success
	return response.Data, nil
}
