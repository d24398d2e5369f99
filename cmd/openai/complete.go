package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CompleteCmd struct {
	Model       string   `name:"model" default:"gpt-3.5-turbo-instruct" help:"Model name"`
	MaxTokens   uint64   `name:"max-tokens" help:"Maximum number of tokens to generate"`
	Temperature float64  `name:"temperature" help:"Sampling temperature"`
	Prompt      []string `arg:"" help:"Prompt"`
}

type ChatCmd struct {
	Model       string   `name:"model" default:"gpt-4o-mini" help:"Model name"`
	System      string   `name:"system" help:"System prompt"`
	Temperature float64  `name:"temperature" help:"Sampling temperature"`
	Prompt      []string `arg:"" help:"Prompt"`
}

type EmbedCmd struct {
	Model string   `name:"model" default:"text-embedding-3-small" help:"Model name"`
	Input []string `arg:"" help:"Input text"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CompleteCmd) Run(globals *Globals) error {
	completion, err := globals.client.Completion(globals.ctx, openai.CompletionRequest{
		Model:       cmd.Model,
		Prompt:      strings.Join(cmd.Prompt, " "),
		MaxTokens:   cmd.MaxTokens,
		Temperature: cmd.Temperature,
	})
	if err != nil {
		return err
	}
	for _, choice := range completion.Choices {
		fmt.Fprintln(os.Stdout, choice.Text)
	}
	return nil
}

func (cmd *ChatCmd) Run(globals *Globals) error {
	messages := []openai.ChatMessage{}
	if cmd.System != "" {
		messages = append(messages, openai.ChatMessage{Role: "system", Content: cmd.System})
	}
	messages = append(messages, openai.ChatMessage{Role: "user", Content: strings.Join(cmd.Prompt, " ")})

	completion, err := globals.client.ChatCompletion(globals.ctx, openai.ChatRequest{
		Model:       cmd.Model,
		Messages:    messages,
		Temperature: cmd.Temperature,
	})
	if err != nil {
		return err
	}
	for _, choice := range completion.Choices {
		fmt.Fprintln(os.Stdout, choice.Message.Content)
	}
	return nil
}

func (cmd *EmbedCmd) Run(globals *Globals) error {
	embeddings, err := globals.client.GenerateEmbedding(globals.ctx, cmd.Model, cmd.Input)
	if err != nil {
		return err
	}
	return write(embeddings.Data)
}
