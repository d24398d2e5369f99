package main

import (
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModerateCmd struct {
	Model string   `name:"model" help:"Moderation model name"`
	Input []string `arg:"" help:"Input text"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModerateCmd) Run(globals *Globals) error {
	moderation, err := globals.client.Moderations(globals.ctx, openai.ModerationRequest{
		Input: strings.Join(cmd.Input, " "),
		Model: cmd.Model,
	})
	if err != nil {
		return err
	}
	return write(moderation.Results)
}
