package main

import (
	"encoding/json"
	"fmt"
	"os"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCmd struct{}

type GetModelCmd struct {
	Model string `arg:"" help:"Model name"`
}

type ListEnginesCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListModelsCmd) Run(globals *Globals) error {
	models, err := globals.client.ListModels(globals.ctx)
	if err != nil {
		return err
	}
	return write(models)
}

func (cmd *GetModelCmd) Run(globals *Globals) error {
	model, err := globals.client.GetModel(globals.ctx, cmd.Model)
	if err != nil {
		return err
	}
	return write(model)
}

func (cmd *ListEnginesCmd) Run(globals *Globals) error {
	engines, err := globals.client.ListEngines(globals.ctx)
	if err != nil {
		return err
	}
	return write(engines)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
