package main

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListFilesCmd struct{}

type UploadFileCmd struct {
	Path    string `arg:"" type:"existingfile" help:"Path to the file"`
	Purpose string `name:"purpose" default:"fine-tune" help:"Purpose of the file"`
}

type DeleteFileCmd struct {
	File string `arg:"" help:"File id"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListFilesCmd) Run(globals *Globals) error {
	files, err := globals.client.ListFiles(globals.ctx)
	if err != nil {
		return err
	}
	return write(files)
}

func (cmd *UploadFileCmd) Run(globals *Globals) error {
	meta, err := globals.client.UploadFile(globals.ctx, cmd.Path, cmd.Purpose)
	if err != nil {
		return err
	}
	return write(meta)
}

func (cmd *DeleteFileCmd) Run(globals *Globals) error {
	return globals.client.DeleteFile(globals.ctx, cmd.File)
}
