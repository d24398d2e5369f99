package openai

import (
	"context"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FileMeta struct {
	Id        string `json:"id"`
	Type      string `json:"object,omitempty"`
	Bytes     uint64 `json:"bytes,omitempty"`
	CreatedAt uint64 `json:"created_at,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	Status    string `json:"status,omitempty"`
}

// fileContent captures a raw file download, which is not JSON
type fileContent struct {
	data []byte
}

var _ client.Unmarshaler = (*fileContent)(nil)

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// ListFiles returns all files uploaded to the organization
func (c *Client) ListFiles(ctx context.Context) ([]FileMeta, error) {
	// Return the response
	var response struct {
		Data []FileMeta `json:"data"`
	}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("files")); err != nil {
		return nil, err
	}

	// Return success
	return response.Data, nil
}

// UploadFile uploads a file from the given path for the given
// purpose. A missing file is returned as an error before any network
// call is made.
func (c *Client) UploadFile(ctx context.Context, path, purpose string) (*FileMeta, error) {
	if path == "" {
		return nil, ErrBadParameter.With("missing path")
	}
	if purpose == "" {
		return nil, ErrBadParameter.With("missing purpose")
	}

	// Request
	payload, err := client.NewMultipartRequest(struct {
		File    client.File `json:"file"`
		Purpose string      `json:"purpose"`
	}{
		File:    client.File{Path: path},
		Purpose: purpose,
	})
	if err != nil {
		return nil, err
	}

	// Response
	var response FileMeta
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("files")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// GetFile returns the metadata for one file
func (c *Client) GetFile(ctx context.Context, file string) (*FileMeta, error) {
	if file == "" {
		return nil, ErrBadParameter.With("missing file")
	}

	// Return the response
	var response FileMeta
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("files", file)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// GetFileContent returns the content of one file verbatim
func (c *Client) GetFileContent(ctx context.Context, file string) ([]byte, error) {
	if file == "" {
		return nil, ErrBadParameter.With("missing file")
	}

	// The content is not JSON, so accept any response mimetype
	payload := client.NewRequestEx(http.MethodGet, client.ContentTypeAny)

	// Return the response
	var response fileContent
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("files", file, "content")); err != nil {
		return nil, err
	}

	// Return success
	return response.data, nil
}

// DeleteFile deletes one file
func (c *Client) DeleteFile(ctx context.Context, file string) error {
	if file == "" {
		return ErrBadParameter.With("missing file")
	}
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("files", file)); err != nil {
		return err
	}

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (f *fileContent) Unmarshal(mimetype string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.data = data
	return nil
}
