package client_test

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
	assert "github.com/stretchr/testify/assert"
)

func Test_multipart_001(t *testing.T) {
	assert := assert.New(t)

	// Write a training file to disk
	path := filepath.Join(t.TempDir(), "training.jsonl")
	assert.NoError(os.WriteFile(path, []byte(`{"prompt": "a", "completion": "b"}`), 0644))

	payload, err := client.NewMultipartRequest(struct {
		File    client.File `json:"file"`
		Purpose string      `json:"purpose"`
	}{
		File:    client.File{Path: path},
		Purpose: "fine-tune",
	})
	assert.NoError(err)
	assert.Equal("POST", payload.Method())

	// Parse the body back
	mediatype, params, err := mime.ParseMediaType(payload.Type())
	assert.NoError(err)
	assert.Equal("multipart/form-data", mediatype)

	var files, fields int
	reader := multipart.NewReader(payload, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		assert.NoError(err)
		data, err := io.ReadAll(part)
		assert.NoError(err)
		if part.FileName() != "" {
			files++
			assert.Equal("file", part.FormName())
			assert.Equal("training.jsonl", part.FileName())
			assert.Equal(`{"prompt": "a", "completion": "b"}`, string(data))
		} else {
			fields++
			assert.Equal("purpose", part.FormName())
			assert.Equal("fine-tune", string(data))
		}
	}

	// Exactly one file part and one form field
	assert.Equal(1, files)
	assert.Equal(1, fields)
}

func Test_multipart_002(t *testing.T) {
	assert := assert.New(t)

	// A missing file is an error before any network activity
	_, err := client.NewMultipartRequest(struct {
		File    client.File `json:"file"`
		Purpose string      `json:"purpose"`
	}{
		File:    client.File{Path: filepath.Join(t.TempDir(), "missing.jsonl")},
		Purpose: "fine-tune",
	})
	assert.Error(err)
	assert.True(os.IsNotExist(err))
}

func Test_multipart_003(t *testing.T) {
	assert := assert.New(t)

	// A file part can be read from a reader, with the path used for naming
	payload, err := client.NewMultipartRequest(struct {
		Image client.File `json:"image"`
	}{
		Image: client.File{Path: "/images/source.png", Body: strings.NewReader("png-bytes")},
	})
	assert.NoError(err)

	_, params, err := mime.ParseMediaType(payload.Type())
	assert.NoError(err)
	reader := multipart.NewReader(payload, params["boundary"])
	part, err := reader.NextPart()
	assert.NoError(err)
	assert.Equal("image", part.FormName())
	assert.Equal("source.png", part.FileName())
	data, err := io.ReadAll(part)
	assert.NoError(err)
	assert.Equal("png-bytes", string(data))
}

func Test_multipart_004(t *testing.T) {
	assert := assert.New(t)

	// Zero fields tagged omitempty are skipped
	payload, err := client.NewMultipartRequest(struct {
		Image client.File `json:"image"`
		Mask  client.File `json:"mask,omitempty"`
		N     uint64      `json:"n,omitempty"`
		Size  string      `json:"size,omitempty"`
	}{
		Image: client.File{Path: "mask.png", Body: bytes.NewReader([]byte{0})},
		Size:  "512x512",
	})
	assert.NoError(err)

	_, params, err := mime.ParseMediaType(payload.Type())
	assert.NoError(err)
	names := []string{}
	reader := multipart.NewReader(payload, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		assert.NoError(err)
		names = append(names, part.FormName())
	}
	assert.Equal([]string{"image", "size"}, names)
}

func Test_multipart_005(t *testing.T) {
	assert := assert.New(t)

	// Only structs can be encoded
	_, err := client.NewMultipartRequest("not a struct")
	assert.Error(err)
}
