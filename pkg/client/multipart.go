package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// File is a form-data file part. If Body is nil the file is opened
// from Path at encoding time; the handle is closed before the encoder
// returns. The form filename is the base name of Path.
type File struct {
	Path string
	Body io.Reader
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMultipartRequest returns a POST payload with the given struct
// encoded as a multipart/form-data body. Fields of type File become
// file parts, any other non-zero field becomes a form field using its
// string form. Field names are taken from json tags. A missing file
// is returned as an error before any network activity takes place.
func NewMultipartRequest(payload any) (Payload, error) {
	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("multipart payload must be a struct, got %T", payload)
	}

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	if err := encodeFields(w, rv); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &request{
		buf:      buf,
		method:   http.MethodPost,
		accept:   ContentTypeJson,
		mimetype: w.FormDataContentType(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func encodeFields(w *multipart.Writer, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		// Field name and omitempty from the json tag
		name, omitempty := field.Name, false
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, part := range parts[1:] {
				if part == "omitempty" {
					omitempty = true
				}
			}
		}

		value := rv.Field(i)
		if omitempty && value.IsZero() {
			continue
		}

		// File parts
		if file, ok := value.Interface().(File); ok {
			if err := encodeFile(w, name, file); err != nil {
				return err
			}
			continue
		}

		// Scalar form fields
		if err := w.WriteField(name, fmt.Sprint(value.Interface())); err != nil {
			return err
		}
	}
	return nil
}

func encodeFile(w *multipart.Writer, name string, file File) error {
	body := file.Body
	if body == nil {
		fh, err := os.Open(file.Path)
		if err != nil {
			return err
		}
		defer fh.Close()
		body = fh
	}
	part, err := w.CreateFormFile(name, filepath.Base(file.Path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, body); err != nil {
		return err
	}
	return nil
}
