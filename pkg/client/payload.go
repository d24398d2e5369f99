package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Payload is the request body passed to Do and DoWithContext. A nil
// payload performs a GET with no body.
type Payload interface {
	io.Reader

	// Return the HTTP method for the request
	Method() string

	// Return the accepted response mimetype
	Accept() string

	// Return the mimetype of the request body, or empty when there is no body
	Type() string
}

type request struct {
	buf      *bytes.Buffer
	method   string
	accept   string
	mimetype string
}

var _ Payload = (*request)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeJson      = "application/json"
	ContentTypeTextPlain = "text/plain"
	ContentTypeAny       = "*/*"
)

// MethodDelete is a payload which performs a DELETE with no body
var MethodDelete Payload = &request{method: http.MethodDelete, accept: ContentTypeJson}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRequest returns a payload which performs a GET with no body
func NewRequest() Payload {
	return &request{method: http.MethodGet, accept: ContentTypeJson}
}

// NewRequestEx returns a payload with no body, for the given method
// and accepted response mimetype
func NewRequestEx(method, accept string) Payload {
	return &request{method: method, accept: accept}
}

// NewJSONRequest returns a POST payload with the given value encoded
// as a JSON body. An encoding failure is returned to the caller before
// any network activity takes place.
func NewJSONRequest(payload any) (Payload, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, err
	}
	return &request{
		buf:      buf,
		method:   http.MethodPost,
		accept:   ContentTypeJson,
		mimetype: ContentTypeJson,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (r *request) Read(p []byte) (int, error) {
	if r.buf == nil {
		return 0, io.EOF
	}
	return r.buf.Read(p)
}

func (r *request) Method() string {
	return r.method
}

func (r *request) Accept() string {
	if r.accept == "" {
		return ContentTypeAny
	}
	return r.accept
}

func (r *request) Type() string {
	return r.mimetype
}
