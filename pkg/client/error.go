package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ErrorResponse is returned when the server responds with a non-2xx
// status. When the body decodes as JSON the payload is preserved in
// Err for caller inspection, otherwise the raw body is carried in
// Reason.
type ErrorResponse struct {
	Code   int    `json:"code"`
	Err    any    `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Unmarshaler is implemented by response sinks which decode the raw
// response body themselves, bypassing JSON decoding.
type Unmarshaler interface {
	Unmarshal(mimetype string, r io.Reader) error
}

// Result is a generic response sink for endpoints without a known
// shape. A JSON object body is decoded into Fields with the top-level
// keys directly addressable; any other body is captured verbatim in
// Raw. Unmarshal never fails on an undecodable body.
type Result struct {
	Fields map[string]any
	Raw    []byte
	Type   string
}

var _ error = (*ErrorResponse)(nil)
var _ Unmarshaler = (*Result)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewErrorResponse decodes a non-2xx response body into an ErrorResponse
func NewErrorResponse(code int, data []byte) error {
	var payload any
	if err := json.Unmarshal(data, &payload); err == nil {
		return &ErrorResponse{Code: code, Err: payload}
	}
	return &ErrorResponse{Code: code, Reason: string(data)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *ErrorResponse) Error() string {
	// Prefer the server's error message when the payload has one
	if body, ok := e.Err.(map[string]any); ok {
		if detail, ok := body["error"].(map[string]any); ok {
			if message, ok := detail["message"].(string); ok && message != "" {
				return message
			}
		}
		if message, ok := body["error"].(string); ok && message != "" {
			return message
		}
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", http.StatusText(e.Code), e.Reason)
	}
	return http.StatusText(e.Code)
}

func (r *Result) Unmarshal(mimetype string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err == nil {
		r.Fields = fields
		return nil
	}
	r.Raw = data
	r.Type = mimetype
	return nil
}
