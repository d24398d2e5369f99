/*
client implements a generic API client for JSON-based HTTP services,
handling request composition, body encoding, transport invocation and
response normalization. Endpoint packages supply a path and a payload
and receive a decoded response or an error value.
*/
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	// Packages
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*http.Client
	endpoint *url.URL
	token    Token
	headers  http.Header
	query    url.Values
	ua       string
	trace    io.Writer
	verbose  bool
	tracer   trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultTimeout   = 30 * time.Second
	defaultUserAgent = "go-openai (github.com/mutablelogic/go-openai)"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given options. An endpoint is required.
func New(opts ...ClientOpt) (*Client, error) {
	c := &Client{
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
		headers: http.Header{},
		query:   url.Values{},
		ua:      defaultUserAgent,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.endpoint == nil {
		return nil, fmt.Errorf("missing endpoint")
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do performs a request and decodes the response into out. A nil
// payload performs a GET. See DoWithContext.
func (c *Client) Do(in Payload, out any, opts ...RequestOpt) error {
	return c.DoWithContext(context.Background(), in, out, opts...)
}

// DoWithContext performs a request with the given context. The request
// URL, headers and query are composed from the client configuration
// and the request options. On a 2xx response the body is decoded into
// out, which may be nil to discard it, a struct for JSON responses, or
// an Unmarshaler for raw bodies. On a non-2xx response an
// *ErrorResponse is returned carrying the server's error payload.
// Transport errors are returned unmodified.
func (c *Client) DoWithContext(ctx context.Context, in Payload, out any, opts ...RequestOpt) error {
	o, err := applyRequestOpts(opts...)
	if err != nil {
		return err
	}

	// Compose method, URL and query
	method := http.MethodGet
	var body io.Reader
	var mimetype string
	if in != nil {
		method = in.Method()
		mimetype = in.Type()
		if mimetype != "" {
			body = in
		}
	}
	u := c.endpoint.JoinPath(o.path...)
	query := u.Query()
	mergeQuery(query, c.query)
	mergeQuery(query, o.query)
	u.RawQuery = query.Encode()

	// Compose the request
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	token := c.token
	if o.token.Scheme != "" {
		token = o.token
	}
	if token.Scheme != "" {
		req.Header.Set("Authorization", token.String())
	}
	if mimetype != "" {
		req.Header.Set("Content-Type", mimetype)
	}
	if in != nil {
		req.Header.Set("Accept", in.Accept())
	} else {
		req.Header.Set("Accept", ContentTypeJson)
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	// Perform the request
	return c.invoke(ctx, req, out, o.noTimeout)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) invoke(ctx context.Context, req *http.Request, out any, noTimeout bool) error {
	client := c.Client
	if noTimeout && client.Timeout != 0 {
		clone := *c.Client
		clone.Timeout = 0
		client = &clone
	}

	// Span per request
	var span trace.Span
	if c.tracer != nil {
		ctx, span = c.tracer.Start(ctx, "client.Do", trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
		))
		defer span.End()
		req = req.WithContext(ctx)
	}

	if c.trace != nil {
		if dump, err := httputil.DumpRequestOut(req, c.verbose); err == nil {
			c.trace.Write(append(dump, '\n'))
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		// Transport errors pass through unmodified
		return err
	}
	defer resp.Body.Close()

	if c.trace != nil {
		if dump, err := httputil.DumpResponse(resp, c.verbose); err == nil {
			c.trace.Write(append(dump, '\n'))
		}
	}
	if span != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			span.SetStatus(codes.Error, resp.Status)
		}
	}

	return decode(resp, out)
}

// decode normalizes the response into out
func decode(resp *http.Response, out any) error {
	mimetype, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		mimetype = resp.Header.Get("Content-Type")
	}

	// Remote errors carry the server's payload
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return NewErrorResponse(resp.StatusCode, data)
	}

	// Discard the body when no sink is given
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}

	// Sinks which decode the raw body themselves
	if u, ok := out.(Unmarshaler); ok {
		return u.Unmarshal(mimetype, resp.Body)
	}

	// JSON decode into the typed sink
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unexpected %q response: %w", mimetype, err)
	}
	return nil
}

func mergeQuery(dst, src url.Values) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
