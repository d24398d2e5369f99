package client

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	// Packages
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ClientOpt is a function which modifies client configuration on creation
type ClientOpt func(*Client) error

// Token is an authorization token emitted on every request
type Token struct {
	Scheme string
	Value  string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Bearer = "Bearer"
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Token) String() string {
	return t.Scheme + " " + t.Value
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OptEndpoint sets the endpoint all request paths are resolved against
func OptEndpoint(v string) ClientOpt {
	return func(c *Client) error {
		u, err := url.Parse(v)
		if err != nil {
			return err
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid endpoint %q", v)
		}
		c.endpoint = u
		return nil
	}
}

// OptReqToken sets the authorization token for all requests. The
// header is emitted whenever a scheme is set, even with an empty value.
func OptReqToken(v Token) ClientOpt {
	return func(c *Client) error {
		c.token = v
		return nil
	}
}

// OptHeader appends a header to all requests
func OptHeader(key, value string) ClientOpt {
	return func(c *Client) error {
		c.headers.Add(key, value)
		return nil
	}
}

// OptQueryParam appends a query parameter to all requests, merged
// with any request-scoped parameters
func OptQueryParam(key, value string) ClientOpt {
	return func(c *Client) error {
		c.query.Add(key, value)
		return nil
	}
}

// OptTimeout sets the timeout on any request, which defaults to 30 seconds
func OptTimeout(v time.Duration) ClientOpt {
	return func(c *Client) error {
		c.Client.Timeout = v
		return nil
	}
}

// OptUserAgent sets the user agent string on each request
func OptUserAgent(v string) ClientOpt {
	return func(c *Client) error {
		c.ua = v
		return nil
	}
}

// OptProxy sets the proxy URL for the transport
func OptProxy(v *url.URL) ClientOpt {
	return func(c *Client) error {
		transport := c.transport()
		transport.Proxy = http.ProxyURL(v)
		c.Client.Transport = transport
		return nil
	}
}

// OptSkipVerify skips TLS certificate verification
func OptSkipVerify() ClientOpt {
	return func(c *Client) error {
		transport := c.transport()
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = new(tls.Config)
		}
		transport.TLSClientConfig.InsecureSkipVerify = true
		c.Client.Transport = transport
		return nil
	}
}

// OptTrace dumps requests and responses to the writer. When verbose is
// set the bodies are included.
func OptTrace(w io.Writer, verbose bool) ClientOpt {
	return func(c *Client) error {
		c.trace = w
		c.verbose = verbose
		return nil
	}
}

// OptTracer emits an OpenTelemetry span for each request
func OptTracer(t trace.Tracer) ClientOpt {
	return func(c *Client) error {
		c.tracer = t
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// transport returns the http transport for modification, cloning the
// default transport on first use
func (c *Client) transport() *http.Transport {
	if transport, ok := c.Client.Transport.(*http.Transport); ok && transport != http.DefaultTransport {
		return transport
	}
	return http.DefaultTransport.(*http.Transport).Clone()
}
