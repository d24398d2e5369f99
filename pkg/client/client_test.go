package client_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
	assert "github.com/stretchr/testify/assert"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracetest "go.opentelemetry.io/otel/sdk/trace/tracetest"
	trace "go.opentelemetry.io/otel/trace"
)

func Test_client_001(t *testing.T) {
	assert := assert.New(t)

	// An endpoint is required
	_, err := client.New()
	assert.Error(err)

	c, err := client.New(client.OptEndpoint("http://localhost/api"))
	assert.NoError(err)
	assert.NotNil(c)

	// Relative endpoints are rejected
	_, err = client.New(client.OptEndpoint("localhost/api"))
	assert.Error(err)
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"a": 1}`))
	}))
	defer server.Close()

	c, err := client.New(client.OptEndpoint(server.URL))
	assert.NoError(err)

	// Decode into a typed sink
	var typed struct {
		A int `json:"a"`
	}
	assert.NoError(c.Do(nil, &typed))
	assert.Equal(1, typed.A)

	// Decode into the generic sink, top-level key addressable
	var result client.Result
	assert.NoError(c.Do(nil, &result))
	assert.Equal(float64(1), result.Fields["a"])
	assert.Nil(result.Raw)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c, err := client.New(client.OptEndpoint(server.URL))
	assert.NoError(err)

	// A 200 response which is not JSON is passed through unchanged
	var result client.Result
	assert.NoError(c.Do(nil, &result))
	assert.Nil(result.Fields)
	assert.Equal([]byte("not json"), result.Raw)
	assert.Equal("text/plain", result.Type)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "bad"}`))
	}))
	defer server.Close()

	c, err := client.New(client.OptEndpoint(server.URL))
	assert.NoError(err)

	// The server's error payload is preserved
	err = c.Do(nil, nil)
	assert.Error(err)
	response, ok := err.(*client.ErrorResponse)
	if assert.True(ok) {
		assert.Equal(http.StatusNotFound, response.Code)
		assert.Equal(map[string]any{"error": "bad"}, response.Err)
		assert.Equal("bad", response.Error())
	}
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream gone"))
	}))
	defer server.Close()

	c, err := client.New(client.OptEndpoint(server.URL))
	assert.NoError(err)

	// A non-JSON error body is carried as the reason
	err = c.Do(nil, nil)
	assert.Error(err)
	response, ok := err.(*client.ErrorResponse)
	if assert.True(ok) {
		assert.Equal(http.StatusBadGateway, response.Code)
		assert.Equal("upstream gone", response.Reason)
	}
}

func Test_client_006(t *testing.T) {
	assert := assert.New(t)

	// Close the server so the connection is refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	c, err := client.New(client.OptEndpoint(endpoint))
	assert.NoError(err)

	// Transport errors pass through unmodified
	err = c.Do(nil, nil)
	assert.Error(err)
	_, ok := err.(*client.ErrorResponse)
	assert.False(ok)
}

func Test_client_007(t *testing.T) {
	assert := assert.New(t)
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := client.New(client.OptEndpoint(server.URL))
	assert.NoError(err)

	// A nil payload performs a GET
	assert.NoError(c.Do(nil, nil, client.OptPath("models", "gpt-4")))
	assert.Equal(http.MethodGet, method)
	assert.Equal("/models/gpt-4", path)

	// MethodDelete performs a DELETE with no body
	assert.NoError(c.Do(client.MethodDelete, nil, client.OptPath("models", "gpt-4")))
	assert.Equal(http.MethodDelete, method)

	// A JSON payload performs a POST
	payload, err := client.NewJSONRequest(map[string]string{"model": "gpt-4"})
	assert.NoError(err)
	assert.NoError(c.Do(payload, nil, client.OptPath("completions")))
	assert.Equal(http.MethodPost, method)
}

func Test_client_008(t *testing.T) {
	assert := assert.New(t)
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := client.New(client.OptEndpoint(server.URL), client.OptQueryParam("api-version", "2023-05-15"))
	assert.NoError(err)

	// Client and request query parameters are merged, not replaced
	assert.NoError(c.Do(nil, nil, client.OptQuery(url.Values{"limit": []string{"10"}})))
	assert.Equal("2023-05-15", query.Get("api-version"))
	assert.Equal("10", query.Get("limit"))

	// Without request parameters the client parameters are unchanged
	assert.NoError(c.Do(nil, nil))
	assert.Equal("2023-05-15", query.Get("api-version"))
	assert.Empty(query.Get("limit"))
}

func Test_client_009(t *testing.T) {
	assert := assert.New(t)
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := client.New(
		client.OptEndpoint(server.URL),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: ""}),
	)
	assert.NoError(err)

	// An empty token still produces the bearer header. The trailing
	// space is trimmed by the server's header parsing.
	assert.NoError(c.Do(nil, nil))
	assert.Equal("Bearer", strings.TrimSpace(auth))

	// The token can be overridden per request
	assert.NoError(c.Do(nil, nil, client.OptToken(client.Token{Scheme: client.Bearer, Value: "other"})))
	assert.Equal("Bearer other", auth)
}

func Test_client_010(t *testing.T) {
	assert := assert.New(t)

	// An unencodable payload is a local error
	_, err := client.NewJSONRequest(make(chan int))
	assert.Error(err)
}

func Test_client_011(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer provider.Shutdown(t.Context())

	c, err := client.New(
		client.OptEndpoint(server.URL),
		client.OptTracer(provider.Tracer(t.Name())),
	)
	assert.NoError(err)

	// Each request emits one client span with method, URL and status
	assert.NoError(c.Do(nil, nil, client.OptPath("models")))
	spans := recorder.Ended()
	if assert.Len(spans, 1) {
		span := spans[0]
		assert.Equal("client.Do", span.Name())
		assert.Equal(trace.SpanKindClient, span.SpanKind())
		assert.Contains(span.Attributes(), attribute.String("http.request.method", http.MethodGet))
		assert.Contains(span.Attributes(), attribute.String("url.full", server.URL+"/models"))
		assert.Contains(span.Attributes(), attribute.Int("http.response.status_code", http.StatusOK))
		assert.Equal(codes.Unset, span.Status().Code)
	}
}

func Test_client_012(t *testing.T) {
	assert := assert.New(t)

	// Close the server so the connection is refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer provider.Shutdown(t.Context())

	c, err := client.New(
		client.OptEndpoint(endpoint),
		client.OptTracer(provider.Tracer(t.Name())),
	)
	assert.NoError(err)

	// A transport error is recorded on the span
	assert.Error(c.Do(nil, nil))
	spans := recorder.Ended()
	if assert.Len(spans, 1) {
		span := spans[0]
		assert.Equal(codes.Error, span.Status().Code)
		assert.NotEmpty(span.Events())
	}
}
