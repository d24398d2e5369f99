package openai_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	client "github.com/mutablelogic/go-openai/pkg/client"
	assert "github.com/stretchr/testify/assert"
)

// capture records the request composition seen by the server
type capture struct {
	path   string
	header http.Header
	query  url.Values
}

func capturingServer(t *testing.T, captured *capture) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		captured.query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func Test_openai_001(t *testing.T) {
	assert := assert.New(t)
	var captured capture
	server := capturingServer(t, &captured)

	// Without a deployment id, paths are routed under /v1
	client, err := openai.New(
		openai.WithApiUrl(server.URL),
		openai.WithApiKey("secret"),
	)
	assert.NoError(err)

	_, err = client.ListModels(t.Context())
	assert.NoError(err)
	assert.Equal("/v1/models", captured.path)
	assert.Equal("Bearer secret", captured.header.Get("Authorization"))

	// No organization, deployment auth or api-version without configuration
	assert.Empty(captured.header.Get("OpenAI-Organization"))
	assert.Empty(captured.header.Get("api-key"))
	assert.Empty(captured.query.Get("api-version"))
}

func Test_openai_002(t *testing.T) {
	assert := assert.New(t)
	var captured capture
	server := capturingServer(t, &captured)

	// With a deployment id, paths are routed under /deployments/{id}
	client, err := openai.New(
		openai.WithApiUrl(server.URL),
		openai.WithApiKey("secret"),
		openai.WithAzureDeployment("mydeployment", "2023-05-15"),
	)
	assert.NoError(err)

	_, err = client.ListModels(t.Context())
	assert.NoError(err)
	assert.Equal("/deployments/mydeployment/models", captured.path)

	// The deployment auth header is additive to the bearer header
	assert.Equal("Bearer secret", captured.header.Get("Authorization"))
	assert.Equal("secret", captured.header.Get("api-key"))
	assert.Equal("2023-05-15", captured.query.Get("api-version"))
}

func Test_openai_003(t *testing.T) {
	assert := assert.New(t)
	var captured capture
	server := capturingServer(t, &captured)

	// The organization header appears iff the organization key is set
	client, err := openai.New(
		openai.WithApiUrl(server.URL),
		openai.WithApiKey("secret"),
		openai.WithOrganization("org-123"),
	)
	assert.NoError(err)

	_, err = client.ListModels(t.Context())
	assert.NoError(err)
	assert.Equal("org-123", captured.header.Get("OpenAI-Organization"))
}

func Test_openai_004(t *testing.T) {
	assert := assert.New(t)
	var captured capture
	server := capturingServer(t, &captured)

	// A deployment id without a version routes to the deployment but
	// emits no api-version parameter
	client, err := openai.New(
		openai.WithApiUrl(server.URL),
		openai.WithApiKey("secret"),
		openai.WithAzureDeployment("mydeployment", ""),
	)
	assert.NoError(err)

	_, err = client.ListModels(t.Context())
	assert.NoError(err)
	assert.Equal("/deployments/mydeployment/models", captured.path)
	assert.Empty(captured.query.Get("api-version"))
	assert.Equal("secret", captured.header.Get("api-key"))
}

func Test_openai_005(t *testing.T) {
	assert := assert.New(t)
	var captured capture
	server := capturingServer(t, &captured)

	client, err := openai.New(
		openai.WithApiUrl(server.URL),
		openai.WithApiKey("secret"),
	)
	assert.NoError(err)
	assert.Equal("openai", client.Name())

	// With derives a shadowed client without modifying the original
	derived, err := client.With(openai.WithOrganization("org-456"))
	assert.NoError(err)

	_, err = derived.ListModels(t.Context())
	assert.NoError(err)
	assert.Equal("org-456", captured.header.Get("OpenAI-Organization"))
	assert.Equal("Bearer secret", captured.header.Get("Authorization"))

	_, err = client.ListModels(t.Context())
	assert.NoError(err)
	assert.Empty(captured.header.Get("OpenAI-Organization"))
}

func Test_openai_006(t *testing.T) {
	assert := assert.New(t)
	var captured capture
	server := capturingServer(t, &captured)

	// A parent whose options slice has spare capacity
	httpopts := make([]client.ClientOpt, 0, 4)
	httpopts = append(httpopts, client.OptUserAgent("parent"))
	parent, err := openai.NewWithConfig(openai.Config{
		ApiKey:      "secret",
		ApiUrl:      server.URL,
		HttpOptions: httpopts,
	})
	assert.NoError(err)

	// Two siblings derived from the same parent keep their own options
	first, err := parent.With(openai.WithHttpOptions(client.OptQueryParam("tag", "first")))
	assert.NoError(err)
	_, err = parent.With(openai.WithHttpOptions(client.OptQueryParam("tag", "second")))
	assert.NoError(err)

	// Rebuilding the first sibling still carries its own option
	rebuilt, err := first.With()
	assert.NoError(err)
	_, err = rebuilt.ListModels(t.Context())
	assert.NoError(err)
	assert.Equal("first", captured.query.Get("tag"))
}
