/*
openai implements an API client for OpenAI
https://platform.openai.com/docs/api-reference

Configuration is resolved per client: any field not set through
options falls back to the process-wide default, read once from the
environment (OPENAI_API_KEY, OPENAI_ORGANIZATION_KEY, OPENAI_API_URL,
OPENAI_AZURE_DEPLOYMENT_ID, OPENAI_AZURE_API_VERSION). When a
deployment id is set, requests are routed to an Azure-style deployment
with an additional api-key header and api-version query parameter.
*/
package openai

import (
	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	config Config
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultName = "openai"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client
func New(opts ...Opt) (*Client, error) {
	var config Config
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return NewWithConfig(config)
}

// NewWithConfig creates a new client from a configuration. Empty
// fields are resolved against the process-wide defaults, which are
// never modified.
func NewWithConfig(config Config) (*Client, error) {
	resolved := config.WithDefaults(DefaultConfig())

	// Compose client options: endpoint, bearer token, then the
	// conditional organization and deployment headers
	opts := []client.ClientOpt{
		client.OptEndpoint(resolved.endpoint()),
		client.OptReqToken(client.Token{
			Scheme: client.Bearer,
			Value:  resolved.ApiKey,
		}),
	}
	if resolved.OrganizationKey != "" {
		opts = append(opts, client.OptHeader("OpenAI-Organization", resolved.OrganizationKey))
	}
	if resolved.AzureDeploymentId != "" && resolved.ApiKey != "" {
		opts = append(opts, client.OptHeader("api-key", resolved.ApiKey))
	}
	if resolved.AzureDeploymentId != "" && resolved.AzureApiVersion != "" {
		opts = append(opts, client.OptQueryParam("api-version", resolved.AzureApiVersion))
	}
	opts = append(opts, resolved.HttpOptions...)

	// Create client
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{c, config}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the name of the client
func (*Client) Name() string {
	return defaultName
}

// With returns a new client with the given options applied over this
// client's configuration, shadowing it for the lifetime of the new
// client. Neither this client nor the process-wide defaults are
// modified.
func (c *Client) With(opts ...Opt) (*Client, error) {
	config := c.config
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return NewWithConfig(config)
}
