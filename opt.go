package openai

import (
	"slices"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a function which modifies the client configuration
type Opt func(*Config) error

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithApiKey sets the API key
func WithApiKey(v string) Opt {
	return func(c *Config) error {
		c.ApiKey = v
		return nil
	}
}

// WithOrganization sets the organization key, emitted as the
// OpenAI-Organization header
func WithOrganization(v string) Opt {
	return func(c *Config) error {
		c.OrganizationKey = v
		return nil
	}
}

// WithApiUrl sets the base API URL
func WithApiUrl(v string) Opt {
	return func(c *Config) error {
		c.ApiUrl = v
		return nil
	}
}

// WithAzureDeployment routes requests to a named Azure deployment.
// The version may be empty, in which case no api-version query
// parameter is emitted.
func WithAzureDeployment(id, version string) Opt {
	return func(c *Config) error {
		c.AzureDeploymentId = id
		c.AzureApiVersion = version
		return nil
	}
}

// WithHttpOptions appends transport options (timeout, proxy, trace,
// extra headers) passed through to the underlying client. The existing
// options are cloned so that clients derived from the same parent do
// not share a backing array.
func WithHttpOptions(opts ...client.ClientOpt) Opt {
	return func(c *Config) error {
		c.HttpOptions = append(slices.Clone(c.HttpOptions), opts...)
		return nil
	}
}

// WithConfig applies a configuration wholesale; empty fields still
// fall back to the process-wide defaults
func WithConfig(config Config) Opt {
	return func(c *Config) error {
		*c = config
		return nil
	}
}
