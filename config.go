package openai

import (
	"cmp"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	// Packages
	client "github.com/mutablelogic/go-openai/pkg/client"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds client configuration. Any empty field falls back to
// the process-wide default for that field when the client is created.
type Config struct {
	ApiKey            string `yaml:"api_key" json:"api_key,omitempty"`
	OrganizationKey   string `yaml:"organization_key" json:"organization_key,omitempty"`
	ApiUrl            string `yaml:"api_url" json:"api_url,omitempty"`
	AzureDeploymentId string `yaml:"azure_deployment_id" json:"azure_deployment_id,omitempty"`
	AzureApiVersion   string `yaml:"azure_api_version" json:"azure_api_version,omitempty"`

	// Transport options, passed through to the underlying client
	HttpOptions []client.ClientOpt `yaml:"-" json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultApiUrl = "https://api.openai.com"
)

// Process-wide defaults, read from the environment once and never
// mutated afterwards
var defaultConfig = sync.OnceValue(func() Config {
	return Config{
		ApiKey:            os.Getenv("OPENAI_API_KEY"),
		OrganizationKey:   os.Getenv("OPENAI_ORGANIZATION_KEY"),
		ApiUrl:            cmp.Or(os.Getenv("OPENAI_API_URL"), defaultApiUrl),
		AzureDeploymentId: os.Getenv("OPENAI_AZURE_DEPLOYMENT_ID"),
		AzureApiVersion:   os.Getenv("OPENAI_AZURE_API_VERSION"),
	}
})

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultConfig returns the process-wide default configuration
func DefaultConfig() Config {
	return defaultConfig()
}

// ReadConfig reads a configuration in YAML format
func ReadConfig(r io.Reader) (Config, error) {
	var config Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return config, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithDefaults returns the configuration with any empty field
// resolved against the given defaults. The receiver and the defaults
// are not modified.
func (c Config) WithDefaults(def Config) Config {
	c.ApiKey = cmp.Or(c.ApiKey, def.ApiKey)
	c.OrganizationKey = cmp.Or(c.OrganizationKey, def.OrganizationKey)
	c.ApiUrl = cmp.Or(c.ApiUrl, def.ApiUrl)
	c.AzureDeploymentId = cmp.Or(c.AzureDeploymentId, def.AzureDeploymentId)
	c.AzureApiVersion = cmp.Or(c.AzureApiVersion, def.AzureApiVersion)
	if len(c.HttpOptions) == 0 {
		c.HttpOptions = def.HttpOptions
	}
	return c
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// endpoint returns the URL all request paths are resolved against:
// deployment routing when a deployment id is set, otherwise the
// versioned public API
func (c Config) endpoint() string {
	base := strings.TrimRight(c.ApiUrl, "/")
	if c.AzureDeploymentId != "" {
		return base + "/deployments/" + c.AzureDeploymentId
	}
	return base + "/v1"
}
