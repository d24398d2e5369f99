package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	openai "github.com/mutablelogic/go-openai"
	client "github.com/mutablelogic/go-openai/pkg/client"
	otel "go.opentelemetry.io/otel"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	OpenAIKey         string `env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OrganizationKey   string `env:"OPENAI_ORGANIZATION_KEY" help:"OpenAI organization key"`
	ApiUrl            string `env:"OPENAI_API_URL" help:"Base API URL"`
	AzureDeploymentId string `env:"OPENAI_AZURE_DEPLOYMENT_ID" help:"Azure deployment id"`
	AzureApiVersion   string `env:"OPENAI_AZURE_API_VERSION" help:"Azure API version"`

	// Context
	ctx    context.Context
	client *openai.Client
}

type CLI struct {
	Globals

	// Models and engines
	Models  ListModelsCmd  `cmd:"" help:"Return a list of models"`
	Model   GetModelCmd    `cmd:"" help:"Return one model"`
	Engines ListEnginesCmd `cmd:"" help:"Return a list of engines"`

	// Completions
	Complete CompleteCmd `cmd:"" help:"Generate a text completion"`
	Chat     ChatCmd     `cmd:"" help:"Generate a chat completion"`
	Embed    EmbedCmd    `cmd:"" help:"Generate an embedding vector"`

	// Moderations
	Moderate ModerateCmd `cmd:"" help:"Classify input against the content policy"`

	// Files
	Files      ListFilesCmd  `cmd:"" help:"Return a list of uploaded files"`
	Upload     UploadFileCmd `cmd:"" help:"Upload a file"`
	DeleteFile DeleteFileCmd `cmd:"" help:"Delete an uploaded file"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}
	if cli.Debug {
		clientopts = append(clientopts, client.OptTracer(otel.Tracer(execName())))
	}

	// Create the client
	opts := []openai.Opt{
		openai.WithApiKey(cli.OpenAIKey),
		openai.WithHttpOptions(clientopts...),
	}
	if cli.OrganizationKey != "" {
		opts = append(opts, openai.WithOrganization(cli.OrganizationKey))
	}
	if cli.ApiUrl != "" {
		opts = append(opts, openai.WithApiUrl(cli.ApiUrl))
	}
	if cli.AzureDeploymentId != "" {
		opts = append(opts, openai.WithAzureDeployment(cli.AzureDeploymentId, cli.AzureApiVersion))
	}
	client, err := openai.New(opts...)
	cmd.FatalIfErrorf(err)
	cli.Globals.client = client

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
