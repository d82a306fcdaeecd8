// Package runtime provides a context type that holds the issue client,
// configuration and logger for use throughout the application. This
// avoids passing multiple parameters.
package runtime

import (
	"context"
	"os"

	"scopesync.dev/scopesync/internal/config"
	"scopesync.dev/scopesync/internal/github"
	"scopesync.dev/scopesync/internal/output"
)

// Context provides access to the issue client and output for commands
type Context struct {
	Context context.Context
	Splog   *output.Splog
	Client  github.IssueClient
	Config  config.SyncConfig
}

// NewContext creates a new context with the given client and config
func NewContext(ctx context.Context, client github.IssueClient, cfg config.SyncConfig) *Context {
	return &Context{
		Context: ctx,
		Splog:   output.NewSplog(),
		Client:  client,
		Config:  cfg,
	}
}

// GetContext builds the runtime context for a real run: configuration
// resolved from the working directory and a GitHub-backed issue client.
func GetContext(ctx context.Context) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return nil, err
	}

	client, err := github.NewRealIssueClient(ctx)
	if err != nil {
		return nil, err
	}

	return NewContext(ctx, client, cfg), nil
}
