package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/app"
	"github.com/thenoetrevino/todoey/internal/config"
	"github.com/thenoetrevino/todoey/internal/datastore"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container
	owned bool     // App was opened by this CLI and is closed with it
}

type (
	appKey    struct{}
	configKey struct{}
)

// WithApp attaches an existing application to ctx. Commands run under the
// returned context use it instead of opening storage themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// WithConfig attaches the loaded configuration to ctx
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// NewCLI opens the application described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns the CLI for a command. An application attached
// with WithApp wins; otherwise storage is opened from the attached config,
// or from the user's config file when none is attached.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok || cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return NewCLI(ctx, cfg)
}

// RunWithCLI opens the CLI for cmd, runs fn and closes the CLI again
func RunWithCLI(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	formatter := NewFormatter(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith(ExitGeneral, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(ctx, cliInstance, formatter)
}

// Store returns the data store
func (c *CLI) Store() datastore.DataStore {
	return c.App.Store
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Error("failed to close application", "error", err)
		return err
	}
	return nil
}
