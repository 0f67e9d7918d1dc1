package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoey/internal/cli"
	"github.com/thenoetrevino/todoey/internal/cli/category"
	"github.com/thenoetrevino/todoey/internal/cli/item"
	"github.com/thenoetrevino/todoey/internal/cli/styles"
	"github.com/thenoetrevino/todoey/internal/config"
	"github.com/thenoetrevino/todoey/internal/logging"
)

// NewRootCmd builds the todoey command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todoey",
		Short: "Todoey - categories of to-do items from the terminal",
		Long: `Todoey keeps to-do items grouped into colored categories.
Data lives in a local SQLite database by default; see "todoey config init".`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/todoey/config.yaml)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fail(cmd, cli.ExitUsage, err)
	})

	rootCmd.AddCommand(category.CategoryCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads config, starts logging and attaches the config to the command context
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fail(cmd, cli.ExitDataErr, err)
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fail(cmd, cli.ExitDataErr, err)
	}
	if strings.EqualFold(cfg.Storage.Backend, config.BackendMemory) {
		logging.Discard()
	} else {
		dir, err := cfg.DataDir()
		if err != nil {
			return err
		}
		if err := logging.Init(dir, level); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	styles.Init(cfg.Theme)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// fail prints err and returns it with an exit code attached
func fail(cmd *cobra.Command, code int, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return &cli.ExitError{Code: code, Err: err}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
