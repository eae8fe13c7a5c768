// Package main provides the advkit CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/advkit"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// cli holds the state shared by all commands of one invocation.
type cli struct {
	configPath string
	storePath  string
	verbose    bool
	human      bool

	cfg    *Config
	logger *advkit.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	code := exitCode(err)
	if err != nil {
		switch {
		case c.human:
			fmt.Fprintf(stderr, "error: %v\n", err)
		case !isReported(err):
			_ = outputJSON(stdout, ErrorResponse{Error: err.Error(), Code: code})
		}
	}
	return code
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "advkit",
		Short: "Pair sampling and label utilities for metric learning",
		Long: `advkit generates reproducible positive/negative pair sets for
similarity learning, stores them as compressed manifests, and draws random
wrong-class targets for adversarial experiments.

All commands output JSON by default. Use --human for human-readable output.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/advkit/config.yml)")
	root.PersistentFlags().StringVar(&c.storePath, "store-path", "", "Local manifest directory (overrides config)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().BoolVar(&c.human, "human", false, "Use human-readable output instead of JSON")
	root.Version = Version

	root.AddCommand(
		c.pairsCmd(),
		c.inspectCmd(),
		c.listCmd(),
		c.targetsCmd(),
		c.permsCmd(),
	)
	return root
}

// setup loads .env, the config file and the logger before any command runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	// Load .env file if present (store credentials)
	_ = godotenv.Load()

	path := c.configPath
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return configError(err)
	}
	if c.storePath != "" {
		cfg.Store.Kind = "local"
		cfg.Store.Path = c.storePath
	}
	c.cfg = cfg

	if c.verbose {
		c.logger = advkit.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		c.logger = advkit.NoopLogger()
	}
	return nil
}

// newKit builds a Kit from the --seed flag or the configured seed.
func (c *cli) newKit(cmd *cobra.Command, seed int64, opts ...advkit.Option) *advkit.Kit {
	opts = append(opts, advkit.WithLogger(c.logger))
	switch {
	case cmd.Flags().Changed("seed"):
		opts = append(opts, advkit.WithSeed(seed))
	case c.cfg.Pairs.Seed != nil:
		opts = append(opts, advkit.WithSeed(*c.cfg.Pairs.Seed))
	}
	return advkit.New(opts...)
}
