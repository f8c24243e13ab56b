// Package cli wires the cobra command tree for the molviz binary: global
// flag registration, configuration loading, logger and metrics
// initialization, and the subcommands that expose each builder.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolViz-Engine/internal/application/visualization"
	"github.com/turtacn/MolViz-Engine/internal/config"
	"github.com/turtacn/MolViz-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolViz-Engine/internal/infrastructure/monitoring/prometheus"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	Seed         int64
	NoJitter     bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Service      *visualization.Service
	OutputFormat string
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "molviz",
		Short: "MolViz-Engine CLI — SMILES and sequence geometry for molecule viewers",
		Long: "MolViz-Engine turns SMILES strings into 3-D atom/bond models and linear\n" +
			"DNA/RNA/protein sequences into helix and backbone geometry, emitting\n" +
			"renderer-agnostic JSON for downstream scene builders.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: env-only)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "json", "output format (json, text)")
	pf.Int64Var(&opts.Seed, "seed", 0, "jitter seed for reproducible molecule layouts (0 = time-based)")
	pf.BoolVar(&opts.NoJitter, "no-jitter", false, "disable carbon position jitter entirely")

	cmd.AddCommand(
		newMoleculeCmd(),
		newSequenceCmd(),
		newAnalyzeCmd(),
		newWeightCmd(),
	)

	return cmd
}

// persistentPreRun runs the initialization chain: config → logger → metrics
// → service, storing the result in the command context for subcommands.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	// Flags override file/env settings.
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Seed != 0 {
		cfg.Geometry.JitterSeed = opts.Seed
	}
	if opts.NoJitter {
		cfg.Geometry.JitterDisabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	metrics := prometheus.NewMetrics(prometheus.Config{
		Namespace:       cfg.Metrics.Namespace,
		EnableGoMetrics: cfg.Metrics.EnableGoMetrics,
	})

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Service:      visualization.NewService(cfg.Geometry, logger, metrics),
		OutputFormat: opts.OutputFormat,
	}

	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// GetCLIContext extracts the CLIContext stored by persistentPreRun.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok || ctx == nil {
		return nil, fmt.Errorf("CLI context not initialized")
	}
	return ctx, nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute builds the command tree and runs it, returning a process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
