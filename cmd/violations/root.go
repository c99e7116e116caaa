package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/violations/internal/config"
	"github.com/jonathan/violations/internal/logger"
	"github.com/jonathan/violations/internal/observability"
	"github.com/jonathan/violations/internal/report"
	"github.com/jonathan/violations/internal/violation"
)

// cli carries state shared by all subcommands of one invocation
type cli struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	logLevel   string
	logFormat  string

	cfg config.Config
	log *zap.SugaredLogger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut, log: zap.NewNop().Sugar()}

	rootCmd := &cobra.Command{
		Use:   "violations",
		Short: "Inspect, filter and merge violation reports",
		Long: `Reads violation report JSON documents, merges them in the order given, and prints or filters them by code.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) { _ = c.log.Sync() },
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Print a summary of loaded violations to stderr")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOGGING_LEVEL or warn)")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "Log format: console, json (defaults to LOGGING_FORMAT or console)")

	rootCmd.AddCommand(
		newShowCmd(c),
		newCountCmd(c),
		newFilterCmd(c),
		newMergeCmd(c),
	)
	return rootCmd
}

// setup resolves configuration with precedence flags > config file > environment > defaults.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if c.configPath != "" {
		loadedCfg, err := config.LoadConfig(c.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = *loadedCfg
	}

	var env config.Config
	env.LogLevel, env.LogFormat = logger.Env()
	cfg = cfg.MergeWithDefaults(env.MergeWithDefaults(config.Defaults()))

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = c.logFormat
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.verbose
	}

	c.cfg = cfg
	c.log = logger.New(cfg.LogLevel, logger.ParseFormat(cfg.LogFormat), c.errOut).Sugar()
	c.log.Debugw("Configuration resolved",
		"config", c.configPath,
		"level", cfg.LogLevel,
		"max_parallel", cfg.MaxParallel,
		"codes", cfg.Codes)
	return nil
}

// load reads and merges the input reports
func (c *cli) load(ctx context.Context, paths []string) (*violation.List, error) {
	list, err := report.LoadFiles(ctx, paths, &report.Options{
		SchemaPath:  c.cfg.SchemaPath,
		MaxParallel: c.cfg.MaxParallel,
		Logger:      c.log.Named("report"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}

	if c.cfg.Verbose {
		observability.NewPrinter(c.errOut).PrintViolations("LOADED VIOLATIONS", list)
	}
	return list, nil
}

// codes returns the flag codes, falling back to the configured defaults
func (c *cli) codes(cmd *cobra.Command, flagCodes []string) []string {
	if cmd.Flags().Changed("code") {
		return flagCodes
	}
	return c.cfg.Codes
}

func addInputFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringSliceVarP(target, "in", "i", nil, "Path to a violation report JSON file (repeatable, required)")
	if err := cmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
}
