// Package cmd implements the mdfolio command line.
package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/ezerfernandes/mdfolio/internal/config"
	"github.com/ezerfernandes/mdfolio/internal/logging"
	"github.com/ezerfernandes/mdfolio/internal/logging/gologger"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

type statusFunc func(format string, args ...any)

type options struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
	quiet      bool
	lang       []string
	meta       map[string]string
	filter     filterFunc
	status     statusFunc
}

func (opts *options) createStatus(w io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...any) {}

		return
	}

	opts.status = func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}
}

// loadConfig reads the configuration file and applies the logging flags.
func (opts *options) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	var flags config.Config

	if cmd.Flags().Changed("log-level") {
		flags.Log.Level = opts.logLevel
	}

	if cmd.Flags().Changed("log-format") {
		flags.Log.Format = opts.logFormat
	}

	if err := cfg.Override(flags); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newLoggerProvider(cfg config.Log) (logging.Provider, error) {
	provider, err := gologger.NewProvider(gologger.Config{Level: cfg.Level, Format: cfg.Format})
	if err != nil {
		return nil, err
	}

	return provider, nil
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:           "mdfolio",
		Short:         "Personal portfolio and blog served from Markdown",
		Long:          rootHelp,
		SilenceUsage:  true,
		SilenceErrors: true,

		DisableAutoGenTag: true,
	}

	flags := root.PersistentFlags()

	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format: json, console, pretty")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored table headers")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")

	root.AddCommand(
		serveCmd(opts),
		renderCmd(opts),
		blocksCmd(opts),
		postsCmd(opts),
	)

	return root
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts := new(options)
	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

// Execute runs the command line and exits with status 1 on error.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := run(context.Background(), args, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "mdfolio: %v\n", err)
		os.Exit(1)
	}
}
