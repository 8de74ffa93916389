package cmd

import (
	"context"
	_ "embed"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ezerfernandes/mdfolio/internal/config"
	"github.com/ezerfernandes/mdfolio/internal/content"
	"github.com/ezerfernandes/mdfolio/internal/logging"
	"github.com/ezerfernandes/mdfolio/internal/site"
	"github.com/spf13/cobra"
)

//go:embed help/serve.md
var serveHelp string

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long:  serveHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			return serveRun(cmd.Context(), cfg)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, :3000)")

	return cmd
}

func serveRun(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := newLoggerProvider(cfg.Log)
	if err != nil {
		return err
	}

	logger := logging.ModuleLogger(provider, "mdfolio.serve")

	source, cache, err := newSource(cfg.Content)
	if err != nil {
		return err
	}

	svc, err := newBlogService(cfg, source, provider)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchesDir(cfg.Content) && cache != nil {
		err := content.Watch(ctx, cfg.Content.Dir, func(path string) {
			logger.Debug("content changed", "path", path)
			cache.Invalidate(path)
		}, func(err error) {
			logger.Warn("content watch failed", "error", err)
		})
		if err != nil {
			return err
		}
	}

	server := site.New(svc, site.Config{
		Site:         cfg.Site,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, site.WithLogger(logging.ModuleLogger(provider, "mdfolio.site")))

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// watchesDir reports whether cfg asks for a watched local directory.
func watchesDir(cfg config.Content) bool {
	return cfg.Watch && strings.EqualFold(strings.TrimSpace(cfg.Source), config.SourceDir)
}
