package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/yukselcoding/greeting-service/internal/config"
	"github.com/yukselcoding/greeting-service/internal/greeting"
	"github.com/yukselcoding/greeting-service/internal/logging"
	"github.com/yukselcoding/greeting-service/internal/server"
)

// serveOptions holds flag values that override environment configuration
type serveOptions struct {
	port           string
	greetingFormat string
	logLevel       string
}

// apply copies every flag the user set onto cfg and revalidates it
func (o *serveOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = o.port
	}
	if flags.Changed("greeting-format") {
		cfg.Greeting.Format = o.greetingFormat
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	return cfg.Validate()
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "greeting-service",
		Short: "Serve greeting statements over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return fmt.Errorf("apply flags: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.Flags().StringVar(&opts.port, "port", "", "Port to listen on (overrides PORT).")
	cmd.Flags().StringVar(&opts.greetingFormat, "greeting-format", "", "Greeting template with one %s verb (overrides GREETING_FORMAT).")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL).")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return cmd
}

// serve runs the HTTP server until SIGINT/SIGTERM, then shuts down gracefully
func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}

	greeter, err := greeting.NewGreeter(cfg.Greeting.Format)
	if err != nil {
		return err
	}

	// Release mode keeps gin's debug route dump out of the logs
	gin.SetMode(gin.ReleaseMode)

	router := server.New(&server.Dependencies{
		Config:  cfg,
		Greeter: greeter,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("greeting_format", greeter.Format()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
