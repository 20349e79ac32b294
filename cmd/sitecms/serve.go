package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sitecms/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content API",
	Long: `Starts the HTTP API. Public routes serve content, rendered pages and
navigation; admin routes require a bearer token unless auth.provider is
"none". Interrupt to shut down gracefully.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to http.address)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	module, err := openModule(ctx)
	if err != nil {
		return err
	}
	defer module.Close()

	container := module.Container()
	container.SubscribeCommands(1)
	logger := container.Logger(logging.HTTPModule)

	cfg := container.Config.HTTP
	addr := cfg.Address
	if trimmed := strings.TrimSpace(serveAddr); trimmed != "" {
		addr = trimmed
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      module.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http.listening", "addr", addr, "base_path", cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	logger.Info("http.shutdown", "timeout", cfg.ShutdownTimeout.String())
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
