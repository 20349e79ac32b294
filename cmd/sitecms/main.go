package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sitecms"
)

var (
	configPath string
	logLevel   string
	dsn        string
)

var rootCmd = &cobra.Command{
	Use:   "sitecms",
	Short: "Marketing site content backend",
	Long: `sitecms serves the content API of the marketing site and provides
maintenance commands for pages, seed content and enquiry exports.

Configuration is read from --config (YAML) and SITECMS_* environment
variables layered over the built-in defaults.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "use the bun storage provider with this sqlite/postgres DSN")

	rootCmd.AddCommand(serveCmd, seedCmd, exportEnquiriesCmd, pagesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (sitecms.Config, error) {
	cfg, err := sitecms.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if level := strings.TrimSpace(logLevel); level != "" {
		cfg.Logging.Level = level
	}
	if trimmed := strings.TrimSpace(dsn); trimmed != "" {
		cfg.Storage.Provider = "bun"
		cfg.Storage.DSN = trimmed
		if strings.HasPrefix(trimmed, "postgres://") || strings.HasPrefix(trimmed, "postgresql://") {
			cfg.Storage.Driver = "postgres"
		}
	}
	return cfg, cfg.Validate()
}

// openModule builds a module for a single command run.
func openModule(ctx context.Context) (*sitecms.Module, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	module, err := sitecms.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialise site module: %w", err)
	}
	return module, nil
}
