// Package main is the entry point for the usegrant-mcp binary.
// It serves the UseGrant tool catalog to an MCP client over stdio.
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
	"time"

	"github.com/spf13/cobra"

	usegrantmcp "github.com/usegrant/usegrant-mcp"
	"github.com/usegrant/usegrant-mcp/internal/config"
	"github.com/usegrant/usegrant-mcp/internal/logging"
	"github.com/usegrant/usegrant-mcp/internal/telemetry"
	"github.com/usegrant/usegrant-mcp/usegrant"
)

const (
	serviceVersion  = usegrantmcp.DefaultVersion
	shutdownTimeout = 5 * time.Second
)

// CLIConfig holds the parsed CLI flags. Empty values leave the file and
// environment configuration untouched.
type CLIConfig struct {
	Config      string
	LogLevel    string
	MetricsAddr string
	BaseURL     string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Getenv, os.Stderr))
}

// execute runs the root command and returns the process exit code.
func execute(args []string, getenv func(string) string, stderr io.Writer) int {
	cmd := newRootCmd(getenv, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// newRootCmd creates the root command for usegrant-mcp
func newRootCmd(getenv func(string) string, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "usegrant-mcp",
		Short: "UseGrant MCP server",
		Long: `An MCP server exposing the UseGrant API as tools over stdio.

The API key is read from USEGRANT_API_KEY.

Example:
  USEGRANT_API_KEY=ug_live_... usegrant-mcp --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliConfig, err := parseCLIConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cliConfig, getenv, stderr)
		},
	}

	rootCmd.Flags().StringP("config", "c", "", "Path to configuration file (YAML or JSONC)")
	rootCmd.Flags().StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().String("metrics-addr", "", "Address for the Prometheus metrics listener (disabled when empty)")
	rootCmd.Flags().String("base-url", "", "UseGrant API base URL")

	return rootCmd
}

// parseCLIConfig reads the flags into a CLIConfig
func parseCLIConfig(cmd *cobra.Command) (*CLIConfig, error) {
	var cliConfig CLIConfig
	for name, dst := range map[string]*string{
		"config":       &cliConfig.Config,
		"log-level":    &cliConfig.LogLevel,
		"metrics-addr": &cliConfig.MetricsAddr,
		"base-url":     &cliConfig.BaseURL,
	} {
		value, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = value
	}
	return &cliConfig, nil
}

// buildConfig loads the configuration and applies flag overrides.
func buildConfig(cliConfig *CLIConfig, getenv func(string) string) (*config.Config, error) {
	cfg, err := config.Load(cliConfig.Config, getenv)
	if err != nil {
		return nil, err
	}
	if cliConfig.LogLevel != "" {
		cfg.Log.Level = cliConfig.LogLevel
	}
	if cliConfig.MetricsAddr != "" {
		cfg.MetricsAddr = cliConfig.MetricsAddr
	}
	if cliConfig.BaseURL != "" {
		cfg.BaseURL = cliConfig.BaseURL
	}
	return cfg, nil
}

func run(ctx context.Context, cliConfig *CLIConfig, getenv func(string) string, stderr io.Writer) error {
	cfg, err := buildConfig(cliConfig, getenv)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupProvider(ctx, telemetry.TracingConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: serviceVersion,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		Headers:        cfg.Telemetry.Headers,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Error flushing traces", "error", err)
		}
	}()

	metrics := telemetry.NewMetrics()
	if cfg.MetricsAddr != "" {
		stopMetrics := serveMetrics(cfg.MetricsAddr, metrics, logger)
		defer stopMetrics()
	}

	client, err := usegrant.NewClient(usegrant.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		HTTPClient: telemetry.InstrumentedClient(cfg.Timeout),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create UseGrant client: %w", err)
	}

	handler, err := usegrantmcp.New(
		usegrantmcp.WithLogger(logger),
		usegrantmcp.WithMetrics(metrics),
		usegrantmcp.WithUseGrant(client),
	)
	if err != nil {
		return fmt.Errorf("failed to create MCP handler: %w", err)
	}

	logger.Info("UseGrant MCP Server running on stdio",
		"base_url", client.BaseURL(),
		"tools", len(handler.Tools()),
		"log_level", cfg.Log.Level,
	)

	if err := handler.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Fatal error in main()", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}

// serveMetrics exposes the metrics registry on addr and returns a function
// that shuts the listener down.
func serveMetrics(addr string, metrics *telemetry.Metrics, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics listener failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Error stopping metrics listener", "error", err)
		}
	}
}
