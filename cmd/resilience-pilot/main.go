package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const appName = "The Resilience Pilot"

// Build information, overridden via ldflags.
var (
	version   = "1.0.0"
	commit    = "none"
	buildTime = "unknown"
)

var (
	flagConfig string
	flagPort   int
	flagAddr   string
)

var rootCmd = &cobra.Command{
	Use:   "resilience-pilot",
	Short: "A small HTTP service for practicing failure injection and monitoring",
	Long: `The Resilience Pilot is a deliberately small HTTP service for practicing
SRE fundamentals: health probing, RED metrics and controlled failure
injection. Running it with no arguments starts the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", 0, "listen port (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "bind address (overrides config)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("resilience-pilot %s (commit %s, built %s)\n", version, commit, buildTime))
}

func runServe() error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagAddr != "" {
		cfg.BindAddr = flagAddr
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	a := newApp(cfg)
	defer a.events.close()

	server := &http.Server{
		Addr:        cfg.listenAddr(),
		Handler:     a.handler(),
		ReadTimeout: 30 * time.Second,
		// No write timeout: /events streams for the lifetime of the client.
		IdleTimeout: 120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.startServer(server)
	}()

	a.log.Info().Str("addr", server.Addr).Str("version", version).Msg("🚀 Resilience Pilot starting up")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("👋 Resilience Pilot shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
