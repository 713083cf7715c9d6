package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"imobigest/internal/api"
	"imobigest/internal/auth"
	"imobigest/internal/config"
	"imobigest/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "imobigest",
	Short: "ImobiGest CLI - manage real-estate sales and commissions",
	Long: `ImobiGest CLI is a command-line client for the ImobiGest
commission-management API. It registers agencies, roles, professionals and
sales, generates payment installments and shows aggregated dashboard
metrics.

Set IMOBIGEST_API_BASE_URL to the API's base URL (a .env file is read when
present) and run "imobigest login" to start a session.`,
	Version: version,
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// appEnv bundles what every command needs: the configuration, the session
// and the API client sharing it.
type appEnv struct {
	cfg     *config.Config
	session *auth.Session
	client  *api.Client
}

// loadEnv loads the configuration, reconfigures the logger with it and
// builds the shared API client.
func loadEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		return nil, err
	}

	session := auth.NewSession(cfg.SessionFile)
	return &appEnv{
		cfg:     cfg,
		session: session,
		client:  api.NewClient(cfg.APIBaseURL, session, cfg.HTTPTimeout),
	}, nil
}

// commandContext returns a context cancelled by SIGINT/SIGTERM and bounded
// by the configured HTTP timeout with headroom for multi-request flows.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
