// Deep Analytics: session-scoped analytical decision trees over MCP.
//
// The service exposes its tools at http://<BIND_ADDRESS>/mcp using the
// streamable HTTP transport; every MCP session gets its own isolated tree.
//
// Configuration (environment):
//
//	BIND_ADDRESS  host:port to listen on (default 0.0.0.0:8080)
//	DATABASE_URL  write-through journal target (default "memory")
//	LOG_LEVEL     debug | info | warn | error (default info)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/reasonmcp/reasonmcp/internal/config"
	mcpserver "github.com/reasonmcp/reasonmcp/internal/server"
)

const defaultPort = 8080

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv(defaultPort)
	if err != nil {
		return err
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is unactionable

	s, cleanup, err := mcpserver.NewAnalytics(cfg, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	log.Info("starting deep-analytics", zap.String("version", mcpserver.Version))
	return mcpserver.Serve(ctx, cfg, "deep-analytics", s, log)
}
