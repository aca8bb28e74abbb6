/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the leave ledger server.

STARTUP SEQUENCE:
  1. Load environment configuration (.env supported)
  2. Parse command-line flags (flags win over environment)
  3. Build logger, store, service, handler, router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr   Listen address (default from LEAVE_ADDR, ":8080")
  -data   Data directory for the JSON files (default from LEAVE_DATA_DIR, "data")

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for active
  requests, exit. Saves are atomic, so an interrupt never leaves a
  half-written collection behind.
*/
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/leave-ledger/api"
	"github.com/warp/leave-ledger/config"
	"github.com/warp/leave-ledger/leave"
	"github.com/warp/leave-ledger/store/jsonfile"
)

func main() {
	cfg := config.Load()

	// Flags
	addr := flag.String("addr", cfg.Addr, "listen address")
	dataDir := flag.String("data", cfg.DataDir, "data directory for users.json and leaves.json")
	flag.Parse()

	// Logger
	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Store and domain wiring
	store := jsonfile.New(*dataDir)
	service := leave.NewService(store)
	handler := api.NewHandler(service, logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting",
			zap.String("addr", *addr),
			zap.String("data_dir", *dataDir))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

// newLogger builds a zap logger for the environment: structured JSON in
// production, human-readable in development.
func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
