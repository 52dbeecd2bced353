package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/prgate/prgate/internal/api"
	"github.com/prgate/prgate/internal/config"
	"github.com/prgate/prgate/internal/engine"
	"github.com/prgate/prgate/internal/github"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the evaluation HTTP service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (defaults to PORT env or 8080)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN must be set")
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	client := github.NewClient(cfg.GitHubToken, logger)
	fetcher := github.NewFetcher(client, logger)
	service := engine.NewService(fetcher, cfg, logger)
	handler := api.NewHandler(service, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.SetupRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // evaluations may sit out backoff waits
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server exited properly")
	return nil
}
