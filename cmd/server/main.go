// @title Seminarhub API
// @version 1.0
// @description CRUD API for seminar records stored as one JSON document.
// @BasePath /
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

	"golang.org/x/sync/errgroup"

	"seminarhub/config"
	transport "seminarhub/internal/delivery/http"
	"seminarhub/internal/delivery/http/controllers"
	"seminarhub/internal/repository"
	"seminarhub/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seminarhub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, closer, err := newServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close store", "err", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newServer wires the configured store, service and router into an unstarted server.
// The caller owns the returned Closer.
func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*http.Server, io.Closer, error) {
	repo, closer, err := repository.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}

	svc := services.NewSeminarService(repo, cfg.RequestTimeout)
	router := transport.NewRouter(controllers.NewSeminarController(logger, svc))

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           transport.NewHandler(router, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, closer, nil
}
