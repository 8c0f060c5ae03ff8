package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/saffron-menu/internal/catalog"
	"github.com/Lixing-Zhang/saffron-menu/internal/config"
	"github.com/Lixing-Zhang/saffron-menu/internal/handlers"
	"github.com/Lixing-Zhang/saffron-menu/internal/repository"
	"github.com/Lixing-Zhang/saffron-menu/internal/service"
	"github.com/Lixing-Zhang/saffron-menu/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("menu api stopped", "error", err)
		os.Exit(1)
	}
}

// run serves the menu API until ctx is cancelled, then drains in-flight
// requests within the shutdown timeout
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	menu, err := catalog.Load(cfg.Menu.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded",
		"restaurant", menu.Name,
		"categories", len(menu.Categories),
		"items", menu.ItemCount(),
		"source", catalogSource(cfg.Menu.CatalogFile),
	)

	repo := repository.NewInMemoryMenuRepository(menu)
	router := handlers.NewRouter(
		cfg.CORS,
		handlers.NewHealthHandler(log, menu),
		handlers.NewMenuHandler(service.NewMenuService(repo), log),
		handlers.NewQuoteHandler(service.NewQuoteService(repo), log),
		log,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout(cfg.Server.ReadTimeout),
		WriteTimeout: cfg.Server.Timeout(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("menu api listening", "address", srv.Addr, "log_level", cfg.LogLevel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down menu api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("menu api stopped gracefully")
	return nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
