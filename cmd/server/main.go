package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imobly/docforge/internal/api"
	"github.com/imobly/docforge/internal/config"
	"github.com/imobly/docforge/internal/draft"
	"github.com/imobly/docforge/internal/registry"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	reg := registry.New()
	if cfg.SeedFile != "" {
		if err := reg.LoadSeed(cfg.SeedFile); err != nil {
			log.Error("failed to load snapshot seed", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		log.Info("snapshot loaded", "file", cfg.SeedFile)
	}

	drafts := draft.NewStore()
	srv := api.NewServer(reg, drafts, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docforge", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
