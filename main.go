package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"fit-engine/internal/config"
	"fit-engine/internal/engine"
	"fit-engine/internal/handler"
	"fit-engine/internal/logger"
	"fit-engine/internal/partner"
	"fit-engine/internal/reportcache"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	cache, err := reportcache.New(cfg.Cache.Size)
	if err != nil {
		logg.Fatal("Failed to create report cache", zap.Error(err))
	}

	eng := engine.New(engine.WithCache(cache), engine.WithLogger(logg))
	h := handler.New(eng, partner.NewDecoder(cfg.Partner.SigningKey), logg)

	server := &fasthttp.Server{
		Handler: h.Handle,
		Name:    "fit-engine",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Fit engine starting",
			zap.String("addr", cfg.Server.Addr()),
			zap.Int("cache_size", cfg.Cache.Size),
			zap.Bool("partner_signing", cfg.Partner.SigningKey != ""),
		)
		errCh <- server.ListenAndServe(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logg.Fatal("Server failed", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	logg.Info("Shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Error("Graceful shutdown failed", zap.Error(err))
	}
}
