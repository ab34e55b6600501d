package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booklibrary/internal/config"
	apphttp "booklibrary/internal/http"
	"booklibrary/internal/httpx"
	"booklibrary/internal/ingest"
	"booklibrary/internal/library"
	"booklibrary/internal/logger"
	"booklibrary/internal/platform/openlibrary"
	"booklibrary/internal/seed"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lib, err := seed.Build(seed.Options{Sample: cfg.Seed.Sample, File: cfg.Seed.File})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot seed library")
	}
	lib.Subscribe(func() { logStats(lib) })

	if len(cfg.OpenLibrary.Subjects) > 0 {
		client := openlibrary.NewClient(cfg.OpenLibrary.UserAgent, cfg.OpenLibrary.RPS, cfg.OpenLibrary.MaxRetries)
		importer := ingest.NewService(client, lib, ingest.Config{
			BooksMax: cfg.OpenLibrary.BooksMax,
			Subjects: cfg.OpenLibrary.Subjects,
		})
		go seed.Import(ctx, importer)
	}

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	handler := httpx.Chain(
		apphttp.NewRouter(apphttp.NewBookHandler(lib)),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.IsProduction()),
		httpx.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
		rateLimiter.Middleware,
	)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Str("env", cfg.App.Environment).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func logStats(lib *library.Library) {
	s := lib.Stats()
	log.Debug().
		Int("count", s.Count).
		Int("read", s.ReadCount).
		Float64("progress", s.ReadingProgress).
		Msg("library changed")
}
