package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tradingdash/journal-api/internal/api"
	"github.com/tradingdash/journal-api/internal/infrastructure/config"
	"github.com/tradingdash/journal-api/internal/infrastructure/db/supabase"
	"github.com/tradingdash/journal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is a convenience for local development; in production the
	// variables come from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, err := supabase.New(supabase.Config{
		URL:     cfg.Supabase.URL,
		AnonKey: cfg.Supabase.AnonKey,
		Timeout: cfg.Supabase.Timeout,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("supabase client init failed")
	}

	e := api.NewRouter(cfg, client, logg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server start failed")
		}
	}()
	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("trading dashboard api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logg.Error().Err(err).Msg("forced shutdown")
	}
}
