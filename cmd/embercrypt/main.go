// Package main is the entry point for Embercrypt.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/game"
	"github.com/samdwyer/embercrypt/internal/gamedata"
	"github.com/samdwyer/embercrypt/internal/history"
	"github.com/samdwyer/embercrypt/internal/i18n"
	"github.com/samdwyer/embercrypt/internal/random"
	"github.com/samdwyer/embercrypt/internal/telemetry"
	"github.com/samdwyer/embercrypt/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			SampleRatio: cfg.TelemetrySampleRatio,
			Seed:        cfg.Seed,
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	logger, closer, err := telemetry.NewLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		// The game is playable without run history.
		logger.Warn().Err(err).Str("path", cfg.HistoryPath).Msg("history unavailable")
		store = nil
	} else {
		defer store.Close()
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}
	registry, err := gamedata.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	tables, err := gamedata.LoadTables()
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	if err := tables.Validate(registry); err != nil {
		return fmt.Errorf("validate tables: %w", err)
	}
	catalog, err := entity.NewCatalog(registry)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	src, err := random.New(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed rng: %w", err)
	}

	tr := bundle.Translator(cfg.Locale)
	engine := game.NewEngine(cfg, catalog, tables, tr, src, logger)

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	logger.Info().Str("locale", tr.Locale()).Uint64("seed", cfg.Seed).Msg("starting")
	return game.New(cfg, screen, engine, store, logger).Run(ctx)
}

// setupOTelEnv maps the Honeycomb variables onto the OTLP exporter ones.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_EMBERCRYPT_API_KEY")
	dataset := os.Getenv("HONEYCOMB_EMBERCRYPT_DATASET")
	if dataset == "" {
		dataset = "embercrypt"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
