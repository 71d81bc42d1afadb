// Package main is the entry point for Depths.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/depths/internal/game"
	"github.com/samdwyer/depths/internal/logger"
	"github.com/samdwyer/depths/internal/telemetry"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "depths: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup, so errors return here instead of
// exiting past the log file and tracer shutdown.
func run(args []string) error {
	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs only go to a file.
	if cfg.Log.File != "" {
		closer, err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closer.Close()
	}

	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.For("main").WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.For("main").WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.For("main").WithError(err).Error("game exited with error")
		return err
	}
	return nil
}

// loadSettings loads .env before reading flags, so a .env file may set
// DEPTHS_CONFIG as well as the other overrides.
func loadSettings(args []string) (game.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	fs := flag.NewFlagSet("depths", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("DEPTHS_CONFIG"), "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return game.Config{}, err
	}
	return loadConfig(*configPath)
}

// loadConfig reads path when set, falls back to defaults otherwise, then
// applies environment overrides.
func loadConfig(path string) (game.Config, error) {
	cfg := game.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = game.LoadConfig(path); err != nil {
			return game.Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return game.Config{}, err
	}
	return cfg, cfg.Validate()
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint is set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DEPTHS_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DEPTHS_DATASET")
	if dataset == "" {
		dataset = "depths"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
