// Package main is the entry point for Agent2199.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/agent2199/internal/game"
	"github.com/samdwyer/agent2199/internal/gamedata"
	"github.com/samdwyer/agent2199/internal/logger"
	"github.com/samdwyer/agent2199/internal/telemetry"
	"github.com/samdwyer/agent2199/internal/ui"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "agent2199: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; variables may be set directly
	envErr := godotenv.Load()

	setupOTelEnv()

	cfg, err := game.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		return err
	}

	// The dump mode writes the map to stdout, so logs may share stderr.
	var out io.Writer = os.Stderr
	if !cfg.Dump {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(logger.Options{Output: out})
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()
	cfg.SessionID = uuid.NewString()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			SessionID:   cfg.SessionID,
			SampleRatio: cfg.SampleRatio,
		})
		if err != nil {
			// Continue without telemetry - game still works
			log.WithError(err).Warn("Telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("Telemetry shutdown failed")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	level, err := cfg.LoadLevel()
	if err != nil {
		return err
	}

	if cfg.Dump {
		return dump(ctx, cfg, level, log)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	if w, h := screen.Size(); !level.FitsTerminal(w, h) {
		sw, sh := level.ScreenSize()
		log.WithFields(logrus.Fields{
			"terminal": fmt.Sprintf("%dx%d", w, h),
			"screen":   fmt.Sprintf("%dx%d", sw, sh),
		}).Warn("Terminal is smaller than the level screen")
	}

	g, err := game.New(ctx, screen, level, cfg, log)
	if err != nil {
		screen.Close()
		return err
	}

	log.WithField("session", g.SessionID()).Info("Starting game")
	return g.Run(ctx)
}

// dump renders the level once to stdout.
func dump(ctx context.Context, cfg game.Config, level gamedata.LevelDef, log logrus.FieldLogger) error {
	g, err := game.New(ctx, nil, level, cfg, log)
	if err != nil {
		return err
	}
	if cfg.Plain {
		_, err = io.WriteString(os.Stdout, g.Grid().String())
		return err
	}
	text, err := g.Snapshot(lipgloss.NewRenderer(os.Stdout))
	if err != nil {
		return err
	}
	_, err = io.WriteString(os.Stdout, text)
	return err
}

// setupOTelEnv maps HONEYCOMB_* variables onto the OTLP exporter's OTEL_* variables.
// Explicit OTEL_* settings win.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "agent2199"
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
