package game

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/agent2199/internal/gamedata"
)

// Config holds game configuration options.
type Config struct {
	// LevelFile is a level JSON file on disk. Empty means the embedded reference level.
	LevelFile string
	// LogFile receives the log output while the terminal is in use.
	LogFile string
	// Scale is the number of screen cells per map cell along each axis.
	Scale int
	// Dump prints the composed map once as colored text instead of starting the terminal UI.
	Dump bool
	// Plain makes Dump print the bare map without colors or entities.
	Plain bool
	// Telemetry enables OTLP trace export.
	Telemetry bool
	// SampleRatio is the fraction of traces exported when telemetry is on.
	SampleRatio float64
	// SessionID identifies the session in logs and traces. Empty means generate one.
	SessionID string
}

// DefaultConfig returns the configuration used when no flags or environment are set.
func DefaultConfig() Config {
	return Config{
		LogFile:   "agent2199.log",
		Scale:     1,
		Telemetry: true,
	}
}

// ParseFlags builds a Config from command-line arguments. Environment
// variables (AGENT2199_LEVEL, LOG_FILE, AGENT2199_TELEMETRY) provide defaults.
func ParseFlags(name string, args []string) (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv("AGENT2199_LEVEL"); v != "" {
		cfg.LevelFile = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("AGENT2199_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("AGENT2199_TELEMETRY: %w", err)
		}
		cfg.Telemetry = enabled
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.LevelFile, "level", cfg.LevelFile, "Level JSON file (default: embedded level)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "Screen cells per map cell")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "Print the map as colored text and exit")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "With -dump, print the bare map without colors")
	fs.BoolVar(&cfg.Telemetry, "telemetry", cfg.Telemetry, "Export traces over OTLP")
	fs.Float64Var(&cfg.SampleRatio, "sample", cfg.SampleRatio, "Fraction of traces to export (0 = all)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Scale < 1 {
		return cfg, fmt.Errorf("invalid scale %d: must be at least 1", cfg.Scale)
	}

	return cfg, nil
}

// LoadLevel loads the configured level file, or the embedded level when none is set.
func (c Config) LoadLevel() (gamedata.LevelDef, error) {
	if c.LevelFile == "" {
		return gamedata.LoadLevel()
	}
	return gamedata.LoadLevelFile(c.LevelFile)
}
