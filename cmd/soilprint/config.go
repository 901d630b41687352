package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/soilprint/internal/report"
)

// Config holds the command line settings. ProfilePath is optional; when it
// is empty the default selections are used.
type Config struct {
	ProfilePath string
	Format      string
	LogLevel    zerolog.Level
}

// parseConfig parses args, falling back to SOILPRINT_FORMAT and
// SOILPRINT_LOG_LEVEL for flags that were not given.
func parseConfig(args []string, logger zerolog.Logger) (*Config, error) {
	fs := flag.NewFlagSet("soilprint", flag.ContinueOnError)

	profilePath := fs.String("profile", "", "Path to a YAML selection profile")
	format := fs.String("format", envOr("SOILPRINT_FORMAT", report.FormatText), "Output format (text or json)")
	level := fs.String("log-level", envOr("SOILPRINT_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	config := &Config{
		ProfilePath: *profilePath,
		Format:      strings.ToLower(strings.TrimSpace(*format)),
	}

	switch config.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return nil, fmt.Errorf("unsupported format %q", *format)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(*level))
	if err != nil || lvl == zerolog.NoLevel {
		logger.Warn().Str("value", *level).Msg("invalid log level, using info")
		lvl = zerolog.InfoLevel
	}
	config.LogLevel = lvl

	return config, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
