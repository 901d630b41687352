package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/rshade/soilprint/internal/dataset"
	"github.com/rshade/soilprint/internal/profile"
	"github.com/rshade/soilprint/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code. The report is
// written to stdout; logs go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	logger := zerolog.New(stderr).With().Timestamp().Str("service", "soilprint").Logger()

	config, err := parseConfig(args, logger)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 2
	}
	logger = logger.Level(config.LogLevel)
	dataset.SetLogger(logger)

	p := profile.Default()
	if config.ProfilePath != "" {
		if p, err = profile.Load(config.ProfilePath); err != nil {
			logger.Error().Err(err).Str("path", config.ProfilePath).Msg("failed to load profile")
			return 1
		}
		logger.Debug().Str("path", config.ProfilePath).Msg("profile loaded")
	}

	r, err := report.NewBuilder(logger).Build(p)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build report")
		return 1
	}

	if err := report.Write(stdout, r, config.Format); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return 1
	}
	return 0
}
