// Package dataset provides the compile-time soil footprint tables and
// reference consumption profiles. All data is embedded CSV parsed on first
// access.
package dataset

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Str("component", "dataset").Logger()
	logger.Store(&l)
}

// SetLogger replaces the logger used to report malformed embedded rows.
// Tables already parsed are not re-reported.
func SetLogger(l zerolog.Logger) {
	tagged := l.With().Str("component", "dataset").Logger()
	logger.Store(&tagged)
}

func log() *zerolog.Logger {
	return logger.Load()
}
