package config

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger creates the structured logger used by the front-ends. The
// level comes from ASTEROIDS_LOG_LEVEL (debug, info, warn, error) and
// defaults to info; unknown values also fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(GetEnv(EnvLogLevel, "info")))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}
