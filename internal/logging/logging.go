// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"off":     zerolog.Disabled,
}

// Setup sets the global level and routes log output to w (os.Stderr when
// nil) using a human-readable console format. Writing to a file (path set)
// switches to JSON lines.
func Setup(level, path string, w io.Writer) error {
	lev, ok := levelMapping[level]
	if !ok {
		return fmt.Errorf("invalid logging level: %s", level)
	}
	zerolog.SetGlobalLevel(lev)

	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", path, err)
		}
		log.Logger = zerolog.New(logf).With().Timestamp().Logger()
		return nil
	}

	if w == nil {
		w = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	})
	return nil
}
