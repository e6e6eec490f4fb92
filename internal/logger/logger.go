// Package logger provides the application-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger   zerolog.Logger
	initOnce sync.Once
)

// Init configures the global logger. In development output is a
// human-friendly console writer; everywhere else it is JSON on stderr.
func Init(environment string) {
	initOnce.Do(func() {
		lvl := zerolog.InfoLevel
		if raw := os.Getenv("LOG_LEVEL"); raw != "" {
			if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
				lvl = parsed
			}
		}
		zerolog.SetGlobalLevel(lvl)

		if environment == "development" {
			console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
				w.Out = os.Stderr
				w.TimeFormat = time.Kitchen
			})
			logger = zerolog.New(console).With().Timestamp().Logger()
			return
		}

		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	})
}

// L returns the global logger.
func L() *zerolog.Logger {
	return &logger
}
