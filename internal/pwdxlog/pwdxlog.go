// Package pwdxlog provides the centralised, lazily-initialised logger used
// across the indexer and searcher, following the same "initialise once,
// read-only thereafter" pattern used elsewhere in this module for
// compiled automatons.
package pwdxlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Get returns the process-wide logger, creating it on first use.
func Get() *slog.Logger {
	once.Do(func() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: levelFromEnv(),
		}))
	})
	return logger
}

func levelFromEnv() slog.Level {
	switch os.Getenv("PWDX_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
