package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// LevelEnvVar is the environment variable that controls the default
	// log level when no explicit level is given.
	LevelEnvVar = "LOG_LEVEL"

	moduleKey  = "module"
	versionKey = "version"
)

// SetDefaultStructuredLogger installs a JSON logger writing to stderr as the
// process-wide default. The log level is read from the LOG_LEVEL environment
// variable, defaulting to INFO when unset or unparseable.
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultStructuredLoggerWithLevel(name, version, os.Getenv(LevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs a JSON logger writing to
// stderr as the process-wide default, using the given level instead of the
// environment.
func SetDefaultStructuredLoggerWithLevel(name, version, level string) {
	slog.SetDefault(NewStructuredLogger(name, version, level))
}

// NewStructuredLogger returns a JSON logger writing to stderr. Every record
// carries the module name and version as attributes. Debug-level loggers
// also record the source location of each call site.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})

	return slog.New(h).With(
		slog.String(moduleKey, module),
		slog.String(versionKey, version),
	)
}

// NewLogLogger returns a standard library logger that forwards to a JSON
// slog handler at the given level. Useful for libraries that only accept a
// *log.Logger, such as http.Server.ErrorLog.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(h, level)
}

// ParseLevel maps a level name to its slog level. Matching is
// case-insensitive and tolerates surrounding whitespace. Unknown or empty
// names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
