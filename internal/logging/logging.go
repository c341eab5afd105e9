// Package logging provides structured logging for the lvstirling command
// using Go's slog package. Library packages do not log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug is for per-level progress.
	LevelDebug Level = iota
	// LevelInfo is for run summaries.
	LevelInfo
	// LevelWarn is for verification mismatches.
	LevelWarn
	// LevelError is for failed commands.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// ParseLevel maps "debug", "info", "warn" and "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// ParseFormat maps "text" and "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return FormatText, fmt.Errorf("logging: unknown format %q", s)
}

// Init replaces the package logger. Output goes to w, typically os.Stderr,
// so that stdout carries only command results.
func Init(w io.Writer, level Level, format Format) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)

	return defaultLogger
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return defaultLogger
}

// LevelBuilt logs the size of one enumerated level.
func LevelBuilt(kind string, order, count int, elapsed time.Duration) {
	defaultLogger.Debug("level_built",
		"kind", kind,
		"order", order,
		"count", count,
		"duration_ms", elapsed.Milliseconds(),
	)
}

// Enumerated logs the summary of a finished enumeration.
func Enumerated(kind string, order, count int, elapsed time.Duration, args ...any) {
	allArgs := []any{
		"kind", kind,
		"order", order,
		"count", count,
		"duration_ms", elapsed.Milliseconds(),
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("enumerated", allArgs...)
}

// Mismatch logs a verification failure.
func Mismatch(check string, order int, detail string) {
	defaultLogger.Warn("verify_mismatch",
		"check", check,
		"order", order,
		"detail", detail,
	)
}
