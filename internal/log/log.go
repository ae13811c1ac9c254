// Package log provides category-tagged structured logging for soundboard.
//
// Logging is silent until Init is called. The board UI owns the terminal,
// so log output always goes to a rotating file rather than stderr.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Category groups log lines by subsystem.
type Category string

const (
	CatDB     Category = "db"
	CatAudio  Category = "audio"
	CatRecord Category = "record"
	CatUI     Category = "ui"
	CatConfig Category = "config"
	CatCmd    Category = "cmd"
)

// Options configures the log sink.
type Options struct {
	Level      string // debug, info, warn, error
	File       string
	MaxSizeMB  int
	MaxBackups int
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// Init routes log output to opts.File with size-based rotation.
// The returned closer flushes and closes the file.
func Init(opts Options) (io.Closer, error) {
	if opts.File == "" {
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	SetOutput(w, ParseLevel(opts.Level))
	return w, nil
}

// SetOutput replaces the sink. Tests use it to capture output.
func SetOutput(w io.Writer, level slog.Level) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger.Store(slog.New(h))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(cat Category, msg string, args ...any) {
	logger.Load().Debug(msg, withCat(cat, args)...)
}

func Info(cat Category, msg string, args ...any) {
	logger.Load().Info(msg, withCat(cat, args)...)
}

func Warn(cat Category, msg string, args ...any) {
	logger.Load().Warn(msg, withCat(cat, args)...)
}

func Error(cat Category, msg string, args ...any) {
	logger.Load().Error(msg, withCat(cat, args)...)
}

// ErrorErr logs msg at error level with err attached under the "error" key.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	logger.Load().Error(msg, withCat(cat, append(args, "error", err))...)
}

func withCat(cat Category, args []any) []any {
	return append([]any{"cat", string(cat)}, args...)
}
