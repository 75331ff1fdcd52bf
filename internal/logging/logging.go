// Package logging configures the application-wide zerolog logger and carries
// trace IDs through context so every log line of one command invocation can
// be correlated.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// logFilePerm is the permission mode for created log files.
const logFilePerm = 0o600

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or empty
	// values fall back to info.
	Level string
	// Format selects "console" (human readable) or "json".
	Format string
	// File, when non-empty, appends JSON logs to the given path in addition
	// to the console writer.
	File string
}

// Result describes the logger that was built and the file sink, if any.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if one was opened.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a zerolog logger from cfg. When a log file cannot be opened the
// logger falls back to console-only output and the returned error reports the
// failure; the Result is still usable.
func New(cfg Config) (Result, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	result := Result{}
	var openErr error
	if cfg.File != "" {
		f, ferr := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
		if ferr != nil {
			openErr = fmt.Errorf("opening log file %s: %w", cfg.File, ferr)
		} else {
			writers = append(writers, f)
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = f
		}
	}

	result.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return result, openErr
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// traceIDKey is the context key for the per-invocation trace ID.
type traceIDKey struct{}

// ContextWithTraceID attaches a trace ID to ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID in ctx, or "" if absent.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID already in ctx, generating a new
// ULID when none is present.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.Make().String()
}
