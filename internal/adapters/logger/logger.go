// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/crit/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger writes to stderr by default, either as pretty colored lines or as JSON records.
type Logger struct {
	current atomic.Pointer[slog.Logger]
	json    atomic.Bool

	mu     sync.Mutex
	output io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination, preserving the current mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json.Store(enable)
	l.rebuild()
}

// rebuild must be called with mu held, or before l is shared.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler = NewPrettyHandler(l.output, opts)
	if l.json.Load() {
		handler = slog.NewJSONHandler(l.output, opts)
	}
	l.current.Store(slog.New(handler))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.current.Load().Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.current.Load().Warn(msg)
}

// Error logs err. Pretty output prints the whole chain with its metadata; JSON output keeps the
// full text under "error" and the metadata of every link under "metadata".
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	entries := collectErrorEntries(err)
	if !l.json.Load() {
		l.current.Load().Error(formatErrorEntries(entries))
		return
	}

	attrs := []any{slog.String("error", err.Error())}
	if meta := mergeMetadata(entries); len(meta) > 0 {
		group := make([]any, 0, len(meta))
		for _, key := range slices.Sorted(maps.Keys(meta)) {
			group = append(group, slog.Any(key, meta[key]))
		}
		attrs = append(attrs, slog.Group("metadata", group...))
	}
	l.current.Load().Error(entries[0].Message, attrs...)
}

// mergeMetadata flattens the metadata of all entries. Outer links win on key clashes.
func mergeMetadata(entries []ErrorEntry) map[string]any {
	meta := make(map[string]any)
	for _, entry := range slices.Backward(entries) {
		maps.Copy(meta, entry.Metadata)
	}
	return meta
}
