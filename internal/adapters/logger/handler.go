package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/crit/internal/ui/output"
	"go.trai.ch/crit/internal/ui/style"
)

// levelStyle is the icon and color a record line starts with.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{icon: style.Cross, color: style.Critical}
	case level >= slog.LevelWarn:
		return levelStyle{icon: style.Warning, color: style.Float}
	default:
		return levelStyle{color: style.Muted}
	}
}

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Attributes are appended as key=value pairs, prefixed by the open groups.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var line strings.Builder
	if ls.icon != "" {
		line.WriteString(ls.icon + " ")
	}
	line.WriteString(r.Message)
	for _, attr := range h.attrs {
		line.WriteString(" " + attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" " + h.pair(attr))
		return true
	})

	styled := h.out.String(line.String()).Foreground(h.out.Color(string(ls.color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, h.pair(attr))
	}
	return clone
}

// WithGroup returns a new Handler that prefixes later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.prefix += name + "."
	return clone
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  append([]string(nil), h.attrs...),
		prefix: h.prefix,
	}
}

func (h *PrettyHandler) pair(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}
