// Package logging installs a colored slog handler for the CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

var (
	timeColor    = color.New(color.FgMagenta)
	messageColor = color.New(color.Bold, color.FgWhite)
	keyColor     = color.New(color.FgYellow)
)

// ColoredHandler writes one line per record: time, level, message, then key=value attributes.
type ColoredHandler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// NewColoredHandler creates a handler writing to w. Colors follow
// color.NoColor, so they switch off automatically when w is not a terminal.
func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &ColoredHandler{opts: *opts, out: w, mu: &sync.Mutex{}}
}

func (h *ColoredHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *ColoredHandler) Handle(_ context.Context, r slog.Record) error {
	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = color.New(color.FgWhite)
	}

	var line strings.Builder
	line.WriteString(timeColor.Sprint(r.Time.Format("15:04:05.000")))
	line.WriteString(" ")
	line.WriteString(levelColor.Sprintf("%-6s", strings.ToUpper(r.Level.String())))
	line.WriteString(" ")
	line.WriteString(messageColor.Sprint(r.Message))

	for _, a := range h.attrs {
		writeAttr(&line, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&line, h.prefix, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line.String())
	return err
}

func writeAttr(line *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(line, prefix+a.Key+".", ga)
		}
		return
	}

	val := a.Value.String()
	if a.Value.Kind() == slog.KindString {
		val = fmt.Sprintf("%q", val)
	}
	line.WriteString(" ")
	line.WriteString(keyColor.Sprint(prefix + a.Key))
	line.WriteString("=")
	line.WriteString(val)
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// Setup installs a ColoredHandler as the default logger. verbose lowers the
// level to debug; noColor disables colors for the whole process.
func Setup(w io.Writer, verbose, noColor bool) *ColoredHandler {
	if noColor {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := NewColoredHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return handler
}
