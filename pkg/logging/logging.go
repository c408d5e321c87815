// Package logging configures slog for all agent processes.
//
// Lines are written as
//
//	YYYY-MM-DD HH:MM:SS,mmm | <process> | LEVEL | message key=value ...
//
// to the debug log file and, at its own level, to stderr. The fixed line
// prefix is what the log extraction endpoint parses, so the format must stay
// in lockstep with pkg/logfile.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LevelCritical sits above slog.LevelError. Critical failures abort the
// process after logging.
const LevelCritical = slog.LevelError + 4

// TimeLayout is the timestamp format of every log line.
const TimeLayout = "2006-01-02 15:04:05,000"

// Setup installs the default slog logger for the named process. The file
// sink is skipped when logsFile is empty.
func Setup(process, logsFile string, fileLevel, consoleLevel slog.Level) error {
	handlers := []slog.Handler{
		newLineHandler(os.Stderr, process, consoleLevel),
	}
	if logsFile != "" {
		if err := os.MkdirAll(filepath.Dir(logsFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(logsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logsFile, err)
		}
		handlers = append(handlers, newLineHandler(f, process, fileLevel))
	}
	slog.SetDefault(slog.New(multiHandler(handlers)))
	return nil
}

// ParseLevel maps a config level name onto a slog level. Unknown names mean
// debug, matching the most verbose behavior.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "critical":
		return LevelCritical
	case "error":
		return slog.LevelError
	case "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// LevelName renders a slog level the way log lines and the extraction
// buckets spell it.
func LevelName(l slog.Level) string {
	switch {
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// Critical logs at the critical level and terminates the process. Reserved
// for unrecoverable startup failures.
func Critical(msg string, args ...any) {
	slog.Log(context.Background(), LevelCritical, msg, args...)
	os.Exit(1)
}

// lineHandler renders records as single pipe-delimited lines.
type lineHandler struct {
	mu      *sync.Mutex
	w       io.Writer
	process string
	level   slog.Level
	attrs   []slog.Attr
}

func newLineHandler(w io.Writer, process string, level slog.Level) *lineHandler {
	return &lineHandler{
		mu:      &sync.Mutex{},
		w:       w,
		process: process,
		level:   level,
	}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(TimeLayout))
	fmt.Fprintf(&b, " | %-8s | %8s | %s", h.process, LevelName(r.Level), r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}

// multiHandler fans one record out to several handlers.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}
