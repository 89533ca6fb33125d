// Package observability writes structured diagnostic events to stderr.
// Events are dropped unless logging has been enabled, so report output on
// stdout is never mixed with diagnostics.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	enabled atomic.Bool
	logger  atomic.Pointer[slog.Logger]
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput directs events to w as JSON lines.
func SetOutput(w io.Writer) {
	logger.Store(slog.New(slog.NewJSONHandler(w, nil)))
}

// SetEnabled turns event output on or off.
func SetEnabled(on bool) {
	enabled.Store(on)
}

func Info(event string, fields map[string]any) {
	logEvent(slog.LevelInfo, event, fields)
}

func Error(event string, fields map[string]any, err error) {
	payload := cloneFields(fields)
	if err != nil {
		payload["error"] = err.Error()
	}
	logEvent(slog.LevelError, event, payload)
}

func logEvent(level slog.Level, event string, fields map[string]any) {
	if !enabled.Load() {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	logger.Load().LogAttrs(context.Background(), level, event, attrs...)
}

func cloneFields(fields map[string]any) map[string]any {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	return payload
}
