package analytics

import (
	"context"
	"log/slog"
)

// Log is a Tracker that writes events to structured logs. Useful on its
// own in development and as the fallback when the recorder is disabled.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a Log tracker. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Track(ctx context.Context, e Event) {
	attrs := []any{"kind", string(e.Kind)}
	if e.Path != "" {
		attrs = append(attrs, "path", e.Path)
	}
	if e.SearchText != "" {
		attrs = append(attrs, "search", e.SearchText)
	}
	if e.ItemID != "" {
		attrs = append(attrs, "item_id", e.ItemID)
	}
	if e.MethodID != "" {
		attrs = append(attrs, "method_id", e.MethodID)
	}
	l.logger.InfoContext(ctx, "analytics event", attrs...)
}
