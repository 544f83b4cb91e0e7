package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("proxy_id", event.ProxyID),
		slog.String("direction", event.Direction.String()),
		slog.String("op", event.Operation.String()),
		slog.String("device", event.Device),
	}

	if len(event.Attributes) > 0 {
		attrs = append(attrs, slog.String("attrs", strings.Join(event.Attributes, ",")))
	}
	if event.Direction == DirectionReply {
		attrs = append(attrs, slog.Duration("duration", event.Duration))
	}
	if event.Error != nil {
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Error.Reason))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "proxy", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
