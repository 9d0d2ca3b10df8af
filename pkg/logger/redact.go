package logger

import (
	"context"
	"log/slog"
)

// RedactedMarker replaces token values in emitted records.
const RedactedMarker = "[REDACTED]"

// RedactHandler wraps a slog.Handler and scrubs credentials from every
// record before it reaches the sink: "password" attributes are removed
// entirely, "token" attribute values are replaced with RedactedMarker.
// Group attributes are scrubbed recursively.
type RedactHandler struct {
	next slog.Handler
}

// NewRedactHandler creates a new redacting handler.
func NewRedactHandler(next slog.Handler) slog.Handler {
	return &RedactHandler{next: next}
}

func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RedactHandler) Handle(ctx context.Context, rec slog.Record) error {
	clean := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)

	rec.Attrs(func(a slog.Attr) bool {
		if scrubbed, keep := redactAttr(a); keep {
			clean.AddAttrs(scrubbed)
		}
		return true
	})

	return h.next.Handle(ctx, clean)
}

func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if scrubbed, keep := redactAttr(a); keep {
			clean = append(clean, scrubbed)
		}
	}
	return &RedactHandler{next: h.next.WithAttrs(clean)}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{next: h.next.WithGroup(name)}
}

// redactAttr applies the fixed scrub rules to a single attribute.
// Returns the (possibly rewritten) attribute and whether to keep it.
func redactAttr(a slog.Attr) (slog.Attr, bool) {
	switch a.Key {
	case "password":
		return slog.Attr{}, false
	case "token":
		return slog.String(a.Key, RedactedMarker), true
	}

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		clean := make([]slog.Attr, 0, len(members))
		for _, m := range members {
			if scrubbed, keep := redactAttr(m); keep {
				clean = append(clean, scrubbed)
			}
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clean...)}, true
	}

	return a, true
}
