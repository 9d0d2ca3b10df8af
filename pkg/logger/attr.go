package logger

import (
	"context"
	"log/slog"
	"time"
)

// Severity classifies security events for operational monitoring.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// slowOperation is the duration above which Performance escalates to warn.
const slowOperation = 5 * time.Second

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil or an empty string, it returns an empty Attr, which slog
// handlers drop.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	if s, ok := id.(string); ok && s == "" {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// SecurityEvent logs an abuse-relevant event tagged for monitoring.
// high/critical severities emit at error level, medium/low at warn.
func SecurityEvent(ctx context.Context, log *slog.Logger, event string, severity Severity, attrs ...slog.Attr) {
	level := slog.LevelWarn
	if severity == SeverityHigh || severity == SeverityCritical {
		level = slog.LevelError
	}

	tagged := append([]slog.Attr{
		slog.Bool("security_event", true),
		slog.String("severity", string(severity)),
	}, attrs...)

	log.LogAttrs(ctx, level, event, tagged...)
}

// Performance logs an operation's duration tagged as a performance
// metric. Operations slower than 5s emit at warn level, others at info.
func Performance(ctx context.Context, log *slog.Logger, operation string, duration time.Duration, attrs ...slog.Attr) {
	level := slog.LevelInfo
	if duration > slowOperation {
		level = slog.LevelWarn
	}

	tagged := append([]slog.Attr{
		slog.Bool("performance_metric", true),
		slog.String("operation", operation),
		slog.Duration("duration", duration),
	}, attrs...)

	log.LogAttrs(ctx, level, operation, tagged...)
}

// ServiceCall logs an outbound call to an external collaborator.
func ServiceCall(ctx context.Context, log *slog.Logger, service, operation string, attrs ...slog.Attr) {
	tagged := append([]slog.Attr{
		slog.String("service", service),
		slog.String("operation", operation),
	}, attrs...)

	log.LogAttrs(ctx, slog.LevelDebug, "service call", tagged...)
}

// ServiceError logs a failed call to an external collaborator.
func ServiceError(ctx context.Context, log *slog.Logger, service, operation string, err error, attrs ...slog.Attr) {
	tagged := append([]slog.Attr{
		slog.String("service", service),
		slog.String("operation", operation),
		Error(err),
	}, attrs...)

	log.LogAttrs(ctx, slog.LevelError, "service call failed", tagged...)
}
