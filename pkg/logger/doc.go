// Package logger builds the application's slog.Logger: JSON output for
// log aggregation in production, human-readable text in development, with
// a minimum-level filter and credential redaction applied to every record.
//
// Context sanitization is a fixed rule set, not configurable per call:
// any "password" attribute is dropped entirely and any "token" attribute
// value is replaced with a redaction marker before the record reaches the
// sink. Domain helpers (SecurityEvent, Performance, ServiceCall,
// ServiceError) funnel through the same logger so every entry carries
// consistent tags.
package logger
