package email

import (
	"context"
	"log/slog"
)

// LogSender records emails in the log instead of delivering them. Used in
// development and in environments without Postmark credentials.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email suppressed (log sender)",
		slog.String("to", params.To),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
		slog.Int("body_bytes", len(params.BodyHTML)),
	)
	return nil
}
