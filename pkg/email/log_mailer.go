package email

import (
	"context"
	"log/slog"
)

// LogMailer records messages in the log instead of delivering them.
// It stands in for SMTP when no credentials are configured.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log.With("component", "contact_delivery")}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.InfoContext(ctx, "contact message logged, smtp not configured",
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"length", len(msg.Text),
	)
	return nil
}
