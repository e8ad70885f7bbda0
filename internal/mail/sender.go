package mail

import (
	"context"
	"log/slog"
)

// Sender delivers one templated message through a hosted email service.
type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// LogSender logs messages instead of sending them. Used in dev mode when no
// email service credentials are configured.
type LogSender struct{}

// Send logs the template and recipient and always succeeds.
func (LogSender) Send(ctx context.Context, templateID string, params map[string]string) error {
	slog.InfoContext(ctx, "email suppressed",
		"component", "mail",
		"template_id", templateID,
		"to_email", params["to_email"],
	)
	return nil
}
