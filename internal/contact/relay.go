package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyperengineering/folio/internal/mail"
)

// RelayConfig names the templates and the site owner's identity.
type RelayConfig struct {
	ConfirmationTemplate string
	NotificationTemplate string
	OwnerName            string
	OwnerFirstName       string
	OwnerEmail           string
}

// Submitter sends a validated draft.
type Submitter interface {
	Submit(ctx context.Context, d Draft) error
}

// Relay forwards a draft as two messages: a confirmation to the submitter,
// then a notification to the owner.
type Relay struct {
	sender mail.Sender
	cfg    RelayConfig
}

var _ Submitter = (*Relay)(nil)

// NewRelay creates a Relay sending through sender.
func NewRelay(sender mail.Sender, cfg RelayConfig) *Relay {
	if cfg.OwnerFirstName == "" {
		cfg.OwnerFirstName = cfg.OwnerName
	}
	return &Relay{sender: sender, cfg: cfg}
}

// ConfirmationParams are the placeholders for the message to the submitter.
func (r *Relay) ConfirmationParams(d Draft) map[string]string {
	return map[string]string{
		"to_name":      d.Name,
		"to_email":     d.Email,
		"from_name":    r.cfg.OwnerName,
		"project_type": d.ProjectType,
		"budget":       d.BudgetOrDefault(),
		"message":      d.Message,
		"reply_to":     r.cfg.OwnerEmail,
	}
}

// NotificationParams are the placeholders for the message to the owner.
func (r *Relay) NotificationParams(d Draft) map[string]string {
	return map[string]string{
		"to_name":      r.cfg.OwnerFirstName,
		"to_email":     r.cfg.OwnerEmail,
		"from_name":    d.Name,
		"from_email":   d.Email,
		"project_type": d.ProjectType,
		"budget":       d.BudgetOrDefault(),
		"message":      d.Message,
		"reply_to":     d.Email,
	}
}

// Submit sends the confirmation and, only if that succeeds, the
// notification. Sends are sequential and never retried.
func (r *Relay) Submit(ctx context.Context, d Draft) error {
	slog.DebugContext(ctx, "sending confirmation email", "component", "contact", "to_email", d.Email)
	if err := r.sender.Send(ctx, r.cfg.ConfirmationTemplate, r.ConfirmationParams(d)); err != nil {
		return fmt.Errorf("sending confirmation: %w", err)
	}

	slog.DebugContext(ctx, "sending notification email", "component", "contact", "to_email", r.cfg.OwnerEmail)
	if err := r.sender.Send(ctx, r.cfg.NotificationTemplate, r.NotificationParams(d)); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}
