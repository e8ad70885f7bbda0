package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type sentMessage struct {
	template string
	params   map[string]string
}

// mockSender records messages and fails on the configured call number.
type mockSender struct {
	mu     sync.Mutex
	sent   []sentMessage
	failOn int
	err    error
}

func (m *mockSender) Send(_ context.Context, templateID string, params map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn > 0 && len(m.sent)+1 == m.failOn {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{template: templateID, params: params})
	return nil
}

func testRelayConfig() RelayConfig {
	return RelayConfig{
		ConfirmationTemplate: "tpl_confirm",
		NotificationTemplate: "tpl_notify",
		OwnerName:            "Harshit Singhal",
		OwnerFirstName:       "Harshit",
		OwnerEmail:           "owner@example.com",
	}
}

func TestRelay_Submit_SendsBothInOrder(t *testing.T) {
	sender := &mockSender{}
	r := NewRelay(sender, testRelayConfig())

	d := validDraft()
	d.Budget = ""
	if err := r.Submit(context.Background(), d); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(sender.sent))
	}

	confirm := sender.sent[0]
	if confirm.template != "tpl_confirm" {
		t.Errorf("first template = %q, want tpl_confirm", confirm.template)
	}
	wantConfirm := map[string]string{
		"to_name":      "Ada Lovelace",
		"to_email":     "ada@example.com",
		"from_name":    "Harshit Singhal",
		"project_type": "new-app",
		"budget":       NotSpecified,
		"message":      "I need an app.",
		"reply_to":     "owner@example.com",
	}
	assertParams(t, confirm.params, wantConfirm)

	notify := sender.sent[1]
	if notify.template != "tpl_notify" {
		t.Errorf("second template = %q, want tpl_notify", notify.template)
	}
	wantNotify := map[string]string{
		"to_name":      "Harshit",
		"to_email":     "owner@example.com",
		"from_name":    "Ada Lovelace",
		"from_email":   "ada@example.com",
		"project_type": "new-app",
		"budget":       NotSpecified,
		"message":      "I need an app.",
		"reply_to":     "ada@example.com",
	}
	assertParams(t, notify.params, wantNotify)
}

func TestRelay_Submit_ConfirmationFailureSkipsNotification(t *testing.T) {
	upstream := errors.New("quota exceeded")
	sender := &mockSender{failOn: 1, err: upstream}
	r := NewRelay(sender, testRelayConfig())

	err := r.Submit(context.Background(), validDraft())
	if !errors.Is(err, upstream) {
		t.Fatalf("Submit() error = %v, want wrapped upstream error", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d messages after confirmation failure, want 0", len(sender.sent))
	}
}

func TestRelay_Submit_NotificationFailure(t *testing.T) {
	upstream := errors.New("bad template")
	sender := &mockSender{failOn: 2, err: upstream}
	r := NewRelay(sender, testRelayConfig())

	err := r.Submit(context.Background(), validDraft())
	if !errors.Is(err, upstream) {
		t.Fatalf("Submit() error = %v, want wrapped upstream error", err)
	}
	if len(sender.sent) != 1 {
		t.Errorf("sent %d messages, want 1 (confirmation only)", len(sender.sent))
	}
}

func TestNewRelay_DefaultsFirstName(t *testing.T) {
	cfg := testRelayConfig()
	cfg.OwnerFirstName = ""
	r := NewRelay(&mockSender{}, cfg)

	if got := r.NotificationParams(validDraft())["to_name"]; got != "Harshit Singhal" {
		t.Errorf("to_name = %q, want owner name fallback", got)
	}
}

func assertParams(t *testing.T, got, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("params has %d keys, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("params[%q] = %q, want %q", k, got[k], v)
		}
	}
}
