package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Compile-time interface check
var _ Sender = (*EmailJS)(nil)

// DefaultEndpoint is the EmailJS REST API base URL.
const DefaultEndpoint = "https://api.emailjs.com"

const sendPath = "/api/v1.0/email/send"

// maxErrorBody caps how much of an error response is kept as SendError.Text.
const maxErrorBody = 1024

// SendError is returned when the email service rejects a request.
type SendError struct {
	Status int
	Text   string
}

func (e *SendError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("email service returned status %d", e.Status)
	}
	return fmt.Sprintf("email service returned status %d: %s", e.Status, e.Text)
}

// HTTPDoer is the subset of *http.Client used by EmailJS.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// EmailJSConfig identifies the EmailJS account and service.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// EmailJS sends templated messages through the EmailJS REST API.
type EmailJS struct {
	client     HTTPDoer
	endpoint   string
	serviceID  string
	publicKey  string
	privateKey string
}

// NewEmailJS creates a client. An empty endpoint selects DefaultEndpoint.
func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &EmailJS{
		client:     &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
		serviceID:  cfg.ServiceID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts one message. It makes a single attempt; any non-2xx response
// becomes a *SendError.
func (e *EmailJS) Send(ctx context.Context, templateID string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      e.serviceID,
		TemplateID:     templateID,
		UserID:         e.publicKey,
		AccessToken:    e.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("encoding email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &SendError{Status: resp.StatusCode, Text: strings.TrimSpace(string(text))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
