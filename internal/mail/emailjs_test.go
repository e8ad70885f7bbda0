package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Compile-time interface check for EmailJS
var _ Sender = (*EmailJS)(nil)

type captured struct {
	method      string
	path        string
	contentType string
	body        sendRequest
}

func newTestServer(t *testing.T, status int, respBody string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got.body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSend_PostsTemplateRequest(t *testing.T) {
	var got captured
	srv := newTestServer(t, http.StatusOK, "OK", &got)

	client := NewEmailJS(EmailJSConfig{
		Endpoint:   srv.URL + "/",
		ServiceID:  "service_abc",
		PublicKey:  "public-key",
		PrivateKey: "private-key",
		Timeout:    time.Second,
	})

	params := map[string]string{"to_name": "Ada", "budget": "Not specified"}
	if err := client.Send(context.Background(), "template_confirm", params); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got.method != http.MethodPost {
		t.Errorf("method = %s, want POST", got.method)
	}
	if got.path != "/api/v1.0/email/send" {
		t.Errorf("path = %s, want /api/v1.0/email/send", got.path)
	}
	if got.contentType != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", got.contentType)
	}
	if got.body.ServiceID != "service_abc" || got.body.TemplateID != "template_confirm" {
		t.Errorf("ids = %s/%s, want service_abc/template_confirm", got.body.ServiceID, got.body.TemplateID)
	}
	if got.body.UserID != "public-key" || got.body.AccessToken != "private-key" {
		t.Errorf("keys = %s/%s, want public-key/private-key", got.body.UserID, got.body.AccessToken)
	}
	if got.body.TemplateParams["to_name"] != "Ada" || got.body.TemplateParams["budget"] != "Not specified" {
		t.Errorf("template_params = %v", got.body.TemplateParams)
	}
}

func TestSend_NonSuccessReturnsSendError(t *testing.T) {
	var got captured
	srv := newTestServer(t, http.StatusBadRequest, "The template ID is invalid\n", &got)
	client := NewEmailJS(EmailJSConfig{Endpoint: srv.URL, ServiceID: "s", PublicKey: "k"})

	err := client.Send(context.Background(), "bad", nil)
	if err == nil {
		t.Fatal("Send() error = nil, want SendError")
	}

	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("Send() error type = %T, want *SendError", err)
	}
	if sendErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", sendErr.Status)
	}
	if sendErr.Text != "The template ID is invalid" {
		t.Errorf("Text = %q, want trimmed body", sendErr.Text)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("Error() = %q, want status code", err.Error())
	}
}

func TestSend_OmitsEmptyAccessToken(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
	}))
	defer srv.Close()

	client := NewEmailJS(EmailJSConfig{Endpoint: srv.URL, ServiceID: "s", PublicKey: "k"})
	if err := client.Send(context.Background(), "t", map[string]string{}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, ok := raw["accessToken"]; ok {
		t.Error("accessToken present with empty private key")
	}
}

// stubDoer fails every request with a fixed error.
type stubDoer struct {
	err   error
	calls int
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.calls++
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	return nil, s.err
}

func TestSend_TransportErrorIsWrapped(t *testing.T) {
	transportErr := errors.New("connection refused")
	doer := &stubDoer{err: transportErr}
	client := &EmailJS{client: doer, endpoint: DefaultEndpoint}

	err := client.Send(context.Background(), "t", nil)
	if !errors.Is(err, transportErr) {
		t.Errorf("Send() error = %v, want wrapped transport error", err)
	}
	if doer.calls != 1 {
		t.Errorf("calls = %d, want exactly 1 (no retries)", doer.calls)
	}
}

func TestSend_RespectsContextCancellation(t *testing.T) {
	client := &EmailJS{client: &stubDoer{}, endpoint: DefaultEndpoint}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Send(ctx, "t", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Send() error = %v, want context.Canceled", err)
	}
}

func TestNewEmailJS_DefaultEndpoint(t *testing.T) {
	client := NewEmailJS(EmailJSConfig{})
	if client.endpoint != DefaultEndpoint {
		t.Errorf("endpoint = %q, want %q", client.endpoint, DefaultEndpoint)
	}
}
