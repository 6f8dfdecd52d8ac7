package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubMailer struct {
	configured bool
	sendFunc   func(ctx context.Context, subject, htmlBody string) error
}

func (m *stubMailer) Send(ctx context.Context, subject, htmlBody string) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, subject, htmlBody)
	}
	return nil
}

func (m *stubMailer) Configured() bool { return m.configured }

func postTestEmail(t *testing.T, h *TestEmailHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/test-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Send(rec, req)
	return rec
}

func TestTestEmailHandler_WrongKey(t *testing.T) {
	h := NewTestEmailHandler(&stubMailer{configured: true}, "secret")

	rec := postTestEmail(t, h, `{"key":"nope"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestTestEmailHandler_NoKeyConfigured_AlwaysForbidden(t *testing.T) {
	h := NewTestEmailHandler(&stubMailer{configured: true}, "")

	rec := postTestEmail(t, h, `{"key":""}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 when no key is configured, got %d", rec.Code)
	}
}

func TestTestEmailHandler_NotConfigured(t *testing.T) {
	h := NewTestEmailHandler(&stubMailer{configured: false}, "secret")

	rec := postTestEmail(t, h, `{"key":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp apiResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Message != "Email not configured" {
		t.Errorf("expected message 'Email not configured', got %q", resp.Message)
	}
}

func TestTestEmailHandler_SendSuccess(t *testing.T) {
	sent := false
	m := &stubMailer{
		configured: true,
		sendFunc: func(ctx context.Context, subject, htmlBody string) error {
			sent = true
			return nil
		},
	}
	h := NewTestEmailHandler(m, "secret")

	rec := postTestEmail(t, h, `{"key":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if !sent {
		t.Error("expected Send to be called")
	}
	var resp apiResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Success {
		t.Error("expected success=true")
	}
}

func TestTestEmailHandler_SendFailure(t *testing.T) {
	m := &stubMailer{
		configured: true,
		sendFunc: func(ctx context.Context, subject, htmlBody string) error {
			return errors.New("smtp timeout")
		},
	}
	h := NewTestEmailHandler(m, "secret")

	rec := postTestEmail(t, h, `{"key":"secret"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on transport failure, got %d", rec.Code)
	}
}
