package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/valiantdoor/backend/internal/mailer"
)

// TestEmailHandler triggers a fixed test notification, gated on a shared
// secret so only the operator can exercise the transport in production.
type TestEmailHandler struct {
	mailer mailer.Mailer
	key    string
}

// NewTestEmailHandler creates a TestEmailHandler.
func NewTestEmailHandler(m mailer.Mailer, key string) *TestEmailHandler {
	return &TestEmailHandler{mailer: m, key: key}
}

type testEmailBody struct {
	Key string `json:"key"`
}

// Send handles POST /api/test-email.
func (h *TestEmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body testEmailBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	// An unset key keeps the endpoint locked; no detail leaks either way.
	if h.key == "" || body.Key != h.key {
		writeMessage(w, http.StatusForbidden, false, "Unauthorized")
		return
	}

	if !h.mailer.Configured() {
		writeMessage(w, http.StatusOK, false, "Email not configured")
		return
	}

	if err := h.mailer.Send(r.Context(), mailer.TestSubject, mailer.TestBody); err != nil {
		slog.ErrorContext(r.Context(), "test email send failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, false, "Failed to send test email")
		return
	}

	writeMessage(w, http.StatusOK, true, "Test email sent successfully")
}
