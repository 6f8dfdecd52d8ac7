package handler

import (
	"net/http"
	"time"
)

// HealthHandler reports process liveness plus which storage backend and
// mail transport the process came up with.
type HealthHandler struct {
	env            string
	storage        string
	mailConfigured bool
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(env, storage string, mailConfigured bool) *HealthHandler {
	return &HealthHandler{env: env, storage: storage, mailConfigured: mailConfigured}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Env       string `json:"env"`
	Storage   string `json:"storage"`
	Email     string `json:"email"`
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	email := "not configured"
	if h.mailConfigured {
		email = "configured"
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Env:       h.env,
		Storage:   h.storage,
		Email:     email,
	})
}
