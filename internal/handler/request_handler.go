package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valiantdoor/backend/internal/model"
	"github.com/valiantdoor/backend/internal/service"
	"github.com/valiantdoor/backend/internal/validate"
)

const requestSubmittedMessage = "Quote request submitted successfully! We will contact you soon."

// RequestHandler handles quote request submission and the admin listing.
type RequestHandler struct {
	requestService service.RequestService
	adminKey       string
}

// NewRequestHandler creates a RequestHandler with the given service.
func NewRequestHandler(requestService service.RequestService, adminKey string) *RequestHandler {
	return &RequestHandler{requestService: requestService, adminKey: adminKey}
}

// submitRequestBody is the expected JSON body for POST /api/requests.
type submitRequestBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Service  string `json:"service"`
	Message  string `json:"message"`
	Honeypot any    `json:"honeypot"`
}

// Submit handles POST /api/requests.
// name, email and phone are required; address, service and message are
// optional. All free-text fields are HTML-escaped before storage.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	// Honeypot hit: respond exactly like a real success so bots cannot
	// tell, but store nothing and log nothing.
	if validate.Truthy(body.Honeypot) {
		writeMessage(w, http.StatusOK, true, requestSubmittedMessage)
		return
	}

	if body.Name == "" || body.Email == "" || body.Phone == "" {
		writeMessage(w, http.StatusBadRequest, false, "Name, email, and phone are required fields.")
		return
	}

	if !validate.Email(body.Email) {
		writeMessage(w, http.StatusBadRequest, false, "Invalid email address.")
		return
	}

	req := &model.QuoteRequest{
		Name:    validate.Escape(body.Name),
		Email:   validate.Escape(body.Email),
		Phone:   validate.Escape(body.Phone),
		Address: validate.Escape(body.Address),
		Service: validate.Escape(body.Service),
		Message: validate.Escape(body.Message),
	}
	h.requestService.Submit(r.Context(), req)

	writeMessage(w, http.StatusOK, true, requestSubmittedMessage)
}

// requestListResponse is the JSON response for GET /api/requests.
type requestListResponse struct {
	Success  bool                 `json:"success"`
	Requests []model.QuoteRequest `json:"requests"`
	Count    int                  `json:"count"`
}

// List handles GET /api/requests. Gated on X-Admin-Key when ADMIN_KEY is
// configured; every stored field is exposed verbatim to the operator.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	if !adminAllowed(r, h.adminKey) {
		writeMessage(w, http.StatusForbidden, false, "Unauthorized")
		return
	}

	requests := h.requestService.List(r.Context())
	if requests == nil {
		requests = []model.QuoteRequest{}
	}
	writeJSON(w, http.StatusOK, requestListResponse{
		Success:  true,
		Requests: requests,
		Count:    len(requests),
	})
}
