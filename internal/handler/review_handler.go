package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valiantdoor/backend/internal/model"
	"github.com/valiantdoor/backend/internal/service"
	"github.com/valiantdoor/backend/internal/validate"
)

const reviewSubmittedMessage = "Thank you for your review! It will be published after approval."

// ReviewHandler handles review submission, the public approved-only
// listing, and admin moderation.
type ReviewHandler struct {
	reviewService service.ReviewService
	adminKey      string
}

// NewReviewHandler creates a ReviewHandler with the given service.
func NewReviewHandler(reviewService service.ReviewService, adminKey string) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, adminKey: adminKey}
}

// submitReviewBody is the expected JSON body for POST /api/reviews.
// Rating is decoded loosely because the form may post it as a number or a
// numeric string.
type submitReviewBody struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Rating   any    `json:"rating"`
	Message  string `json:"message"`
	Honeypot any    `json:"honeypot"`
}

// Submit handles POST /api/reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitReviewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	if validate.Truthy(body.Honeypot) {
		writeMessage(w, http.StatusOK, true, reviewSubmittedMessage)
		return
	}

	if body.Name == "" || body.Message == "" || body.Rating == nil {
		writeMessage(w, http.StatusBadRequest, false, "Name, rating, and message are required.")
		return
	}

	rating, err := validate.Rating(body.Rating)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Rating must be between 1 and 5.")
		return
	}

	rev := &model.Review{
		Name:    validate.Escape(body.Name),
		City:    validate.Escape(body.City),
		Rating:  rating,
		Message: validate.Escape(body.Message),
	}
	h.reviewService.Submit(r.Context(), rev)

	writeMessage(w, http.StatusOK, true, reviewSubmittedMessage)
}

// reviewListResponse is the JSON response for GET /api/reviews.
type reviewListResponse struct {
	Success bool           `json:"success"`
	Reviews []model.Review `json:"reviews"`
	Count   int            `json:"count"`
}

// List handles GET /api/reviews. Only approved reviews are ever exposed.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews := h.reviewService.ListApproved(r.Context())
	if reviews == nil {
		reviews = []model.Review{}
	}
	writeJSON(w, http.StatusOK, reviewListResponse{
		Success: true,
		Reviews: reviews,
		Count:   len(reviews),
	})
}

// updateStatusBody is the expected JSON body for PATCH /api/reviews/{id}/status.
type updateStatusBody struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/reviews/{id}/status (admin moderation).
func (h *ReviewHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !adminAllowed(r, h.adminKey) {
		writeMessage(w, http.StatusForbidden, false, "Unauthorized")
		return
	}

	var body updateStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	err := h.reviewService.SetStatus(r.Context(), r.PathValue("id"), body.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		writeMessage(w, http.StatusBadRequest, false, "Status must be pending, approved, or rejected.")
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, false, "Review not found.")
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, false, "Error updating review.")
	default:
		writeMessage(w, http.StatusOK, true, "Review updated.")
	}
}
