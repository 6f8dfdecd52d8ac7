package service

import (
	"context"

	"github.com/valiantdoor/backend/internal/model"
)

// ReviewService defines the business logic for customer reviews.
type ReviewService interface {
	// Submit stores a new review in "pending" status. The rev.ID and
	// timestamp are populated by the implementation.
	Submit(ctx context.Context, rev *model.Review)

	// ListApproved returns only reviews moderated to "approved", in
	// insertion order.
	ListApproved(ctx context.Context) []model.Review

	// SetStatus moderates a review. Returns ErrInvalidStatus for an
	// unknown status and ErrNotFound if the review no longer exists.
	SetStatus(ctx context.Context, id, status string) error
}
