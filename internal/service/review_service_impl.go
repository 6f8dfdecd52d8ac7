package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/valiantdoor/backend/internal/model"
)

// reviewStore is the slice of the Record Store this service needs.
// *store.Collection[model.Review] satisfies it.
type reviewStore interface {
	Load(ctx context.Context) []model.Review
	Append(ctx context.Context, rec model.Review)
	Update(ctx context.Context, id string, fn func(*model.Review)) bool
}

// reviewServiceImpl is the production implementation of ReviewService.
type reviewServiceImpl struct {
	store reviewStore
}

// NewReviewService creates a ReviewService backed by the given collection.
func NewReviewService(store reviewStore) ReviewService {
	return &reviewServiceImpl{store: store}
}

// Submit persists the review with a fresh ID in "pending" status.
func (s *reviewServiceImpl) Submit(ctx context.Context, rev *model.Review) {
	rev.ID = uuid.NewString()
	rev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	rev.Status = model.ReviewPending

	s.store.Append(ctx, *rev)

	slog.InfoContext(ctx, "review submitted", "review_id", rev.ID, "rating", rev.Rating)
}

// ListApproved returns only approved reviews; pending and rejected entries
// stay invisible externally.
func (s *reviewServiceImpl) ListApproved(ctx context.Context) []model.Review {
	all := s.store.Load(ctx)
	approved := make([]model.Review, 0, len(all))
	for _, r := range all {
		if r.Status == model.ReviewApproved {
			approved = append(approved, r)
		}
	}
	return approved
}

// SetStatus moderates a review by ID.
func (s *reviewServiceImpl) SetStatus(ctx context.Context, id, status string) error {
	if !model.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}
	if !s.store.Update(ctx, id, func(r *model.Review) { r.Status = status }) {
		return ErrNotFound
	}
	slog.InfoContext(ctx, "review moderated", "review_id", id, "status", status)
	return nil
}
