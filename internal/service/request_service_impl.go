package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/valiantdoor/backend/internal/mailer"
	"github.com/valiantdoor/backend/internal/model"
)

// requestStore is the slice of the Record Store this service needs.
// *store.Collection[model.QuoteRequest] satisfies it.
type requestStore interface {
	Load(ctx context.Context) []model.QuoteRequest
	Append(ctx context.Context, rec model.QuoteRequest)
	Update(ctx context.Context, id string, fn func(*model.QuoteRequest)) bool
}

// requestServiceImpl is the production implementation of RequestService.
type requestServiceImpl struct {
	store  requestStore
	mailer mailer.Mailer
}

// NewRequestService creates a RequestService backed by the given
// collection and mail transport.
func NewRequestService(store requestStore, m mailer.Mailer) RequestService {
	return &requestServiceImpl{store: store, mailer: m}
}

// Submit persists the request with a fresh ID and pending email status,
// attempts the operator notification, then patches the stored record with
// the delivery outcome. The patch is a read-modify-write by ID; if the
// record has already aged out of the collection, the outcome is dropped.
func (s *requestServiceImpl) Submit(ctx context.Context, req *model.QuoteRequest) {
	req.ID = uuid.NewString()
	req.Timestamp = time.Now().UTC().Format(time.RFC3339)
	req.EmailStatus = model.EmailPending

	s.store.Append(ctx, *req)

	status := model.EmailSkipped
	if s.mailer.Configured() {
		err := s.mailer.Send(ctx, mailer.RequestSubject(*req), mailer.RequestBody(*req))
		if err != nil {
			status = model.EmailFailed
			slog.ErrorContext(ctx, "notification send failed", "request_id", req.ID, "err", err)
		} else {
			status = model.EmailSent
		}
	}

	req.EmailStatus = status
	s.store.Update(ctx, req.ID, func(r *model.QuoteRequest) {
		r.EmailStatus = status
	})

	slog.InfoContext(ctx, "quote request submitted",
		"request_id", req.ID,
		"email_status", status,
	)
}

// List returns every stored quote request.
func (s *requestServiceImpl) List(ctx context.Context) []model.QuoteRequest {
	return s.store.Load(ctx)
}
