package service

import (
	"context"

	"github.com/valiantdoor/backend/internal/model"
)

// RequestService defines the business logic for quote requests.
//
// Submit never fails: persistence degrades silently by the Record Store
// contract, and notification outcomes are recorded on the stored record
// rather than surfaced.
type RequestService interface {
	// Submit stores a new quote request and attempts the operator
	// notification. The req.ID, timestamp and emailStatus are populated
	// by the implementation.
	Submit(ctx context.Context, req *model.QuoteRequest)

	// List returns every stored quote request in insertion order.
	List(ctx context.Context) []model.QuoteRequest
}
