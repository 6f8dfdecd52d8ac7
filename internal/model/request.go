package model

// Email delivery status values for a quote request.
const (
	EmailPending = "pending"
	EmailSent    = "sent"
	EmailFailed  = "failed"
	EmailSkipped = "skipped"
)

// QuoteRequest is a quote request submitted through the website form.
// Free-text fields are HTML-escaped before the record is constructed.
type QuoteRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Service     string `json:"service"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	EmailStatus string `json:"emailStatus"` // pending | sent | failed | skipped
}

// RecordID returns the unique identifier of the record.
func (q QuoteRequest) RecordID() string { return q.ID }
