package model

// Moderation status values for a review.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review is a customer review. New reviews start in "pending" and become
// publicly visible only once moderated to "approved".
type Review struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"` // pending | approved | rejected
}

// RecordID returns the unique identifier of the record.
func (r Review) RecordID() string { return r.ID }

// ValidReviewStatus reports whether s is a recognized moderation status.
func ValidReviewStatus(s string) bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}
