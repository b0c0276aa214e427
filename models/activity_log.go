package models

import "time"

// Lifecycle action labels recorded in the activity log.
const (
	ActionSubmitted   = "Submitted"
	ActionStartReview = "Review Started"
	ActionApproved    = "Approved"
	ActionDenied      = "Denied"
	ActionReturned    = "Returned for Edits"
)

// ActivityLog is one entry in the append-only audit trail. Entries are
// prepended (newest first) and never mutated or removed within a session.
type ActivityLog struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Action       string    `json:"action"`
	Details      string    `json:"details"`
	CreatedAt    time.Time `json:"timestamp"`
}
