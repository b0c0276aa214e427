package models

import "time"

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

type Notification struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"user_id"`
	Title               string           `json:"title"`
	Message             string           `json:"message"`
	Type                NotificationType `json:"type"`
	RelatedSubmissionID *string          `json:"related_submission_id,omitempty"`
	IsRead              bool             `json:"is_read"`
	CreatedAt           time.Time        `json:"created_at"`
}
