package models

import (
	"time"
)

// SubmissionStatus tracks a submission through the review lifecycle:
// pending -> under_review -> approved | returned | denied.
type SubmissionStatus string

const (
	StatusPending     SubmissionStatus = "pending"
	StatusUnderReview SubmissionStatus = "under_review"
	StatusApproved    SubmissionStatus = "approved"
	StatusReturned    SubmissionStatus = "returned"
	StatusDenied      SubmissionStatus = "denied"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusReturned, StatusDenied:
		return true
	}
	return false
}

// Reviewable reports whether a reviewer decision may be applied from this
// status. Terminal statuses and returned submissions are not reviewable.
func (s SubmissionStatus) Reviewable() bool {
	return s == StatusPending || s == StatusUnderReview
}

type ContentType string

const (
	ContentPressRelease ContentType = "press_release"
	ContentAnnouncement ContentType = "announcement"
	ContentSpeech       ContentType = "speech"
	ContentPhoto        ContentType = "photo"
	ContentVideo        ContentType = "video"
	ContentOther        ContentType = "other"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentPressRelease, ContentAnnouncement, ContentSpeech, ContentPhoto, ContentVideo, ContentOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// CommentKind distinguishes reviewer feedback recorded during a status change
// from free discussion and edit notes.
type CommentKind string

const (
	CommentPlain        CommentKind = "comment"
	CommentEdit         CommentKind = "edit"
	CommentStatusChange CommentKind = "status_change"
)

type Comment struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	UserName  string      `json:"user_name"`
	Text      string      `json:"text"`
	Kind      CommentKind `json:"type"`
	CreatedAt time.Time   `json:"timestamp"`
}

// Submission is one unit of communications content awaiting or having
// undergone MICAT review. The "file" is a captured name plus a size
// placeholder; no bytes are stored.
type Submission struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	ContentType  ContentType      `json:"content_type"`
	Description  string           `json:"description"`
	Tags         []string         `json:"tags"`
	ContentDate  string           `json:"date"`
	FileName     string           `json:"file_name"`
	FileSize     string           `json:"file_size"`
	Confidential bool             `json:"confidential"`
	Status       SubmissionStatus `json:"status"`
	MACID        string           `json:"mac_id"`
	MACName      string           `json:"mac_name"`
	SubmittedBy  string           `json:"submitted_by"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	ReviewedBy   *string          `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time       `json:"reviewed_at,omitempty"`
	Comments     []Comment        `json:"comments"`
	Priority     Priority         `json:"priority"`
}

// Clone returns a copy whose slices do not share backing arrays with the
// receiver, so store snapshots stay isolated from later mutations.
func (s Submission) Clone() Submission {
	out := s
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	if s.Comments != nil {
		out.Comments = append([]Comment(nil), s.Comments...)
	}
	return out
}
