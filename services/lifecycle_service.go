package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"micat-content-api/models"
	"micat-content-api/store"
)

// Typed lifecycle errors so callers can tell "nothing happened because X"
// from success. The prototype this replaces degraded silently instead.
var (
	ErrNoActor            = errors.New("no authenticated actor")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidTransition  = errors.New("submission is not awaiting review")
	ErrNoAffiliation      = errors.New("acting officer has no MAC affiliation")
)

// SubmissionInput is the upload payload captured from an officer. The file
// is a name plus a size placeholder; no bytes are transmitted or stored.
type SubmissionInput struct {
	Title        string
	ContentType  models.ContentType
	Description  string
	Tags         []string
	ContentDate  string
	FileName     string
	FileSize     string
	Confidential bool
}

const defaultFileSize = "2.4 MB"

// Default decision comments. Deny and return always record a comment;
// approve records one only when the reviewer supplies text.
const (
	DefaultDenyComment   = "Submission denied"
	DefaultReturnComment = "Returned for edits"
)

// Submit creates a new pending submission owned by the acting officer's MAC,
// writes the audit entry and notifies active reviewers.
func Submit(s *store.Store, actor models.User, in SubmissionInput) (models.Submission, error) {
	if actor.ID == "" {
		return models.Submission{}, ErrNoActor
	}
	if actor.MACID == nil || *actor.MACID == "" || actor.MACName == nil {
		return models.Submission{}, ErrNoAffiliation
	}

	now := time.Now()
	fileSize := strings.TrimSpace(in.FileSize)
	if fileSize == "" {
		fileSize = defaultFileSize
	}
	priority := models.PriorityMedium

	sub := models.Submission{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		ContentType:  in.ContentType,
		Description:  strings.TrimSpace(in.Description),
		Tags:         in.Tags,
		ContentDate:  in.ContentDate,
		FileName:     in.FileName,
		FileSize:     fileSize,
		Confidential: in.Confidential,
		Status:       models.StatusPending,
		MACID:        *actor.MACID,
		MACName:      *actor.MACName,
		SubmittedBy:  actor.Name,
		SubmittedAt:  now,
		Comments:     []models.Comment{},
		Priority:     priority,
	}

	err := s.Update(func(st *store.State) error {
		st.Submissions = append([]models.Submission{sub}, st.Submissions...)
		appendActivity(st, sub.ID, actor, models.ActionSubmitted, "New submission created", now)
		notifyReviewers(st, sub, now)
		return nil
	})
	if err != nil {
		return models.Submission{}, err
	}
	return sub, nil
}

// StartReview moves a pending submission to under_review. The reviewer fields
// stay unset; they are stamped only by a final decision.
func StartReview(s *store.Store, actor models.User, submissionID string) (models.Submission, error) {
	if actor.ID == "" {
		return models.Submission{}, ErrNoActor
	}

	var updated models.Submission
	now := time.Now()
	err := s.Update(func(st *store.State) error {
		i := findSubmission(st.Submissions, submissionID)
		if i < 0 {
			return ErrSubmissionNotFound
		}
		if st.Submissions[i].Status != models.StatusPending {
			return ErrInvalidTransition
		}
		st.Submissions[i].Status = models.StatusUnderReview
		appendActivity(st, submissionID, actor, models.ActionStartReview, "Submission moved to under review", now)
		updated = st.Submissions[i].Clone()
		return nil
	})
	if err != nil {
		return models.Submission{}, err
	}
	return updated, nil
}

// Approve marks a reviewable submission approved. A status_change comment is
// appended only when the reviewer supplied one.
func Approve(s *store.Store, actor models.User, submissionID, comment string) (models.Submission, error) {
	return decide(s, actor, submissionID, decision{
		target:        models.StatusApproved,
		action:        models.ActionApproved,
		comment:       comment,
		alwaysComment: false,
		detail:        "Submission approved for publication",
		notifyTitle:   "Submission Approved",
		notifyType:    models.NotifySuccess,
	})
}

// Deny marks a reviewable submission denied. A comment is always appended,
// falling back to the default denial text.
func Deny(s *store.Store, actor models.User, submissionID, comment string) (models.Submission, error) {
	text := strings.TrimSpace(comment)
	if text == "" {
		text = DefaultDenyComment
	}
	return decide(s, actor, submissionID, decision{
		target:        models.StatusDenied,
		action:        models.ActionDenied,
		comment:       text,
		alwaysComment: true,
		detail:        text,
		notifyTitle:   "Submission Denied",
		notifyType:    models.NotifyError,
	})
}

// ReturnForEdits sends a reviewable submission back to its MAC. A comment is
// always appended, falling back to the default return text.
func ReturnForEdits(s *store.Store, actor models.User, submissionID, comment string) (models.Submission, error) {
	text := strings.TrimSpace(comment)
	if text == "" {
		text = DefaultReturnComment
	}
	detail := strings.TrimSpace(comment)
	if detail == "" {
		detail = "Submission returned for revisions"
	}
	return decide(s, actor, submissionID, decision{
		target:        models.StatusReturned,
		action:        models.ActionReturned,
		comment:       text,
		alwaysComment: true,
		detail:        detail,
		notifyTitle:   "Submission Returned",
		notifyType:    models.NotifyWarning,
	})
}

type decision struct {
	target        models.SubmissionStatus
	action        string
	comment       string
	alwaysComment bool
	detail        string
	notifyTitle   string
	notifyType    models.NotificationType
}

func decide(s *store.Store, actor models.User, submissionID string, d decision) (models.Submission, error) {
	if actor.ID == "" {
		return models.Submission{}, ErrNoActor
	}

	var updated models.Submission
	now := time.Now()
	err := s.Update(func(st *store.State) error {
		i := findSubmission(st.Submissions, submissionID)
		if i < 0 {
			return ErrSubmissionNotFound
		}
		sub := &st.Submissions[i]
		if !sub.Status.Reviewable() {
			return ErrInvalidTransition
		}

		sub.Status = d.target
		name := actor.Name
		sub.ReviewedBy = &name
		at := now
		sub.ReviewedAt = &at

		text := strings.TrimSpace(d.comment)
		if text != "" || d.alwaysComment {
			sub.Comments = append(sub.Comments, models.Comment{
				ID:        uuid.NewString(),
				UserID:    actor.ID,
				UserName:  actor.Name,
				Text:      d.comment,
				Kind:      models.CommentStatusChange,
				CreatedAt: now,
			})
		}

		appendActivity(st, submissionID, actor, d.action, d.detail, now)
		notifyMACOfficers(st, *sub, d.notifyTitle, fmt.Sprintf("%s: %s", d.notifyTitle, sub.Title), d.notifyType, now)
		updated = sub.Clone()
		return nil
	})
	if err != nil {
		return models.Submission{}, err
	}

	sendDecisionEmail(s, updated, d.notifyTitle, d.comment)
	return updated, nil
}

func findSubmission(subs []models.Submission, id string) int {
	for i := range subs {
		if subs[i].ID == id {
			return i
		}
	}
	return -1
}

// appendActivity prepends an audit entry; the log is newest first and
// append-only.
func appendActivity(st *store.State, submissionID string, actor models.User, action, details string, now time.Time) {
	entry := models.ActivityLog{
		ID:           uuid.NewString(),
		SubmissionID: submissionID,
		UserID:       actor.ID,
		UserName:     actor.Name,
		Action:       action,
		Details:      details,
		CreatedAt:    now,
	}
	st.ActivityLogs = append([]models.ActivityLog{entry}, st.ActivityLogs...)
}
