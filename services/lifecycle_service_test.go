package services

import (
	"errors"
	"testing"
	"time"

	"micat-content-api/models"
	"micat-content-api/store"
)

func strPtr(s string) *string { return &s }

func officer() models.User {
	return models.User{
		ID: "user-alice", Name: "Alice", Email: "alice@moh.gov.lr",
		Role: models.RoleMACOfficer, MACID: strPtr("MAC-1"), MACName: strPtr("Ministry of Health"),
		Active: true,
	}
}

func reviewer() models.User {
	return models.User{
		ID: "user-bob", Name: "Bob", Email: "bob@micat.gov.lr",
		Role: models.RoleMICATReviewer, Active: true,
	}
}

func newTestStore() *store.Store {
	return store.New(store.State{
		Users: []models.User{officer(), reviewer()},
		MACs: []models.MAC{
			{ID: "MAC-1", Name: "Ministry of Health", Acronym: "MOH", Category: "Ministry"},
		},
		Submissions: []models.Submission{
			{
				ID: "sub-pending", Title: "Pending Item", Status: models.StatusPending,
				MACID: "MAC-1", MACName: "Ministry of Health", SubmittedBy: "Alice",
				SubmittedAt: time.Now().Add(-time.Hour), Comments: []models.Comment{},
			},
			{
				ID: "sub-approved", Title: "Done Item", Status: models.StatusApproved,
				MACID: "MAC-1", MACName: "Ministry of Health", SubmittedBy: "Alice",
				SubmittedAt: time.Now().Add(-2 * time.Hour), Comments: []models.Comment{},
			},
		},
	})
}

func findByID(t *testing.T, s *store.Store, id string) models.Submission {
	t.Helper()
	snap := s.Snapshot()
	for _, sub := range snap.Submissions {
		if sub.ID == id {
			return sub
		}
	}
	t.Fatalf("submission %s not found", id)
	return models.Submission{}
}

func TestSubmitCreatesPendingSubmission(t *testing.T) {
	s := newTestStore()

	sub, err := Submit(s, officer(), SubmissionInput{
		Title:       "Flood Advisory",
		ContentType: models.ContentPressRelease,
		Description: "Advisory for low-lying areas",
		Tags:        []string{"advisory"},
		FileName:    "advisory.pdf",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if sub.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", sub.Status)
	}
	if sub.MACID != "MAC-1" || sub.MACName != "Ministry of Health" {
		t.Fatalf("submission not attributed to the officer's MAC: %s/%s", sub.MACID, sub.MACName)
	}
	if sub.SubmittedBy != "Alice" {
		t.Fatalf("expected submitter Alice, got %s", sub.SubmittedBy)
	}
	if sub.Priority != models.PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", sub.Priority)
	}
	if sub.FileSize != defaultFileSize {
		t.Fatalf("expected file size placeholder, got %s", sub.FileSize)
	}
	if sub.ID == "" {
		t.Fatalf("expected generated id")
	}

	snap := s.Snapshot()
	if len(snap.Submissions) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(snap.Submissions))
	}
	if snap.Submissions[0].ID != sub.ID {
		t.Fatalf("new submission must be prepended")
	}
	if snap.ActivityLogs[0].Action != models.ActionSubmitted {
		t.Fatalf("expected %s activity entry, got %s", models.ActionSubmitted, snap.ActivityLogs[0].Action)
	}

	// Active reviewers are notified about the new queue entry.
	notified := false
	for _, n := range snap.Notifications {
		if n.UserID == "user-bob" && n.RelatedSubmissionID != nil && *n.RelatedSubmissionID == sub.ID {
			notified = true
		}
	}
	if !notified {
		t.Fatalf("reviewer was not notified about the new submission")
	}
}

func TestSubmitWithoutAffiliationFails(t *testing.T) {
	s := newTestStore()
	actor := officer()
	actor.MACID = nil
	actor.MACName = nil

	if _, err := Submit(s, actor, SubmissionInput{Title: "X"}); !errors.Is(err, ErrNoAffiliation) {
		t.Fatalf("expected ErrNoAffiliation, got %v", err)
	}
	if len(s.Snapshot().Submissions) != 2 {
		t.Fatalf("failed submit must not grow the collection")
	}
}

func TestSubmitWithoutActorFails(t *testing.T) {
	s := newTestStore()
	if _, err := Submit(s, models.User{}, SubmissionInput{Title: "X"}); !errors.Is(err, ErrNoActor) {
		t.Fatalf("expected ErrNoActor, got %v", err)
	}
}

func TestApproveSetsReviewerAndAppendsSuppliedComment(t *testing.T) {
	s := newTestStore()
	logsBefore := len(s.Snapshot().ActivityLogs)

	sub, err := Approve(s, reviewer(), "sub-pending", "Looks good")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	if sub.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %s", sub.Status)
	}
	if sub.ReviewedBy == nil || *sub.ReviewedBy != "Bob" {
		t.Fatalf("reviewedBy not stamped with acting user")
	}
	if sub.ReviewedAt == nil {
		t.Fatalf("reviewedAt not stamped")
	}
	if len(sub.Comments) != 1 {
		t.Fatalf("expected exactly one comment, got %d", len(sub.Comments))
	}
	if sub.Comments[0].Text != "Looks good" || sub.Comments[0].Kind != models.CommentStatusChange {
		t.Fatalf("unexpected comment %+v", sub.Comments[0])
	}

	snap := s.Snapshot()
	if len(snap.ActivityLogs) != logsBefore+1 {
		t.Fatalf("expected exactly one new activity entry")
	}
	if snap.ActivityLogs[0].Action != models.ActionApproved {
		t.Fatalf("expected %s entry, got %s", models.ActionApproved, snap.ActivityLogs[0].Action)
	}
}

func TestApproveWithEmptyCommentAppendsNothing(t *testing.T) {
	s := newTestStore()

	sub, err := Approve(s, reviewer(), "sub-pending", "")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if len(sub.Comments) != 0 {
		t.Fatalf("approve with empty comment must not append one, got %d", len(sub.Comments))
	}
}

func TestDenyAlwaysAppendsComment(t *testing.T) {
	s := newTestStore()

	sub, err := Deny(s, reviewer(), "sub-pending", "")
	if err != nil {
		t.Fatalf("Deny returned error: %v", err)
	}
	if sub.Status != models.StatusDenied {
		t.Fatalf("expected denied, got %s", sub.Status)
	}
	if len(sub.Comments) != 1 {
		t.Fatalf("deny must always append a comment")
	}
	if sub.Comments[0].Text != DefaultDenyComment {
		t.Fatalf("expected default deny text, got %q", sub.Comments[0].Text)
	}

	entry := s.Snapshot().ActivityLogs[0]
	if entry.Action != models.ActionDenied {
		t.Fatalf("expected %s entry, got %s", models.ActionDenied, entry.Action)
	}
	if entry.Details != DefaultDenyComment {
		t.Fatalf("activity detail must equal the default deny text, got %q", entry.Details)
	}
}

func TestReturnForEditsDefaultsComment(t *testing.T) {
	s := newTestStore()

	sub, err := ReturnForEdits(s, reviewer(), "sub-pending", "")
	if err != nil {
		t.Fatalf("ReturnForEdits returned error: %v", err)
	}
	if sub.Status != models.StatusReturned {
		t.Fatalf("expected returned, got %s", sub.Status)
	}
	if len(sub.Comments) != 1 || sub.Comments[0].Text != DefaultReturnComment {
		t.Fatalf("expected default return comment, got %+v", sub.Comments)
	}
	if got := s.Snapshot().ActivityLogs[0].Action; got != models.ActionReturned {
		t.Fatalf("expected %s entry, got %s", models.ActionReturned, got)
	}
}

func TestDecisionFromTerminalStatusRejected(t *testing.T) {
	s := newTestStore()

	if _, err := Approve(s, reviewer(), "sub-approved", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := Deny(s, reviewer(), "sub-approved", "no"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// Nothing may change on a rejected transition.
	sub := findByID(t, s, "sub-approved")
	if sub.Status != models.StatusApproved || len(sub.Comments) != 0 {
		t.Fatalf("rejected transition mutated the submission: %+v", sub)
	}
}

func TestDecisionOnMissingSubmission(t *testing.T) {
	s := newTestStore()
	if _, err := Approve(s, reviewer(), "nope", ""); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestDecisionWithoutActor(t *testing.T) {
	s := newTestStore()
	if _, err := Deny(s, models.User{}, "sub-pending", ""); !errors.Is(err, ErrNoActor) {
		t.Fatalf("expected ErrNoActor, got %v", err)
	}
}

func TestStartReviewTransitions(t *testing.T) {
	s := newTestStore()

	sub, err := StartReview(s, reviewer(), "sub-pending")
	if err != nil {
		t.Fatalf("StartReview returned error: %v", err)
	}
	if sub.Status != models.StatusUnderReview {
		t.Fatalf("expected under_review, got %s", sub.Status)
	}
	if sub.ReviewedBy != nil || sub.ReviewedAt != nil {
		t.Fatalf("start review must not stamp reviewer fields")
	}

	// under_review is still reviewable; a second start is not.
	if _, err := StartReview(s, reviewer(), "sub-pending"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double start, got %v", err)
	}
	if _, err := Approve(s, reviewer(), "sub-pending", "ok"); err != nil {
		t.Fatalf("approve from under_review failed: %v", err)
	}
}

func TestOfficerIsNotifiedOnDecision(t *testing.T) {
	s := newTestStore()

	if _, err := ReturnForEdits(s, reviewer(), "sub-pending", "fix the header"); err != nil {
		t.Fatalf("ReturnForEdits returned error: %v", err)
	}

	found := false
	for _, n := range s.Snapshot().Notifications {
		if n.UserID == "user-alice" && n.Type == models.NotifyWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("owning MAC officer was not notified about the decision")
	}
}

// End to end: officer Alice uploads, reviewer Bob approves with a comment.
func TestUploadThenApproveScenario(t *testing.T) {
	s := newTestStore()

	sub, err := Submit(s, officer(), SubmissionInput{
		Title:       "Flood Advisory",
		ContentType: models.ContentPressRelease,
		FileName:    "advisory.pdf",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if sub.Status != models.StatusPending || sub.MACID != "MAC-1" {
		t.Fatalf("unexpected new submission %+v", sub)
	}

	approved, err := Approve(s, reviewer(), sub.ID, "Looks good")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
	if len(approved.Comments) != 1 || approved.Comments[0].Text != "Looks good" ||
		approved.Comments[0].Kind != models.CommentStatusChange {
		t.Fatalf("expected one status_change comment 'Looks good', got %+v", approved.Comments)
	}

	log := s.Snapshot().ActivityLogs[0]
	if log.Action != models.ActionApproved || log.SubmissionID != sub.ID {
		t.Fatalf("expected Approved entry prepended for %s, got %+v", sub.ID, log)
	}
}
