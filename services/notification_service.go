package services

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"micat-content-api/config"
	"micat-content-api/models"
	"micat-content-api/store"
)

var ErrNotificationNotFound = errors.New("notification not found")

// notifyReviewers drops an in-app notice for every active MICAT reviewer
// when new content arrives in the queue.
func notifyReviewers(st *store.State, sub models.Submission, now time.Time) {
	for _, u := range st.Users {
		if u.Role != models.RoleMICATReviewer || !u.Active {
			continue
		}
		prependNotification(st, u.ID, "New Submission",
			fmt.Sprintf("%s is awaiting review.", sub.Title),
			models.NotifyInfo, sub.ID, now)
	}
}

// notifyMACOfficers notifies the active officers of the owning MAC about a
// reviewer decision.
func notifyMACOfficers(st *store.State, sub models.Submission, title, message string, typ models.NotificationType, now time.Time) {
	for _, u := range st.Users {
		if u.Role != models.RoleMACOfficer || !u.Active {
			continue
		}
		if u.MACID == nil || *u.MACID != sub.MACID {
			continue
		}
		prependNotification(st, u.ID, title, message, typ, sub.ID, now)
	}
}

func prependNotification(st *store.State, userID, title, message string, typ models.NotificationType, submissionID string, now time.Time) {
	related := submissionID
	n := models.Notification{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Title:               title,
		Message:             message,
		Type:                typ,
		RelatedSubmissionID: &related,
		IsRead:              false,
		CreatedAt:           now,
	}
	st.Notifications = append([]models.Notification{n}, st.Notifications...)
}

// sendDecisionEmail fans a decision out to the owning MAC's officers by
// email. Best effort: skipped when SMTP is not configured, failures are
// logged and never surface to the caller.
func sendDecisionEmail(s *store.Store, sub models.Submission, subject, comment string) {
	if !config.MailConfigured() {
		return
	}

	var recipients []string
	s.View(func(st store.State) {
		for _, u := range st.Users {
			if u.Role != models.RoleMACOfficer || !u.Active || u.Email == "" {
				continue
			}
			if u.MACID != nil && *u.MACID == sub.MACID {
				recipients = append(recipients, u.Email)
			}
		}
	})
	if len(recipients) == 0 {
		return
	}

	body := buildDecisionEmailHTML(subject, sub, comment)
	go func() {
		if err := config.SendMail(recipients, subject, body); err != nil {
			log.Printf("decision email send failed (subject=%q to=%v): %v", subject, recipients, err)
		}
	}()
}

func buildDecisionEmailHTML(subject string, sub models.Submission, comment string) string {
	title := template.HTMLEscapeString(sub.Title)
	note := template.HTMLEscapeString(strings.TrimSpace(comment))
	if note == "" {
		note = "No reviewer comment was provided."
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family:'Segoe UI',Tahoma,Arial,sans-serif;color:#111827;">
<p>%s</p>
<p><strong>%s</strong> (%s)</p>
<p>%s</p>
</body>
</html>`, template.HTMLEscapeString(subject), template.HTMLEscapeString(subject), title, template.HTMLEscapeString(string(sub.Status)), note)
}

// NotificationsFor returns the user's notices, newest first.
func NotificationsFor(s *store.Store, userID string, unreadOnly bool) []models.Notification {
	out := []models.Notification{}
	s.View(func(st store.State) {
		for _, n := range st.Notifications {
			if n.UserID != userID {
				continue
			}
			if unreadOnly && n.IsRead {
				continue
			}
			out = append(out, n)
		}
	})
	return out
}

// UnreadCount returns the number of unread notices for the user.
func UnreadCount(s *store.Store, userID string) int {
	count := 0
	s.View(func(st store.State) {
		for _, n := range st.Notifications {
			if n.UserID == userID && !n.IsRead {
				count++
			}
		}
	})
	return count
}

// MarkNotificationRead flips the read flag on one of the user's notices.
func MarkNotificationRead(s *store.Store, userID, notificationID string) error {
	return s.Update(func(st *store.State) error {
		for i := range st.Notifications {
			if st.Notifications[i].ID == notificationID && st.Notifications[i].UserID == userID {
				st.Notifications[i].IsRead = true
				return nil
			}
		}
		return ErrNotificationNotFound
	})
}

// MarkAllNotificationsRead flips every unread notice for the user.
func MarkAllNotificationsRead(s *store.Store, userID string) error {
	return s.Update(func(st *store.State) error {
		for i := range st.Notifications {
			if st.Notifications[i].UserID == userID {
				st.Notifications[i].IsRead = true
			}
		}
		return nil
	})
}
