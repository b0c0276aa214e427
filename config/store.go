package config

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"micat-content-api/models"
	"micat-content-api/store"
)

// Store is the application dataset, initialized once at startup.
var Store *store.Store

// DemoPassword is the password every seeded demo account accepts.
const DemoPassword = "password123"

func InitStore() {
	Store = store.New(SeedState(time.Now()))
	log.Printf("In-memory store seeded")
}

func strPtr(s string) *string { return &s }

// SeedState builds the demo dataset the dashboard starts from: the MAC
// reference list, one account per role (plus extras), and a handful of
// submissions in various lifecycle states with matching notifications and
// audit entries.
func SeedState(now time.Time) store.State {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	pw := string(hash)

	macs := []models.MAC{
		{ID: "MAC-1", Name: "Ministry of Health", Acronym: "MOH", Category: "Ministry"},
		{ID: "MAC-2", Name: "Ministry of Education", Acronym: "MOE", Category: "Ministry"},
		{ID: "MAC-3", Name: "Ministry of Public Works", Acronym: "MPW", Category: "Ministry"},
		{ID: "MAC-4", Name: "Ministry of Agriculture", Acronym: "MOA", Category: "Ministry"},
		{ID: "MAC-5", Name: "Liberia Revenue Authority", Acronym: "LRA", Category: "Agency"},
		{ID: "MAC-6", Name: "National Port Authority", Acronym: "NPA", Category: "Agency"},
		{ID: "MAC-7", Name: "Environmental Protection Agency", Acronym: "EPA", Category: "Agency"},
		{ID: "MAC-8", Name: "Governance Commission", Acronym: "GC", Category: "Commission"},
	}

	users := []models.User{
		{
			ID: "user-1", Name: "Alice Johnson", Email: "alice.johnson@moh.gov.lr",
			Role: models.RoleMACOfficer, MACID: strPtr("MAC-1"), MACName: strPtr("Ministry of Health"),
			PasswordHash: pw, Active: true, CreatedAt: now.AddDate(0, -6, 0),
		},
		{
			ID: "user-2", Name: "James Kollie", Email: "james.kollie@moe.gov.lr",
			Role: models.RoleMACOfficer, MACID: strPtr("MAC-2"), MACName: strPtr("Ministry of Education"),
			PasswordHash: pw, Active: true, CreatedAt: now.AddDate(0, -5, 0),
		},
		{
			ID: "user-3", Name: "Robert Weah", Email: "robert.weah@micat.gov.lr",
			Role: models.RoleMICATReviewer,
			PasswordHash: pw, Active: true, CreatedAt: now.AddDate(0, -8, 0),
		},
		{
			ID: "user-4", Name: "Martha Freeman", Email: "martha.freeman@micat.gov.lr",
			Role: models.RoleMICATReviewer,
			PasswordHash: pw, Active: true, CreatedAt: now.AddDate(0, -4, 0),
		},
		{
			ID: "user-5", Name: "Daniel Tarr", Email: "daniel.tarr@micat.gov.lr",
			Role: models.RoleAdmin,
			PasswordHash: pw, Active: true, CreatedAt: now.AddDate(0, -9, 0),
		},
	}

	reviewedAt := now.Add(-20 * time.Hour)
	submissions := []models.Submission{
		{
			ID: "sub-1", Title: "Flood Advisory for Montserrado County",
			ContentType: models.ContentPressRelease,
			Description: "Public advisory on expected flooding in low-lying communities.",
			Tags:        []string{"advisory", "weather"},
			ContentDate: now.AddDate(0, 0, -1).Format("2006-01-02"),
			FileName:    "flood-advisory.pdf", FileSize: "1.1 MB",
			Status: models.StatusPending, MACID: "MAC-1", MACName: "Ministry of Health",
			SubmittedBy: "Alice Johnson", SubmittedAt: now.Add(-6 * time.Hour),
			Comments: []models.Comment{}, Priority: models.PriorityHigh,
		},
		{
			ID: "sub-2", Title: "Back to School Campaign Launch",
			ContentType: models.ContentAnnouncement,
			Description: "Announcement of the national back-to-school enrollment drive.",
			Tags:        []string{"education", "campaign"},
			ContentDate: now.AddDate(0, 0, -3).Format("2006-01-02"),
			FileName:    "back-to-school.docx", FileSize: "860 KB",
			Status: models.StatusUnderReview, MACID: "MAC-2", MACName: "Ministry of Education",
			SubmittedBy: "James Kollie", SubmittedAt: now.Add(-30 * time.Hour),
			Comments: []models.Comment{}, Priority: models.PriorityMedium,
		},
		{
			ID: "sub-3", Title: "Minister's Speech at Health Summit",
			ContentType: models.ContentSpeech,
			Description: "Keynote remarks delivered at the West Africa health summit.",
			Tags:        []string{"speech", "summit"},
			ContentDate: now.AddDate(0, 0, -7).Format("2006-01-02"),
			FileName:    "summit-speech.pdf", FileSize: "2.4 MB",
			Status: models.StatusApproved, MACID: "MAC-1", MACName: "Ministry of Health",
			SubmittedBy: "Alice Johnson", SubmittedAt: now.Add(-48 * time.Hour),
			ReviewedBy:  strPtr("Robert Weah"), ReviewedAt: &reviewedAt,
			Comments: []models.Comment{
				{
					ID: "c-1", UserID: "user-3", UserName: "Robert Weah",
					Text: "Cleared for publication.", Kind: models.CommentStatusChange,
					CreatedAt: reviewedAt,
				},
			},
			Priority: models.PriorityMedium,
		},
	}

	notifications := []models.Notification{
		{
			ID: "notif-1", UserID: "user-1",
			Title: "Submission Approved", Message: "Minister's Speech at Health Summit was approved.",
			Type: models.NotifySuccess, RelatedSubmissionID: strPtr("sub-3"),
			IsRead: false, CreatedAt: reviewedAt,
		},
		{
			ID: "notif-2", UserID: "user-3",
			Title: "New Submission", Message: "Flood Advisory for Montserrado County is awaiting review.",
			Type: models.NotifyInfo, RelatedSubmissionID: strPtr("sub-1"),
			IsRead: false, CreatedAt: now.Add(-6 * time.Hour),
		},
	}

	// Newest first, matching the prepend ordering of live entries.
	activity := []models.ActivityLog{
		{
			ID: "log-3", SubmissionID: "sub-1", UserID: "user-1", UserName: "Alice Johnson",
			Action: models.ActionSubmitted, Details: "New submission created",
			CreatedAt: now.Add(-6 * time.Hour),
		},
		{
			ID: "log-2", SubmissionID: "sub-3", UserID: "user-3", UserName: "Robert Weah",
			Action: models.ActionApproved, Details: "Submission approved for publication",
			CreatedAt: reviewedAt,
		},
		{
			ID: "log-1", SubmissionID: "sub-2", UserID: "user-2", UserName: "James Kollie",
			Action: models.ActionSubmitted, Details: "New submission created",
			CreatedAt: now.Add(-30 * time.Hour),
		},
	}

	return store.State{
		Users:         users,
		MACs:          macs,
		Submissions:   submissions,
		Notifications: notifications,
		ActivityLogs:  activity,
	}
}
