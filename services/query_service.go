package services

import (
	"strings"

	"micat-content-api/models"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// VisibleSubmissions restricts the collection to what the viewer may see:
// MAC officers only ever see their own organization's submissions, every
// other role sees the full set. Input order is preserved.
func VisibleSubmissions(subs []models.Submission, viewer models.User) []models.Submission {
	if viewer.Role != models.RoleMACOfficer {
		return subs
	}
	if viewer.MACID == nil {
		return []models.Submission{}
	}
	out := []models.Submission{}
	for _, sub := range subs {
		if sub.MACID == *viewer.MACID {
			out = append(out, sub)
		}
	}
	return out
}

// FilterSubmissions produces the role-scoped, status-filtered, searched view
// of the collection in a single pass. statusFilter is "all" or one concrete
// status; the search query matches case-insensitively against title,
// description and MAC name.
func FilterSubmissions(subs []models.Submission, viewer models.User, statusFilter, query string) []models.Submission {
	officerMAC := ""
	if viewer.Role == models.RoleMACOfficer {
		if viewer.MACID == nil {
			return []models.Submission{}
		}
		officerMAC = *viewer.MACID
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Submission{}
	for _, sub := range subs {
		if officerMAC != "" && sub.MACID != officerMAC {
			continue
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && string(sub.Status) != statusFilter {
			continue
		}
		if q != "" && !matchesQuery(sub, q) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func matchesQuery(sub models.Submission, q string) bool {
	return strings.Contains(strings.ToLower(sub.Title), q) ||
		strings.Contains(strings.ToLower(sub.Description), q) ||
		strings.Contains(strings.ToLower(sub.MACName), q)
}
