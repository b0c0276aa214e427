package services

import (
	"micat-content-api/models"
)

// SubmissionStats are the per-status headline counters. Total always equals
// the sum of the five per-status counts.
type SubmissionStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	UnderReview int `json:"under_review"`
	Approved    int `json:"approved"`
	Returned    int `json:"returned"`
	Denied      int `json:"denied"`
}

// ComputeStats reduces the viewer's role-visible set (organization-restricted
// only, never status- or search-restricted) into per-status counts.
func ComputeStats(subs []models.Submission, viewer models.User) SubmissionStats {
	var stats SubmissionStats
	for _, sub := range VisibleSubmissions(subs, viewer) {
		stats.Total++
		switch sub.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusUnderReview:
			stats.UnderReview++
		case models.StatusApproved:
			stats.Approved++
		case models.StatusReturned:
			stats.Returned++
		case models.StatusDenied:
			stats.Denied++
		}
	}
	return stats
}
