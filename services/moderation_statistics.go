package services

import (
	"context"
	"fmt"

	"tools-directory-api/models"
)

// ModerationStatistics is a point-in-time snapshot of row counts across the
// moderation tables.
type ModerationStatistics struct {
	PendingReports   int64 `json:"pending_reports"`
	UnderReview      int64 `json:"under_review"`
	ResolvedReports  int64 `json:"resolved_reports"`
	DismissedReports int64 `json:"dismissed_reports"`
	TotalActions     int64 `json:"total_actions"`
	SuspendedUsers   int64 `json:"suspended_users"`
	BannedUsers      int64 `json:"banned_users"`
	PendingAppeals   int64 `json:"pending_appeals"`
	ApprovedAppeals  int64 `json:"approved_appeals"`
}

func (s *ModerationService) GetStatistics(ctx context.Context) (*ModerationStatistics, error) {
	db := s.db.WithContext(ctx)
	stats := &ModerationStatistics{}

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.PendingReports, &models.ContentReport{}, "status = ?", []interface{}{models.ReportStatusPending}},
		{&stats.UnderReview, &models.ContentReport{}, "status = ?", []interface{}{models.ReportStatusUnderReview}},
		{&stats.ResolvedReports, &models.ContentReport{}, "status = ?", []interface{}{models.ReportStatusResolved}},
		{&stats.DismissedReports, &models.ContentReport{}, "status = ?", []interface{}{models.ReportStatusDismissed}},
		{&stats.TotalActions, &models.ModerationAction{}, "", nil},
		{&stats.SuspendedUsers, &models.UserModerationStatus{}, "is_suspended = ?", []interface{}{true}},
		{&stats.BannedUsers, &models.UserModerationStatus{}, "is_banned = ?", []interface{}{true}},
		{&stats.PendingAppeals, &models.ModerationAppeal{}, "status = ?", []interface{}{models.AppealStatusPending}},
		{&stats.ApprovedAppeals, &models.ModerationAppeal{}, "status = ?", []interface{}{models.AppealStatusApproved}},
	}

	for _, c := range counts {
		query := db.Model(c.model)
		if c.query != "" {
			query = query.Where(c.query, c.args...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load moderation statistics: %w", err)
		}
	}
	return stats, nil
}
