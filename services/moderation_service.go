package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tools-directory-api/config"
	"tools-directory-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// Validation failures, surfaced to the caller as 400s.
	ErrUnknownReason   = errors.New("unknown report reason")
	ErrUnknownSubject  = errors.New("unknown reportable type")
	ErrUnknownPriority = errors.New("unknown priority")

	// Missing rows, surfaced as 404s.
	ErrReportNotFound = errors.New("report not found")
	ErrActionNotFound = errors.New("moderation action not found")
	ErrAppealNotFound = errors.New("appeal not found")

	// Concurrent-mutation conflicts, surfaced as 409s. The caller should
	// re-fetch and retry or report the item as already handled.
	ErrAlreadyAssigned   = errors.New("report already assigned")
	ErrAlreadyResolved   = errors.New("report already resolved")
	ErrAppealNotPending  = errors.New("appeal already reviewed")
	ErrAppealAlreadyOpen = errors.New("a pending appeal already exists for this action")

	ErrNotActionTarget = errors.New("action does not target this user")
)

const defaultListLimit = 50

// ModerationService implements the content moderation workflow: report
// intake, the prioritized review queue, reviewer decisions, enforcement
// actions against users and content, appeals, and aggregate statistics.
type ModerationService struct {
	db     *gorm.DB
	policy ReasonPolicy
	now    func() time.Time
}

func NewModerationService(db *gorm.DB) *ModerationService {
	if db == nil {
		db = config.DB
	}
	return &ModerationService{
		db:     db,
		policy: DefaultReasonPolicy,
		now:    time.Now,
	}
}

type CreateReportInput struct {
	ReporterID     int
	ReportableType string
	ReportableID   int
	Reason         string
	Description    *string
	ReportedUserID *int
}

// CreateReport validates the reason against the taxonomy and opens a pending
// report together with its queue entry. The two inserts share a transaction
// so a failure never leaves a report without a queue entry or vice versa.
func (s *ModerationService) CreateReport(ctx context.Context, input *CreateReportInput) (*models.ContentReport, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}

	reason := strings.TrimSpace(input.Reason)
	if !s.policy.KnowsReason(reason) {
		return nil, ErrUnknownReason
	}
	if !s.policy.KnowsSubject(input.ReportableType) {
		return nil, ErrUnknownSubject
	}

	now := s.now()
	report := &models.ContentReport{
		Reference:      uuid.NewString(),
		UserID:         input.ReporterID,
		ReportedUserID: input.ReportedUserID,
		ReportableType: input.ReportableType,
		ReportableID:   input.ReportableID,
		Reason:         reason,
		Description:    input.Description,
		Status:         models.ReportStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		entry := &models.ModerationQueue{
			ReportID:  report.ReportID,
			Priority:  s.policy.PriorityFor(reason),
			CreatedAt: now,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// GetPendingReports lists unassigned pending reports, oldest first,
// optionally narrowed to one queue priority.
func (s *ModerationService) GetPendingReports(ctx context.Context, priority string, limit int) ([]models.ContentReport, error) {
	if priority != "" && !validPriority(priority) {
		return nil, ErrUnknownPriority
	}

	query := s.db.WithContext(ctx).Model(&models.ContentReport{}).
		Where("content_reports.status = ?", models.ReportStatusPending).
		Order("content_reports.created_at ASC").
		Limit(clampLimit(limit)).
		Preload("QueueItem")

	if priority != "" {
		query = query.
			Joins("JOIN moderation_queue ON moderation_queue.report_id = content_reports.report_id").
			Where("moderation_queue.priority = ?", priority)
	}

	var reports []models.ContentReport
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}
	return reports, nil
}

type ReportFilter struct {
	Status string
	Reason string
	UserID int
	Limit  int
}

// GetReports lists reports newest first with optional status, reason and
// reporter filters.
func (s *ModerationService) GetReports(ctx context.Context, filter *ReportFilter) ([]models.ContentReport, error) {
	if filter == nil {
		filter = &ReportFilter{}
	}

	query := s.db.WithContext(ctx).Model(&models.ContentReport{}).
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit)).
		Preload("QueueItem").
		Preload("Decision")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Reason != "" {
		query = query.Where("reason = ?", filter.Reason)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var reports []models.ContentReport
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetQueue lists queue entries ordered by priority rank (urgent first), then
// oldest first within a priority band. The ordering is deterministic for a
// given snapshot of the table.
func (s *ModerationService) GetQueue(ctx context.Context, priority string, assignedTo, limit int) ([]models.ModerationQueue, error) {
	if priority != "" && !validPriority(priority) {
		return nil, ErrUnknownPriority
	}

	query := s.db.WithContext(ctx).Model(&models.ModerationQueue{}).
		Order("CASE WHEN priority = 'urgent' THEN 0 WHEN priority = 'high' THEN 1 WHEN priority = 'medium' THEN 2 ELSE 3 END").
		Order("created_at ASC").
		Limit(clampLimit(limit)).
		Preload("Report")

	if priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if assignedTo != 0 {
		query = query.Where("assigned_to = ?", assignedTo)
	}

	var entries []models.ModerationQueue
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}
	return entries, nil
}

// AssignReport claims a queue entry for a reviewer and moves the report to
// under_review. The claim is a guarded update on "assigned_to IS NULL": when
// two reviewers race for the same entry exactly one update matches and the
// loser gets ErrAlreadyAssigned.
func (s *ModerationService) AssignReport(ctx context.Context, reportID, moderatorID int) error {
	now := s.now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ModerationQueue{}).
			Where("report_id = ? AND assigned_to IS NULL", reportID).
			Updates(map[string]interface{}{
				"assigned_to": moderatorID,
				"assigned_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.ModerationQueue{}).
				Where("report_id = ?", reportID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrReportNotFound
			}
			return ErrAlreadyAssigned
		}

		return tx.Model(&models.ContentReport{}).
			Where("report_id = ? AND status = ?", reportID, models.ReportStatusPending).
			Updates(map[string]interface{}{
				"status":     models.ReportStatusUnderReview,
				"updated_at": now,
			}).Error
	})
}

// MakeDecision records a reviewer's resolution and closes the report. The
// status flip is guarded so a report accepts exactly one decision; a second
// call gets ErrAlreadyResolved.
func (s *ModerationService) MakeDecision(ctx context.Context, reportID, moderatorID int, decision, reasoning string, appealable bool) (*models.ModerationDecision, error) {
	now := s.now()
	record := &models.ModerationDecision{
		ReportID:    reportID,
		ModeratorID: moderatorID,
		Decision:    decision,
		Reasoning:   reasoning,
		Appealable:  appealable,
		CreatedAt:   now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ContentReport{}).
			Where("report_id = ? AND status IN ?", reportID,
				[]string{models.ReportStatusPending, models.ReportStatusUnderReview}).
			Updates(map[string]interface{}{
				"status":     models.ReportStatusResolved,
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.ContentReport{}).
				Where("report_id = ?", reportID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrReportNotFound
			}
			return ErrAlreadyResolved
		}
		return tx.Create(record).Error
	})
	if err != nil {
		if errors.Is(err, ErrReportNotFound) || errors.Is(err, ErrAlreadyResolved) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}
	return record, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > 100 {
		return 100
	}
	return limit
}
