package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tools-directory-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RemoveContent records a content removal in the action log. The engine never
// dereferences the content itself; the owning store acts on the audit trail.
func (s *ModerationService) RemoveContent(ctx context.Context, moderatorID int, contentType string, contentID int, reason string, reportID *int, notes *string) (*models.ModerationAction, error) {
	return s.recordContentAction(ctx, models.ActionContentRemove, moderatorID, contentType, contentID, reason, reportID, notes)
}

// HideContent records a content hide instead of a removal.
func (s *ModerationService) HideContent(ctx context.Context, moderatorID int, contentType string, contentID int, reason string, reportID *int, notes *string) (*models.ModerationAction, error) {
	return s.recordContentAction(ctx, models.ActionContentHide, moderatorID, contentType, contentID, reason, reportID, notes)
}

func (s *ModerationService) recordContentAction(ctx context.Context, actionCode string, moderatorID int, contentType string, contentID int, reason string, reportID *int, notes *string) (*models.ModerationAction, error) {
	action := &models.ModerationAction{
		ModeratorID:    moderatorID,
		ReportID:       reportID,
		ActionableType: &contentType,
		ActionableID:   &contentID,
		Action:         actionCode,
		Reason:         reason,
		Notes:          notes,
		CreatedAt:      s.now(),
	}
	if err := s.db.WithContext(ctx).Create(action).Error; err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", actionCode, err)
	}
	return action, nil
}

// WarnUser increments the target's warning count and logs the action.
func (s *ModerationService) WarnUser(ctx context.Context, moderatorID, targetUserID int, reason string, reportID *int, notes *string) (*models.ModerationAction, error) {
	now := s.now()
	action := &models.ModerationAction{
		ModeratorID: moderatorID,
		ReportID:    reportID,
		UserID:      &targetUserID,
		Action:      models.ActionUserWarn,
		Reason:      reason,
		Notes:       notes,
		CreatedAt:   now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lockStatusRow(tx, targetUserID, now); err != nil {
			return err
		}
		res := tx.Model(&models.UserModerationStatus{}).
			Where("user_id = ?", targetUserID).
			Updates(map[string]interface{}{
				"warning_count": gorm.Expr("warning_count + 1"),
				"updated_at":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Create(action).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to warn user: %w", err)
	}
	return action, nil
}

// SuspendUser opens a time-bounded suspension window and logs the action
// with its duration. Only the suspension fields are written, so a concurrent
// ban on the same row is never clobbered.
func (s *ModerationService) SuspendUser(ctx context.Context, moderatorID, targetUserID, durationDays int, reason string, reportID *int, notes *string) (*models.ModerationAction, error) {
	if durationDays < 1 {
		return nil, errors.New("duration must be at least one day")
	}

	now := s.now()
	suspensionEnds := now.AddDate(0, 0, durationDays)
	action := &models.ModerationAction{
		ModeratorID:  moderatorID,
		ReportID:     reportID,
		UserID:       &targetUserID,
		Action:       models.ActionUserSuspend,
		Reason:       reason,
		DurationDays: &durationDays,
		Notes:        notes,
		CreatedAt:    now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lockStatusRow(tx, targetUserID, now); err != nil {
			return err
		}
		res := tx.Model(&models.UserModerationStatus{}).
			Where("user_id = ?", targetUserID).
			Updates(map[string]interface{}{
				"is_suspended":       true,
				"suspension_ends_at": suspensionEnds,
				"suspension_reason":  reason,
				"updated_at":         now,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Create(action).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to suspend user: %w", err)
	}
	return action, nil
}

// BanUser flags the target as banned and logs the action. An existing
// suspension window on the row is left untouched; sanctions compose.
func (s *ModerationService) BanUser(ctx context.Context, moderatorID, targetUserID int, reason string, reportID *int, notes *string) (*models.ModerationAction, error) {
	now := s.now()
	action := &models.ModerationAction{
		ModeratorID: moderatorID,
		ReportID:    reportID,
		UserID:      &targetUserID,
		Action:      models.ActionUserBan,
		Reason:      reason,
		Notes:       notes,
		CreatedAt:   now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lockStatusRow(tx, targetUserID, now); err != nil {
			return err
		}
		res := tx.Model(&models.UserModerationStatus{}).
			Where("user_id = ?", targetUserID).
			Updates(map[string]interface{}{
				"is_banned":  true,
				"ban_reason": reason,
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Create(action).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ban user: %w", err)
	}
	return action, nil
}

// RestoreUser lifts every sanction on the target: suspension, ban and
// accumulated warnings.
func (s *ModerationService) RestoreUser(ctx context.Context, moderatorID, targetUserID int, reason string, notes *string) (*models.ModerationAction, error) {
	var action *models.ModerationAction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		action, err = s.restoreUserTx(tx, moderatorID, targetUserID, reason, notes, s.now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restore user: %w", err)
	}
	return action, nil
}

// restoreUserTx runs the restore inside an existing transaction so appeal
// approval can reverse a suspension atomically with the appeal update.
func (s *ModerationService) restoreUserTx(tx *gorm.DB, moderatorID, targetUserID int, reason string, notes *string, now time.Time) (*models.ModerationAction, error) {
	if _, err := s.lockStatusRow(tx, targetUserID, now); err != nil {
		return nil, err
	}
	res := tx.Model(&models.UserModerationStatus{}).
		Where("user_id = ?", targetUserID).
		Updates(map[string]interface{}{
			"is_suspended":       false,
			"is_banned":          false,
			"suspension_ends_at": nil,
			"warning_count":      0,
			"updated_at":         now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	action := &models.ModerationAction{
		ModeratorID: moderatorID,
		UserID:      &targetUserID,
		Action:      models.ActionUserRestore,
		Reason:      reason,
		Notes:       notes,
		CreatedAt:   now,
	}
	if err := tx.Create(action).Error; err != nil {
		return nil, err
	}
	return action, nil
}

// lockStatusRow fetches the target's status row under a row lock, creating
// it first when the user has never been sanctioned. Every writer goes
// through this, which serializes concurrent sanctions on the same user.
func (s *ModerationService) lockStatusRow(tx *gorm.DB, userID int, now time.Time) (*models.UserModerationStatus, error) {
	var status models.UserModerationStatus
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&status).Error
	if err == nil {
		return &status, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status = models.UserModerationStatus{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Create(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// GetUserActions lists the action history for a user, newest first.
func (s *ModerationService) GetUserActions(ctx context.Context, userID, limit int) ([]models.ModerationAction, error) {
	var actions []models.ModerationAction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Preload("Report").
		Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user actions: %w", err)
	}
	return actions, nil
}

// GetUserStatus returns the user's sanction status, or nil when the user has
// never been sanctioned.
func (s *ModerationService) GetUserStatus(ctx context.Context, userID int) (*models.UserModerationStatus, error) {
	var status models.UserModerationStatus
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user status: %w", err)
	}
	return &status, nil
}
