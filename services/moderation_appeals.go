package services

import (
	"context"
	"errors"
	"fmt"

	"tools-directory-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateAppeal opens a pending appeal against a user-directed action. Only
// the sanctioned user may appeal, and an action carries at most one pending
// appeal at a time; the action row is locked to keep the check atomic.
func (s *ModerationService) CreateAppeal(ctx context.Context, userID, actionID int, reason string) (*models.ModerationAppeal, error) {
	appeal := &models.ModerationAppeal{
		UserID:    userID,
		ActionID:  actionID,
		Reason:    reason,
		Status:    models.AppealStatusPending,
		CreatedAt: s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var action models.ModerationAction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("action_id = ?", actionID).
			First(&action).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActionNotFound
		}
		if err != nil {
			return err
		}
		if action.UserID == nil || *action.UserID != userID {
			return ErrNotActionTarget
		}

		var pending int64
		if err := tx.Model(&models.ModerationAppeal{}).
			Where("action_id = ? AND status = ?", actionID, models.AppealStatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return ErrAppealAlreadyOpen
		}

		return tx.Create(appeal).Error
	})
	if err != nil {
		return nil, err
	}
	return appeal, nil
}

// GetAppeal loads a single appeal.
func (s *ModerationService) GetAppeal(ctx context.Context, appealID int) (*models.ModerationAppeal, error) {
	var appeal models.ModerationAppeal
	err := s.db.WithContext(ctx).Where("appeal_id = ?", appealID).First(&appeal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load appeal: %w", err)
	}
	return &appeal, nil
}

// GetPendingAppeals lists open appeals, oldest first.
func (s *ModerationService) GetPendingAppeals(ctx context.Context, limit int) ([]models.ModerationAppeal, error) {
	var appeals []models.ModerationAppeal
	err := s.db.WithContext(ctx).
		Where("status = ?", models.AppealStatusPending).
		Order("created_at ASC").
		Limit(clampLimit(limit)).
		Preload("Action").
		Find(&appeals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending appeals: %w", err)
	}
	return appeals, nil
}

// ApproveAppeal closes a pending appeal in the appellant's favor. When the
// contested action is a temporary suspension the sanction is reversed in the
// same transaction; a permanent ban is left in place and must be lifted by
// an explicit RestoreUser call.
func (s *ModerationService) ApproveAppeal(ctx context.Context, appealID, reviewerID int, notes string) error {
	now := s.now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var appeal models.ModerationAppeal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("appeal_id = ?", appealID).
			First(&appeal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppealNotFound
		}
		if err != nil {
			return err
		}
		if !appeal.IsPending() {
			return ErrAppealNotPending
		}

		var action models.ModerationAction
		if err := tx.Where("action_id = ?", appeal.ActionID).First(&action).Error; err != nil {
			return err
		}

		res := tx.Model(&models.ModerationAppeal{}).
			Where("appeal_id = ?", appealID).
			Updates(map[string]interface{}{
				"status":       models.AppealStatusApproved,
				"reviewed_by":  reviewerID,
				"review_notes": notes,
				"reviewed_at":  now,
			})
		if res.Error != nil {
			return res.Error
		}

		if action.IsTemporary() {
			_, err := s.restoreUserTx(tx, reviewerID, appeal.UserID, "Appeal approved", nil, now)
			return err
		}
		return nil
	})
}

// RejectAppeal closes a pending appeal without touching the sanction.
func (s *ModerationService) RejectAppeal(ctx context.Context, appealID, reviewerID int, notes string) error {
	now := s.now()
	res := s.db.WithContext(ctx).Model(&models.ModerationAppeal{}).
		Where("appeal_id = ? AND status = ?", appealID, models.AppealStatusPending).
		Updates(map[string]interface{}{
			"status":       models.AppealStatusRejected,
			"reviewed_by":  reviewerID,
			"review_notes": notes,
			"reviewed_at":  now,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to reject appeal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.ModerationAppeal{}).
			Where("appeal_id = ?", appealID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrAppealNotFound
		}
		return ErrAppealNotPending
	}
	return nil
}
