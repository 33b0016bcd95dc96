package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tools-directory-api/config"
	"tools-directory-api/models"

	"gorm.io/gorm"
)

// NotificationService is the fire-and-forget sink for moderation events. It
// writes an in-app notification row and, when SMTP is configured, sends an
// email. Failures are logged and never affect the triggering operation.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	if db == nil {
		db = config.DB
	}
	return &NotificationService{db: db}
}

var sanctionTitles = map[string]string{
	models.ActionUserWarn:    "You have received a warning",
	models.ActionUserSuspend: "Your account has been suspended",
	models.ActionUserBan:     "Your account has been banned",
	models.ActionUserRestore: "Your account has been restored",
}

// SanctionIssued notifies the sanctioned user. Intended to be called in a
// goroutine after the sanction has committed.
func (s *NotificationService) SanctionIssued(ctx context.Context, action *models.ModerationAction) {
	if action == nil || action.UserID == nil {
		return
	}

	title, ok := sanctionTitles[action.Action]
	if !ok {
		return
	}

	message := fmt.Sprintf("Reason: %s", action.Reason)
	if action.Action == models.ActionUserSuspend && action.DurationDays != nil {
		message = fmt.Sprintf("Reason: %s. Duration: %d days.", action.Reason, *action.DurationDays)
	}

	notifType := "warning"
	if action.Action == models.ActionUserRestore {
		notifType = "success"
	}

	s.deliver(ctx, *action.UserID, title, message, notifType, action.ReportID, &action.ActionID)
}

// AppealReviewed notifies the appellant of the outcome.
func (s *NotificationService) AppealReviewed(ctx context.Context, appeal *models.ModerationAppeal, approved bool) {
	if appeal == nil {
		return
	}

	title := "Your appeal has been rejected"
	notifType := "error"
	if approved {
		title = "Your appeal has been approved"
		notifType = "success"
	}

	message := "A reviewer has made a decision on your appeal."
	if appeal.ReviewNotes != nil && *appeal.ReviewNotes != "" {
		message = fmt.Sprintf("Reviewer notes: %s", *appeal.ReviewNotes)
	}

	s.deliver(ctx, appeal.UserID, title, message, notifType, nil, &appeal.ActionID)
}

func (s *NotificationService) deliver(ctx context.Context, userID int, title, message, notifType string, reportID, actionID *int) {
	notification := &models.Notification{
		UserID:          userID,
		Title:           title,
		Message:         message,
		Type:            notifType,
		RelatedReportID: reportID,
		RelatedActionID: actionID,
		CreatedAt:       time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		log.Printf("Warning: failed to store notification for user %d: %v", userID, err)
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("user_id = ? AND deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return
	}
	body := fmt.Sprintf("<p>%s</p><p>%s</p>", title, message)
	if err := config.SendMail([]string{user.Email}, title, body); err != nil {
		log.Printf("Warning: failed to email notification to user %d: %v", userID, err)
	}
}
