package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"tools-directory-api/models"
	"tools-directory-api/services"

	"github.com/gin-gonic/gin"
)

// GetReports lists reports for moderators with optional status/reason/user
// filters.
func GetReports(c *gin.Context) {
	filter := &services.ReportFilter{
		Status: c.Query("status"),
		Reason: c.Query("reason"),
		Limit:  limitQuery(c),
	}
	if userID, err := strconv.Atoi(c.Query("user_id")); err == nil {
		filter.UserID = userID
	}

	reports, err := moderationService().GetReports(c.Request.Context(), filter)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports, "count": len(reports)})
}

// GetPendingReports lists unassigned reports, optionally filtered by queue
// priority.
func GetPendingReports(c *gin.Context) {
	reports, err := moderationService().GetPendingReports(c.Request.Context(), c.Query("priority"), limitQuery(c))
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports, "count": len(reports)})
}

// GetQueue lists the moderation queue ordered by priority then age.
func GetQueue(c *gin.Context) {
	assignedTo, _ := strconv.Atoi(c.Query("assigned_to"))

	entries, err := moderationService().GetQueue(c.Request.Context(), c.Query("priority"), assignedTo, limitQuery(c))
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "count": len(entries)})
}

// AssignReport claims a report for the calling reviewer.
func AssignReport(c *gin.Context) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}
	reportID, ok := intParam(c, "report_id")
	if !ok {
		return
	}

	if err := moderationService().AssignReport(c.Request.Context(), reportID, moderatorID); err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report assigned"})
}

type DecisionRequest struct {
	Decision   string `json:"decision" binding:"required,oneof=approve_action reject_report escalate"`
	Reasoning  string `json:"reasoning" binding:"required,max=1000"`
	Appealable *bool  `json:"appealable"`
}

// MakeDecision records the reviewer's resolution and closes the report.
func MakeDecision(c *gin.Context) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}
	reportID, ok := intParam(c, "report_id")
	if !ok {
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appealable := true
	if req.Appealable != nil {
		appealable = *req.Appealable
	}

	decision, err := moderationService().MakeDecision(c.Request.Context(), reportID, moderatorID, req.Decision, req.Reasoning, appealable)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": decision})
}

type ContentActionRequest struct {
	ContentType string  `json:"content_type" binding:"required"`
	ContentID   int     `json:"content_id" binding:"required,min=1"`
	Reason      string  `json:"reason" binding:"required,max=500"`
	ReportID    *int    `json:"report_id" binding:"omitempty,min=1"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

// RemoveContent records a content removal action.
func RemoveContent(c *gin.Context) {
	contentAction(c, moderationService().RemoveContent)
}

// HideContent records a content hide action.
func HideContent(c *gin.Context) {
	contentAction(c, moderationService().HideContent)
}

func contentAction(c *gin.Context, record func(ctx context.Context, moderatorID int, contentType string, contentID int, reason string, reportID *int, notes *string) (*models.ModerationAction, error)) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ContentActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := record(c.Request.Context(), moderatorID, req.ContentType, req.ContentID, req.Reason, req.ReportID, req.Notes)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": action})
}

type UserActionRequest struct {
	UserID       int     `json:"user_id" binding:"required,min=1"`
	Reason       string  `json:"reason" binding:"required,max=500"`
	DurationDays int     `json:"duration_days" binding:"omitempty,min=1"`
	ReportID     *int    `json:"report_id" binding:"omitempty,min=1"`
	Notes        *string `json:"notes" binding:"omitempty,max=1000"`
}

// WarnUser issues a warning against a user.
func WarnUser(c *gin.Context) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := moderationService().WarnUser(c.Request.Context(), moderatorID, req.UserID, req.Reason, req.ReportID, req.Notes)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	go notificationService().SanctionIssued(context.Background(), action)
	c.JSON(http.StatusCreated, gin.H{"data": action})
}

// SuspendUser suspends a user for the requested number of days.
func SuspendUser(c *gin.Context) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DurationDays < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_days is required"})
		return
	}

	action, err := moderationService().SuspendUser(c.Request.Context(), moderatorID, req.UserID, req.DurationDays, req.Reason, req.ReportID, req.Notes)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	go notificationService().SanctionIssued(context.Background(), action)
	c.JSON(http.StatusCreated, gin.H{"data": action})
}

// BanUser bans a user permanently.
func BanUser(c *gin.Context) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := moderationService().BanUser(c.Request.Context(), moderatorID, req.UserID, req.Reason, req.ReportID, req.Notes)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	go notificationService().SanctionIssued(context.Background(), action)
	c.JSON(http.StatusCreated, gin.H{"data": action})
}

// RestoreUser lifts all sanctions on a user.
func RestoreUser(c *gin.Context) {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := moderationService().RestoreUser(c.Request.Context(), moderatorID, req.UserID, req.Reason, req.Notes)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	go notificationService().SanctionIssued(context.Background(), action)
	c.JSON(http.StatusCreated, gin.H{"data": action})
}

// GetUserStatus returns the sanction status for a user; null when the user
// has never been sanctioned.
func GetUserStatus(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		return
	}

	status, err := moderationService().GetUserStatus(c.Request.Context(), userID)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}

// GetUserActions lists the enforcement history for a user.
func GetUserActions(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		return
	}

	actions, err := moderationService().GetUserActions(c.Request.Context(), userID, limitQuery(c))
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": actions, "count": len(actions)})
}

// GetStatistics returns aggregate moderation counts.
func GetStatistics(c *gin.Context) {
	stats, err := moderationService().GetStatistics(c.Request.Context())
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// SweepSuspensions lifts expired suspensions. Intended to be hit by an
// external scheduler, not end users.
func SweepSuspensions(c *gin.Context) {
	count, err := services.NewSuspensionSweeper(nil).ProcessExpiredSuspensions(c.Request.Context(), nil)
	if err != nil {
		if errors.Is(err, services.ErrSuspensionSweepAlreadyRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"processed": count})
}
