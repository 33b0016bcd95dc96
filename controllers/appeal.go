package controllers

import (
	"context"
	"net/http"

	"tools-directory-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateAppealRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

// CreateAppeal lets a sanctioned user contest one of the actions taken
// against them.
func CreateAppeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	actionID, ok := intParam(c, "action_id")
	if !ok {
		return
	}

	var req CreateAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appeal, err := moderationService().CreateAppeal(c.Request.Context(), userID, actionID, utils.SanitizeInput(req.Reason))
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": appeal})
}

// GetPendingAppeals lists open appeals for reviewers.
func GetPendingAppeals(c *gin.Context) {
	appeals, err := moderationService().GetPendingAppeals(c.Request.Context(), limitQuery(c))
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": appeals, "count": len(appeals)})
}

type ReviewAppealRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=1000"`
}

// ApproveAppeal decides an appeal in the appellant's favor.
func ApproveAppeal(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	appealID, ok := intParam(c, "appeal_id")
	if !ok {
		return
	}

	var req ReviewAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := moderationService()
	if err := svc.ApproveAppeal(c.Request.Context(), appealID, reviewerID, req.Notes); err != nil {
		respondModerationError(c, err)
		return
	}

	appeal, err := svc.GetAppeal(c.Request.Context(), appealID)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	go notificationService().AppealReviewed(context.Background(), appeal, true)
	c.JSON(http.StatusOK, gin.H{"data": appeal})
}

// RejectAppeal decides an appeal against the appellant.
func RejectAppeal(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	appealID, ok := intParam(c, "appeal_id")
	if !ok {
		return
	}

	var req ReviewAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := moderationService()
	if err := svc.RejectAppeal(c.Request.Context(), appealID, reviewerID, req.Notes); err != nil {
		respondModerationError(c, err)
		return
	}

	appeal, err := svc.GetAppeal(c.Request.Context(), appealID)
	if err != nil {
		respondModerationError(c, err)
		return
	}

	go notificationService().AppealReviewed(context.Background(), appeal, false)
	c.JSON(http.StatusOK, gin.H{"data": appeal})
}
