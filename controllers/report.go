package controllers

import (
	"net/http"

	"tools-directory-api/services"
	"tools-directory-api/utils"

	"github.com/gin-gonic/gin"
)

type SubmitReportRequest struct {
	ReportableType string  `json:"reportable_type" binding:"required"`
	ReportableID   int     `json:"reportable_id" binding:"required,min=1"`
	Reason         string  `json:"reason" binding:"required"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	ReportedUserID *int    `json:"reported_user_id" binding:"omitempty,min=1"`
}

// SubmitReport files a report against a piece of content and enqueues it for
// review.
func SubmitReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Description != nil {
		sanitized := utils.SanitizeInput(*req.Description)
		req.Description = &sanitized
	}

	report, err := moderationService().CreateReport(c.Request.Context(), &services.CreateReportInput{
		ReporterID:     userID,
		ReportableType: req.ReportableType,
		ReportableID:   req.ReportableID,
		Reason:         req.Reason,
		Description:    req.Description,
		ReportedUserID: req.ReportedUserID,
	})
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": report})
}

// GetMyReports lists the reports the authenticated user has filed.
func GetMyReports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reports, err := moderationService().GetReports(c.Request.Context(), &services.ReportFilter{
		UserID: userID,
		Limit:  limitQuery(c),
	})
	if err != nil {
		respondModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports, "count": len(reports)})
}
