package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"tools-directory-api/services"

	"github.com/gin-gonic/gin"
)

func moderationService() *services.ModerationService {
	return services.NewModerationService(nil)
}

func notificationService() *services.NotificationService {
	return services.NewNotificationService(nil)
}

// currentUserID returns the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	val, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return 0, false
	}
	userID, ok := val.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return userID, true
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return value, true
}

func limitQuery(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return limit
}

// respondModerationError maps service errors onto HTTP statuses. Validation
// and conflict errors carry their message through; anything unexpected is
// reported generically.
func respondModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownReason),
		errors.Is(err, services.ErrUnknownSubject),
		errors.Is(err, services.ErrUnknownPriority):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrActionNotFound),
		errors.Is(err, services.ErrAppealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyAssigned),
		errors.Is(err, services.ErrAlreadyResolved),
		errors.Is(err, services.ErrAppealNotPending),
		errors.Is(err, services.ErrAppealAlreadyOpen):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotActionTarget):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
