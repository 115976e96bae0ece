package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/repository"
	"clinic-app-server/internal/utils"
)

// NotificationHandler exposes the stored notifications to their recipient.
type NotificationHandler struct {
	Store repository.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Store: store}
}

// GetNotifications lists the caller's notifications, newest first. Pass
// ?unread=true to filter to unread ones.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.Store.ListByUser(userID, unreadOnly)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch notifications")
		return
	}

	utils.Success(c, "Notifications fetched successfully", notifications)
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized access")
		return
	}

	if err := h.Store.MarkRead(userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Notification not found")
			return
		}
		utils.InternalServerError(c, "Failed to update notification")
		return
	}

	utils.Success(c, "Notification marked as read", nil)
}
