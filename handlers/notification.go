package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns a recipient's notifications, newest first.
func (h *HandlerBundle) ListNotificationsHandler(c *gin.Context) {
	notifications, err := h.NotifSvc.ListByRecipient(c.Request.Context(), c.Param("recipientId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationsReadHandler marks all of a recipient's notifications read.
func (h *HandlerBundle) MarkNotificationsReadHandler(c *gin.Context) {
	if err := h.NotifSvc.MarkAllRead(c.Request.Context(), c.Param("recipientId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteNotificationHandler removes a single notification.
func (h *HandlerBundle) DeleteNotificationHandler(c *gin.Context) {
	if err := h.NotifSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearNotificationsHandler removes every notification for a recipient.
func (h *HandlerBundle) ClearNotificationsHandler(c *gin.Context) {
	if err := h.NotifSvc.ClearAll(c.Request.Context(), c.Param("recipientId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
