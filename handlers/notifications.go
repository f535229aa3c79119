package handlers

import (
	"errors"
	"net/http"

	"printhub-api/middleware"
	"printhub-api/models"
	"printhub-api/store"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the caller's notification feed. Staff see
// everything, including staff-wide new-order and inventory alerts; students
// see only notifications targeted at them.
func (h *Handler) GetNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	role := middleware.GetRole(c)

	var items []models.Notification
	if role == models.RoleStudent {
		for _, n := range h.Notifications.All() {
			if n.ForUserID == userID {
				items = append(items, n)
			}
		}
	} else {
		items = h.Notifications.All()
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(items),
		"unread":        unread,
		"notifications": items,
	})
}

// MarkNotificationRead flags a notification as read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	if err := h.Notifications.MarkRead(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
