package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velvetnails/salon-scheduler/internal/httpresp"
	"github.com/velvetnails/salon-scheduler/internal/notification"
)

type NotificationHandler struct {
	dispatcher *notification.Dispatcher
}

func NewNotificationHandler(dispatcher *notification.Dispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

type SendNotificationRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// Send queues an email for delivery. Accepted means queued, not delivered;
// the outcome lands in the notifications table.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	h.dispatcher.Dispatch(notification.Email{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
	})

	httpresp.OK(c, gin.H{
		"success": true,
		"message": "Email queued for delivery",
	})
}
