package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/services"
)

// NotificationHandler handles reminder preference requests
type NotificationHandler struct {
	notificationService services.NotificationServicer
	auditService        services.AuditServicer
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationServicer, auditService services.AuditServicer) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, auditService: auditService}
}

// CreateNotificationRequest represents a reminder preference.
type CreateNotificationRequest struct {
	Message     string `json:"message" binding:"required,max=500"`
	AlertTime   string `json:"alert_time" binding:"max=32" example:"20:00"`
	IsActive    *bool  `json:"is_active"`
	DeviceToken string `json:"device_token" binding:"max=4096"`
}

// CreateNotification stores a reminder preference
// @Summary     Create notification preference
// @Description Store a reminder; active preferences with a device token also receive overdrawn alerts
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateNotificationRequest true "Notification preference"
// @Success     201 {object} map[string]models.Notification
// @Failure     400 {object} ErrorResponse
// @Failure     401 {object} ErrorResponse
// @Router      /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), userID, services.NotificationInput{
		Message:     req.Message,
		AlertTime:   req.AlertTime,
		IsActive:    isActive,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreateNotification, "notification", notification.ID, c.ClientIP(), nil)
	c.JSON(http.StatusCreated, gin.H{"notification": notification})
}

// GetNotifications lists the user's reminder preferences
// @Summary     List notification preferences
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.Notification
// @Failure     401 {object} ErrorResponse
// @Router      /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	notifications, err := h.notificationService.GetNotifications(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// DeleteNotification removes a reminder preference
// @Summary     Delete notification preference
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Notification ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse
// @Router      /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteNotification, "notification", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
