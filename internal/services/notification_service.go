package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"wisenkap/internal/batch"
	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/logger"
	"wisenkap/internal/models"
	"wisenkap/internal/notify"
)

// notificationService stores reminder preferences and sends balance alerts.
type notificationService struct {
	db          *gorm.DB
	sender      notify.Sender
	concurrency int
}

// NewNotificationService creates a new NotificationServicer. Alerts are sent
// through sender with at most concurrency deliveries in flight.
func NewNotificationService(db *gorm.DB, sender notify.Sender, concurrency int) NotificationServicer {
	if sender == nil {
		sender = notify.LogSender{}
	}
	return &notificationService{db: db, sender: sender, concurrency: concurrency}
}

// CreateNotification stores a reminder preference for the user.
func (s *notificationService) CreateNotification(ctx context.Context, userID uint, in NotificationInput) (*models.Notification, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "message is required")
	}

	notification := &models.Notification{
		UserID:      userID,
		Message:     message,
		AlertTime:   strings.TrimSpace(in.AlertTime),
		IsActive:    in.IsActive,
		DeviceToken: strings.TrimSpace(in.DeviceToken),
	}
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, apperrors.Storage("insert notification", err)
	}
	return notification, nil
}

// GetNotifications lists the user's reminder preferences.
func (s *notificationService) GetNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&notifications).Error; err != nil {
		return nil, apperrors.Storage("list notifications", err)
	}
	return notifications, nil
}

// DeleteNotification removes a reminder preference owned by the user.
func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.Notification{})
	if result.Error != nil {
		return apperrors.Storage("delete notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// AlertOverdrawn pushes an alert to every active device of the user. Delivery
// is best effort: failures are logged.
func (s *notificationService) AlertOverdrawn(ctx context.Context, userID uint, budget *models.Budget) {
	var targets []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND device_token <> ''", userID, true).
		Find(&targets).Error
	if err != nil {
		logger.Get().Errorw("failed to load alert targets", "error", err, "user_id", userID)
		return
	}
	if len(targets) == 0 {
		return
	}

	body := fmt.Sprintf("Budget %q is overdrawn: balance %s", budget.Category, budget.Amount.StringFixed(2))
	err = batch.Run(ctx, s.concurrency, len(targets), func(ctx context.Context, i int) error {
		msg := notify.Message{Token: targets[i].DeviceToken, Title: "Budget overdrawn", Body: body}
		if err := s.sender.Send(ctx, msg); err != nil {
			logger.Get().Warnw("failed to deliver overdrawn alert",
				"error", err,
				"user_id", userID,
				"budget_id", budget.ID,
				"notification_id", targets[i].ID,
			)
		}
		return nil
	})
	if err != nil {
		logger.Get().Warnw("overdrawn alert fan-out interrupted", "error", err, "user_id", userID)
	}
}
