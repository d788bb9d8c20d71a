package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"wisenkap/internal/logger"
	"wisenkap/internal/models"
)

// Audit actions recorded by the handlers.
const (
	AuditSignup             = "SIGNUP"
	AuditUpdateProfile      = "UPDATE_PROFILE"
	AuditCreateBudget       = "CREATE_BUDGET"
	AuditDeleteBudget       = "DELETE_BUDGET"
	AuditPostTransactions   = "POST_TRANSACTIONS"
	AuditPostSaving         = "POST_SAVING"
	AuditPostExpenses       = "POST_EXPENSES"
	AuditCreateNotification = "CREATE_NOTIFICATION"
	AuditDeleteNotification = "DELETE_NOTIFICATION"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit changes", "error", err, "action", action)
		} else {
			entry.Changes = string(data)
		}
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to write audit log",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
