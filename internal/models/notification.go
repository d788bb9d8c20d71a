package models

// Notification is a user's reminder preference. When DeviceToken is set and
// the preference is active, push alerts are delivered to that device.
type Notification struct {
	Base
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Message     string `gorm:"not null" json:"message"`
	AlertTime   string `json:"alert_time"`
	IsActive    bool   `gorm:"not null" json:"is_active"`
	DeviceToken string `json:"device_token,omitempty"`
}
