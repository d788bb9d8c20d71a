package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Phone            string     `json:"phone"`
	FirstName        string     `json:"first_name"`
	Gender           string     `json:"gender"`
	DOB              *time.Time `json:"dob,omitempty"`
	Country          string     `json:"country"`
	PostalCode       string     `json:"postal_code"`
	Currency         string     `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	Budgets          []Budget   `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
