package models

import "time"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every model managed by the ledger schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Budget{},
		&Revenue{},
		&Period{},
		&Expense{},
		&Transaction{},
		&Saving{},
		&Notification{},
		&AuditLog{},
	}
}
