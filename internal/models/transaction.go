package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a spending posting. Recording one decrements the budget balance.
type Transaction struct {
	Base
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	BudgetID uint            `gorm:"not null;index" json:"budget_id"`
	Comment  string          `json:"comment,omitempty"`
	Date     time.Time       `gorm:"not null;index" json:"date"`

	Budget *Budget `gorm:"foreignKey:BudgetID" json:"-"`
}

// Expense is a planned expense line of a budget. It does not change the balance.
type Expense struct {
	Base
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	BudgetID uint            `gorm:"not null;index" json:"budget_id"`

	Budget *Budget `gorm:"foreignKey:BudgetID" json:"-"`
}

// Saving is money set aside from a budget. Recording one decrements the budget balance.
type Saving struct {
	Base
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	Date     time.Time       `gorm:"not null" json:"date"`
	BudgetID uint            `gorm:"not null;index" json:"budget_id"`

	Budget *Budget `gorm:"foreignKey:BudgetID" json:"-"`
}
