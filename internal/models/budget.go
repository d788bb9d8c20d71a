package models

import "github.com/shopspring/decimal"

// Budget is a named allocation owned by a user. Amount is the running balance:
// the sum of its revenues at creation minus every transaction and saving posted
// against it.
type Budget struct {
	Base
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	UserID   uint            `gorm:"not null;index" json:"user_id"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Revenues []Revenue `gorm:"foreignKey:BudgetID" json:"revenues,omitempty"`
	Period   *Period   `gorm:"foreignKey:BudgetID" json:"period,omitempty"`
}

// Revenue is an income line that funded a budget at creation.
type Revenue struct {
	Base
	Type     string          `gorm:"not null" json:"type"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	UserID   uint            `gorm:"not null;index" json:"user_id"`
	BudgetID uint            `gorm:"not null;index" json:"budget_id"`

	Budget *Budget `gorm:"foreignKey:BudgetID" json:"-"`
}

// TableName keeps the historical table name.
func (Revenue) TableName() string { return "revenus" }
