package models

import "time"

// Period labels the budgeting window of a budget. Exactly one exists per budget.
type Period struct {
	Base
	Period    string    `gorm:"not null" json:"period"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	BudgetID  uint      `gorm:"not null;uniqueIndex" json:"budget_id"`

	Budget *Budget `gorm:"foreignKey:BudgetID" json:"-"`
}
