package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wisenkap/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email and the
// password "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Currency: "EUR",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget with the given balance, one revenue line
// of the same amount and a monthly period.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, amount string) *models.Budget {
	t.Helper()

	balance := decimal.RequireFromString(amount)
	budget := &models.Budget{
		Category: fmt.Sprintf("Budget %d", nextID()),
		Amount:   balance,
		UserID:   userID,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	revenue := &models.Revenue{Type: "salary", Amount: balance, UserID: userID, BudgetID: budget.ID}
	if err := db.Create(revenue).Error; err != nil {
		t.Fatalf("failed to create test revenue: %v", err)
	}

	period := &models.Period{
		Period:    "monthly",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		BudgetID:  budget.ID,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}

	budget.Revenues = []models.Revenue{*revenue}
	budget.Period = period
	return budget
}

// CreateTestTransaction records a transaction row without touching the budget balance.
func CreateTestTransaction(t *testing.T, db *gorm.DB, budgetID uint, category, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		BudgetID: budgetID,
		Date:     date.UTC(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestNotification creates an active reminder preference for a device.
func CreateTestNotification(t *testing.T, db *gorm.DB, userID uint, deviceToken string) *models.Notification {
	t.Helper()

	n := &models.Notification{
		UserID:      userID,
		Message:     "Check your budget",
		AlertTime:   "09:00",
		IsActive:    true,
		DeviceToken: deviceToken,
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("failed to create test notification: %v", err)
	}
	return n
}

// CountRows returns the number of rows in table that belong to budgetID.
func CountRows(t *testing.T, db *gorm.DB, table string, budgetID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Table(table).Where("budget_id = ?", budgetID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
