package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wisenkap/internal/models"
	"wisenkap/internal/money"
	"wisenkap/internal/pagination"
)

// ProfileUpdate holds the optional profile fields a user may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Phone      *string
	FirstName  *string
	Gender     *string
	DOB        *time.Time
	Country    *string
	PostalCode *string
	Currency   *string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password string, profile ProfileUpdate) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error)
	ListUsers(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	StoreRefreshTokenHash(ctx context.Context, userID uint, tokenHash string) error
	GetRefreshTokenHash(ctx context.Context, userID uint) (string, error)
}

// RevenueInput is one income line of a new budget.
type RevenueInput struct {
	Type   string      `json:"type"`
	Amount money.Input `json:"amount" swaggertype:"string"`
}

// CreateBudgetInput carries everything needed to open a budget.
type CreateBudgetInput struct {
	Name      string
	Period    string
	StartDate string
	Revenues  []RevenueInput
}

// BudgetResult is the created budget together with an echo of the request.
type BudgetResult struct {
	Budget    *models.Budget `json:"budget"`
	Name      string         `json:"name"`
	Period    string         `json:"period"`
	StartDate string         `json:"start_date"`
	Revenues  []RevenueInput `json:"revenues"`
}

// BudgetServicer defines the contract for the budget lifecycle.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, userID uint, in CreateBudgetInput) (*BudgetResult, error)
	GetBudgets(ctx context.Context, userID uint) ([]models.Budget, error)
	GetBudget(ctx context.Context, userID, budgetID uint) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID uint) error
}

// TransactionInput is one spending line posted against a budget.
type TransactionInput struct {
	Category string
	Amount   money.Input
	Comment  string
	Date     string
}

// ExpenseInput is one planned expense line.
type ExpenseInput struct {
	Category string
	Amount   money.Input
}

// SavingInput is an amount set aside from a budget.
type SavingInput struct {
	Amount money.Input
	Date   string
}

// PostingResult is the budget after a posting together with the inserted rows.
type PostingResult struct {
	Budget       *models.Budget       `json:"budget"`
	Total        decimal.Decimal      `json:"total" swaggertype:"string"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
	Expenses     []models.Expense     `json:"expenses,omitempty"`
	Saving       *models.Saving       `json:"saving,omitempty"`
}

// TransactionRecord is a transaction flattened with the category of its budget.
type TransactionRecord struct {
	ID             uint            `json:"id"`
	BudgetID       uint            `json:"budget_id"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	Comment        string          `json:"comment"`
	Date           time.Time       `json:"date"`
	BudgetCategory string          `json:"budget_category"`
}

// SavingRecord is a saving flattened with the category of its budget.
type SavingRecord struct {
	ID             uint            `json:"id"`
	BudgetID       uint            `json:"budget_id"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	Date           time.Time       `json:"date"`
	BudgetCategory string          `json:"budget_category"`
}

// PostingServicer defines the contract for postings against budgets.
type PostingServicer interface {
	PostTransactions(ctx context.Context, userID, budgetID uint, items []TransactionInput) (*PostingResult, error)
	PostSaving(ctx context.Context, userID, budgetID uint, in SavingInput) (*PostingResult, error)
	PostExpenses(ctx context.Context, userID, budgetID uint, items []ExpenseInput) (*PostingResult, error)
	GetTransactions(ctx context.Context, userID uint) ([]TransactionRecord, error)
	GetSavings(ctx context.Context, userID uint) ([]SavingRecord, error)
}

// NotificationInput is a reminder preference submitted by a user.
type NotificationInput struct {
	Message     string
	AlertTime   string
	IsActive    bool
	DeviceToken string
}

// BalanceAlerter is notified when a posting leaves a budget overdrawn.
type BalanceAlerter interface {
	AlertOverdrawn(ctx context.Context, userID uint, budget *models.Budget)
}

// NotificationServicer defines the contract for reminder preferences and alerts.
type NotificationServicer interface {
	BalanceAlerter
	CreateNotification(ctx context.Context, userID uint, in NotificationInput) (*models.Notification, error)
	GetNotifications(ctx context.Context, userID uint) ([]models.Notification, error)
	DeleteNotification(ctx context.Context, userID, notificationID uint) error
}

// ExportFile is a generated document ready to be sent to the client.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportServicer defines the contract for statement exports.
type ExportServicer interface {
	ExportTransactions(ctx context.Context, userID uint, startDate, endDate string) (*ExportFile, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
