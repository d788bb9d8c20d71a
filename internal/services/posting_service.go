package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/events"
	"wisenkap/internal/models"
	"wisenkap/internal/money"
)

// alertTimeout bounds the delivery of one overdrawn alert fan-out.
const alertTimeout = 30 * time.Second

// Posting kinds carried by posting.recorded events.
const (
	KindTransaction = "transaction"
	KindSaving      = "saving"
	KindExpense     = "expense"
)

// postingService records transactions, savings and expenses against budgets.
type postingService struct {
	db      *gorm.DB
	events  events.Publisher
	alerter BalanceAlerter
}

// NewPostingService creates a new PostingServicer. The alerter may be nil.
func NewPostingService(db *gorm.DB, publisher events.Publisher, alerter BalanceAlerter) PostingServicer {
	return &postingService{db: db, events: publisher, alerter: alerter}
}

// PostTransactions records spending lines and decrements the budget balance
// by their sum.
func (s *postingService) PostTransactions(ctx context.Context, userID, budgetID uint, items []TransactionInput) (*PostingResult, error) {
	if len(items) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one transaction is required")
	}

	rows := make([]models.Transaction, len(items))
	amounts := make([]decimal.Decimal, len(items))
	for i, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("transaction %d: category is required", i))
		}
		amount, err := money.ParseAmount(item.Amount.String())
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("transaction %d: %s", i, err))
		}
		date, err := postingDate(strings.TrimSpace(item.Date))
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("transaction %d: date must be a date (YYYY-MM-DD)", i))
		}
		rows[i] = models.Transaction{
			Category: category,
			Amount:   amount,
			Comment:  strings.TrimSpace(item.Comment),
			Date:     date,
		}
		amounts[i] = amount
	}
	total := money.Sum(amounts...)

	var budget *models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].BudgetID = b.ID
		}
		if err := insertRows(ctx, tx, "insert transactions", rows); err != nil {
			return err
		}
		if err := decrementBalance(tx, b, total); err != nil {
			return err
		}
		budget = b
		return nil
	})
	if err != nil {
		return nil, asAppError("commit transactions", err)
	}

	s.afterPosting(ctx, userID, budget, KindTransaction, total)
	return &PostingResult{Budget: budget, Total: total, Transactions: rows}, nil
}

// PostSaving records an amount set aside and decrements the budget balance by it.
func (s *postingService) PostSaving(ctx context.Context, userID, budgetID uint, in SavingInput) (*PostingResult, error) {
	amount, err := money.ParseAmount(in.Amount.String())
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "saving: "+err.Error())
	}
	date, err := postingDate(strings.TrimSpace(in.Date))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "saving: date must be a date (YYYY-MM-DD)")
	}

	saving := &models.Saving{Amount: amount, Date: date}
	var budget *models.Budget
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		saving.BudgetID = b.ID
		if err := tx.Create(saving).Error; err != nil {
			return apperrors.Storage("insert saving", err)
		}
		if err := decrementBalance(tx, b, amount); err != nil {
			return err
		}
		budget = b
		return nil
	})
	if err != nil {
		return nil, asAppError("commit saving", err)
	}

	s.afterPosting(ctx, userID, budget, KindSaving, amount)
	return &PostingResult{Budget: budget, Total: amount, Saving: saving}, nil
}

// PostExpenses records planned expense lines. The budget balance is left as is.
func (s *postingService) PostExpenses(ctx context.Context, userID, budgetID uint, items []ExpenseInput) (*PostingResult, error) {
	if len(items) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one expense is required")
	}

	rows := make([]models.Expense, len(items))
	amounts := make([]decimal.Decimal, len(items))
	for i, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("expense %d: category is required", i))
		}
		amount, err := money.ParseAmount(item.Amount.String())
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("expense %d: %s", i, err))
		}
		rows[i] = models.Expense{Category: category, Amount: amount}
		amounts[i] = amount
	}
	total := money.Sum(amounts...)

	var budget *models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].BudgetID = b.ID
		}
		if err := insertRows(ctx, tx, "insert expenses", rows); err != nil {
			return err
		}
		budget = b
		return nil
	})
	if err != nil {
		return nil, asAppError("commit expenses", err)
	}

	s.afterPosting(ctx, userID, budget, KindExpense, total)
	return &PostingResult{Budget: budget, Total: total, Expenses: rows}, nil
}

// GetTransactions lists every transaction across the user's budgets, newest first.
func (s *postingService) GetTransactions(ctx context.Context, userID uint) ([]TransactionRecord, error) {
	records := []TransactionRecord{}
	err := s.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.id, transactions.budget_id, transactions.category, transactions.amount, " +
			"transactions.comment, transactions.date, budgets.category AS budget_category").
		Joins("JOIN budgets ON budgets.id = transactions.budget_id").
		Where("budgets.user_id = ?", userID).
		Order("transactions.date DESC, transactions.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, apperrors.Storage("list transactions", err)
	}
	return records, nil
}

// GetSavings lists every saving across the user's budgets, newest first.
func (s *postingService) GetSavings(ctx context.Context, userID uint) ([]SavingRecord, error) {
	records := []SavingRecord{}
	err := s.db.WithContext(ctx).
		Table("savings").
		Select("savings.id, savings.budget_id, savings.amount, savings.date, budgets.category AS budget_category").
		Joins("JOIN budgets ON budgets.id = savings.budget_id").
		Where("budgets.user_id = ?", userID).
		Order("savings.date DESC, savings.id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, apperrors.Storage("list savings", err)
	}
	return records, nil
}

// decrementBalance lowers the balance of a locked budget by amount. A balance
// the amount column cannot hold is rejected as invalid input.
func decrementBalance(tx *gorm.DB, budget *models.Budget, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	balance := budget.Amount.Sub(amount)
	if !money.InRange(balance) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("balance of budget %d would fall below -%s", budget.ID, money.MaxAmount.StringFixed(2)))
	}
	if err := tx.Model(budget).Update("amount", balance).Error; err != nil {
		return apperrors.Storage("update balance", err)
	}
	budget.Amount = balance
	return nil
}

func (s *postingService) afterPosting(ctx context.Context, userID uint, budget *models.Budget, kind string, total decimal.Decimal) {
	publish(ctx, s.events, events.Event{
		Type:     events.PostingRecorded,
		UserID:   userID,
		BudgetID: budget.ID,
		Kind:     kind,
		Amount:   total.StringFixed(2),
		Balance:  budget.Amount.StringFixed(2),
	})
	if kind != KindExpense && budget.Amount.IsNegative() && s.alerter != nil {
		// Delivery runs off the request path and survives client disconnects.
		alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
		snapshot := *budget
		go func() {
			defer cancel()
			s.alerter.AlertOverdrawn(alertCtx, userID, &snapshot)
		}()
	}
}
