package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/events"
	"wisenkap/internal/models"
	"wisenkap/internal/money"
	"wisenkap/internal/validator"
)

// budgetService handles the budget lifecycle.
type budgetService struct {
	db     *gorm.DB
	events events.Publisher
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, publisher events.Publisher) BudgetServicer {
	return &budgetService{db: db, events: publisher}
}

// CreateBudget opens a budget funded by the given revenues. The budget, its
// revenue rows and its period row are written in one transaction.
func (s *budgetService) CreateBudget(ctx context.Context, userID uint, in CreateBudgetInput) (*BudgetResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	label := strings.TrimSpace(in.Period)
	if label == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period is required")
	}
	if !validator.IsPeriodLabel(label) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"period must be one of "+strings.Join(validator.PeriodLabels, ", "))
	}
	startDate, err := parseDate(strings.TrimSpace(in.StartDate))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date must be a date (YYYY-MM-DD)")
	}
	if in.Revenues == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "revenues are required")
	}

	revenues := make([]models.Revenue, len(in.Revenues))
	amounts := make([]decimal.Decimal, len(in.Revenues))
	for i, r := range in.Revenues {
		revenueType := strings.TrimSpace(r.Type)
		if revenueType == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("revenue %d: type is required", i))
		}
		amount, err := money.ParseAmount(r.Amount.String())
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("revenue %d: %s", i, err))
		}
		revenues[i] = models.Revenue{Type: revenueType, Amount: amount, UserID: userID}
		amounts[i] = amount
	}
	total := money.Sum(amounts...)
	if !money.InRange(total) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "revenues: "+money.ErrAmountTooLarge.Error())
	}

	budget := &models.Budget{Category: name, Amount: total, UserID: userID}
	period := &models.Period{Period: label, StartDate: startDate}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(budget).Error; err != nil {
			return apperrors.Storage("insert budget", err)
		}
		for i := range revenues {
			revenues[i].BudgetID = budget.ID
		}
		if err := insertRows(ctx, tx, "insert revenues", revenues); err != nil {
			return err
		}
		period.BudgetID = budget.ID
		if err := tx.Create(period).Error; err != nil {
			return apperrors.Storage("insert period", err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError("commit budget", err)
	}

	budget.Revenues = revenues
	budget.Period = period

	publish(ctx, s.events, events.Event{
		Type:     events.BudgetCreated,
		UserID:   userID,
		BudgetID: budget.ID,
		Amount:   total.StringFixed(2),
		Balance:  budget.Amount.StringFixed(2),
	})

	return &BudgetResult{
		Budget:    budget,
		Name:      name,
		Period:    label,
		StartDate: startDate.Format(validator.DateLayout),
		Revenues:  in.Revenues,
	}, nil
}

// GetBudgets returns every budget of the user with revenues and period.
func (s *budgetService) GetBudgets(ctx context.Context, userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.WithContext(ctx).
		Preload("Revenues").
		Preload("Period").
		Where("user_id = ?", userID).
		Order("id").
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Storage("list budgets", err)
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}
	return budgets, nil
}

// GetBudget returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudget(ctx context.Context, userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).
		Preload("Revenues").
		Preload("Period").
		Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Storage("get budget", err)
	}
	return &budget, nil
}

// budgetChildren lists the dependent tables of a budget in deletion order.
var budgetChildren = []struct {
	step  string
	model interface{}
}{
	{"delete expenses", &models.Expense{}},
	{"delete transactions", &models.Transaction{}},
	{"delete savings", &models.Saving{}},
	{"delete revenues", &models.Revenue{}},
	{"delete period", &models.Period{}},
}

// DeleteBudget removes a budget and every row that depends on it.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := lockBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		for _, child := range budgetChildren {
			if err := tx.Where("budget_id = ?", budget.ID).Delete(child.model).Error; err != nil {
				return apperrors.Storage(child.step, err)
			}
		}
		result := tx.Delete(budget)
		if result.Error != nil {
			return apperrors.Storage("delete budget", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrBudgetNotFound
		}
		return nil
	})
	if err != nil {
		return asAppError("commit budget deletion", err)
	}

	publish(ctx, s.events, events.Event{
		Type:     events.BudgetDeleted,
		UserID:   userID,
		BudgetID: budgetID,
	})
	return nil
}
