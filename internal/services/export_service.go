package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/export"
	"wisenkap/internal/uuid"
)

// exportService renders statements of a user's transactions.
type exportService struct {
	db    *gorm.DB
	users UserServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB, users UserServicer) ExportServicer {
	return &exportService{db: db, users: users}
}

// ExportTransactions renders the user's transactions dated within
// [startDate, endDate] as a PDF statement.
func (s *exportService) ExportTransactions(ctx context.Context, userID uint, startDate, endDate string) (*ExportFile, error) {
	from, err := parseDate(strings.TrimSpace(startDate))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must be a date (YYYY-MM-DD)")
	}
	to, err := parseDate(strings.TrimSpace(endDate))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must be a date (YYYY-MM-DD)")
	}
	from, to = calendarDay(from), calendarDay(to)
	if from.After(to) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must not be after end_date")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.transactionsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	statement := &export.Statement{
		Owner:    user.Email,
		Currency: user.Currency,
		From:     from,
		To:       to,
		Rows:     make([]export.Row, len(records)),
	}
	for i, r := range records {
		statement.Rows[i] = export.Row{
			Date:           r.Date,
			BudgetCategory: r.BudgetCategory,
			Category:       r.Category,
			Comment:        r.Comment,
			Amount:         r.Amount,
		}
	}

	data, err := export.BuildTransactionsPDF(statement)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ExportFile{
		Name:        fmt.Sprintf("export_%s.pdf", uuid.New()),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// transactionsBetween lists the user's transactions dated on any calendar day
// from through to, oldest first.
func (s *exportService) transactionsBetween(ctx context.Context, userID uint, from, to time.Time) ([]TransactionRecord, error) {
	var records []TransactionRecord
	err := s.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.id, transactions.budget_id, transactions.category, transactions.amount, "+
			"transactions.comment, transactions.date, budgets.category AS budget_category").
		Joins("JOIN budgets ON budgets.id = transactions.budget_id").
		Where("budgets.user_id = ? AND transactions.date >= ? AND transactions.date < ?",
			userID, calendarDay(from), calendarDay(to).AddDate(0, 0, 1)).
		Order("transactions.date, transactions.id").
		Scan(&records).Error
	if err != nil {
		return nil, apperrors.Storage("list transactions for export", err)
	}
	return records, nil
}
