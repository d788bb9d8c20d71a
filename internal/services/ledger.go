package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wisenkap/internal/batch"
	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/events"
	"wisenkap/internal/logger"
	"wisenkap/internal/models"
	"wisenkap/internal/validator"
)

// insertChunkSize caps the rows of one multi-row INSERT.
const insertChunkSize = 100

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns it in UTC.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(validator.DateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// calendarDay truncates a UTC instant to midnight of its day.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// postingDate parses an optional posting date, defaulting to today.
func postingDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC().Truncate(time.Second), nil
	}
	return parseDate(raw)
}

// lockBudget loads a budget owned by userID and holds a row lock on it until
// tx ends. Foreign budgets are reported as missing.
func lockBudget(tx *gorm.DB, userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Storage("lock budget", err)
	}
	return &budget, nil
}

// insertRows writes rows through tx in chunks and returns once every chunk is
// stored or the first one failed. Statements of one transaction share a
// single connection, so chunks are written one at a time.
func insertRows[T any](ctx context.Context, tx *gorm.DB, step string, rows []T) error {
	bounds := batch.Chunks(len(rows), insertChunkSize)
	err := batch.Run(ctx, 1, len(bounds), func(ctx context.Context, i int) error {
		chunk := rows[bounds[i][0]:bounds[i][1]]
		if err := tx.WithContext(ctx).Create(&chunk).Error; err != nil {
			return apperrors.Storage(step, err)
		}
		return nil
	})
	return asAppError(step, err)
}

// asAppError leaves application errors as they are and reports anything else
// as a storage failure of the given step.
func asAppError(step string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Storage(step, err)
}

// publish emits a ledger event after commit. Delivery failures never fail the
// operation that caused them.
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if publisher == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Get().Warnw("failed to publish ledger event",
			"error", err,
			"type", event.Type,
			"budget_id", event.BudgetID,
		)
	}
}
