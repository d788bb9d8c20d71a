package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/models"
	"wisenkap/internal/money"
	"wisenkap/internal/services"
)

type mockPostingService struct {
	postTransactionsFn func(userID, budgetID uint, items []services.TransactionInput) (*services.PostingResult, error)
	postSavingFn       func(userID, budgetID uint, in services.SavingInput) (*services.PostingResult, error)
	postExpensesFn     func(userID, budgetID uint, items []services.ExpenseInput) (*services.PostingResult, error)
	transactions       []services.TransactionRecord
	savings            []services.SavingRecord
}

func (m *mockPostingService) PostTransactions(_ context.Context, userID, budgetID uint, items []services.TransactionInput) (*services.PostingResult, error) {
	if m.postTransactionsFn != nil {
		return m.postTransactionsFn(userID, budgetID, items)
	}
	return &services.PostingResult{Budget: &models.Budget{Base: models.Base{ID: budgetID}}}, nil
}

func (m *mockPostingService) PostSaving(_ context.Context, userID, budgetID uint, in services.SavingInput) (*services.PostingResult, error) {
	if m.postSavingFn != nil {
		return m.postSavingFn(userID, budgetID, in)
	}
	return &services.PostingResult{Budget: &models.Budget{Base: models.Base{ID: budgetID}}}, nil
}

func (m *mockPostingService) PostExpenses(_ context.Context, userID, budgetID uint, items []services.ExpenseInput) (*services.PostingResult, error) {
	if m.postExpensesFn != nil {
		return m.postExpensesFn(userID, budgetID, items)
	}
	return &services.PostingResult{Budget: &models.Budget{Base: models.Base{ID: budgetID}}}, nil
}

func (m *mockPostingService) GetTransactions(_ context.Context, _ uint) ([]services.TransactionRecord, error) {
	if m.transactions == nil {
		return []services.TransactionRecord{}, nil
	}
	return m.transactions, nil
}

func (m *mockPostingService) GetSavings(_ context.Context, _ uint) ([]services.SavingRecord, error) {
	if m.savings == nil {
		return []services.SavingRecord{}, nil
	}
	return m.savings, nil
}

var _ services.PostingServicer = (*mockPostingService)(nil)

func setupPostingRouter(handler *PostingHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("", injectUserID(1))
	g.POST("/budgets/:id/transactions", handler.PostTransactions)
	g.POST("/budgets/:id/savings", handler.PostSaving)
	g.POST("/budgets/:id/expenses", handler.PostExpenses)
	g.GET("/transactions", handler.GetTransactions)
	g.GET("/savings", handler.GetSavings)
	return r
}

func TestPostingHandler_PostTransactions(t *testing.T) {
	t.Run("returns 201 with the new balance", func(t *testing.T) {
		var gotBudget uint
		var gotItems []services.TransactionInput
		svc := &mockPostingService{
			postTransactionsFn: func(_, budgetID uint, items []services.TransactionInput) (*services.PostingResult, error) {
				gotBudget, gotItems = budgetID, items
				return &services.PostingResult{
					Budget: &models.Budget{Base: models.Base{ID: budgetID}, Amount: decimal.RequireFromString("1150")},
					Total:  decimal.RequireFromString("50"),
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPostingRouter(NewPostingHandler(svc, audit))

		body := `{"transactions":[{"category":"food","amount":"30","comment":"market","date":"2024-01-05"},{"category":"fuel","amount":20}]}`
		rec := doRequest(r, "POST", "/budgets/3/transactions", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotBudget != 3 || len(gotItems) != 2 {
			t.Fatalf("unexpected call budget=%d items=%d", gotBudget, len(gotItems))
		}
		if gotItems[0].Amount != money.Input("30") || gotItems[1].Amount != money.Input("20") || gotItems[0].Date != "2024-01-05" {
			t.Errorf("unexpected items %+v", gotItems)
		}
		result := parseJSON(t, rec)
		if result["total"] != "50" {
			t.Errorf("expected total 50, got %v", result["total"])
		}
		if result["budget"].(map[string]interface{})["amount"] != "1150" {
			t.Errorf("expected balance 1150, got %v", result["budget"])
		}
		if len(audit.actions) != 1 || audit.actions[0] != services.AuditPostTransactions {
			t.Errorf("expected posting audit, got %v", audit.actions)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty list", `{"transactions":[]}`},
		{"missing list", `{}`},
		{"missing category", `{"transactions":[{"amount":"10"}]}`},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			r := setupPostingRouter(NewPostingHandler(&mockPostingService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/budgets/3/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 404 for a foreign budget", func(t *testing.T) {
		svc := &mockPostingService{
			postTransactionsFn: func(uint, uint, []services.TransactionInput) (*services.PostingResult, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupPostingRouter(NewPostingHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budgets/3/transactions", `{"transactions":[{"category":"food","amount":"1"}]}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})
}

func TestPostingHandler_PostSaving(t *testing.T) {
	var got services.SavingInput
	svc := &mockPostingService{
		postSavingFn: func(_, budgetID uint, in services.SavingInput) (*services.PostingResult, error) {
			got = in
			return &services.PostingResult{
				Budget: &models.Budget{Base: models.Base{ID: budgetID}, Amount: decimal.RequireFromString("900")},
				Total:  decimal.RequireFromString("100"),
				Saving: &models.Saving{Base: models.Base{ID: 1}, BudgetID: budgetID, Amount: decimal.RequireFromString("100")},
			}, nil
		},
	}
	r := setupPostingRouter(NewPostingHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "POST", "/budgets/2/savings", `{"amount":"100","date":"2024-02-01"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Amount != "100" || got.Date != "2024-02-01" {
		t.Errorf("unexpected input %+v", got)
	}
	if _, ok := parseJSON(t, rec)["saving"].(map[string]interface{}); !ok {
		t.Error("expected saving in response")
	}
}

func TestPostingHandler_PostExpenses(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		svc := &mockPostingService{
			postExpensesFn: func(_, budgetID uint, items []services.ExpenseInput) (*services.PostingResult, error) {
				return &services.PostingResult{
					Budget:   &models.Budget{Base: models.Base{ID: budgetID}, Amount: decimal.RequireFromString("1200")},
					Total:    decimal.RequireFromString("800"),
					Expenses: []models.Expense{{Category: items[0].Category, Amount: decimal.RequireFromString("800")}},
				}, nil
			},
		}
		r := setupPostingRouter(NewPostingHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budgets/2/expenses", `{"expenses":[{"category":"rent","amount":"800"}]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(parseJSON(t, rec)["expenses"].([]interface{})) != 1 {
			t.Error("expected one expense in response")
		}
	})

	t.Run("rejects invalid budget id", func(t *testing.T) {
		r := setupPostingRouter(NewPostingHandler(&mockPostingService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/budgets/0/expenses", `{"expenses":[{"category":"rent","amount":"800"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPostingHandler_Listings(t *testing.T) {
	svc := &mockPostingService{
		transactions: []services.TransactionRecord{{
			ID: 1, BudgetID: 2, Category: "food", Amount: decimal.RequireFromString("12.5"),
			Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), BudgetCategory: "Groceries",
		}},
	}
	r := setupPostingRouter(NewPostingHandler(svc, &mockAuditService{}))

	t.Run("transactions", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		records := parseJSON(t, rec)["transactions"].([]interface{})
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].(map[string]interface{})["budget_category"] != "Groceries" {
			t.Errorf("expected budget category, got %v", records[0])
		}
	})

	t.Run("savings empty list", func(t *testing.T) {
		rec := doRequest(r, "GET", "/savings", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(parseJSON(t, rec)["savings"].([]interface{})) != 0 {
			t.Error("expected empty savings")
		}
	})
}
