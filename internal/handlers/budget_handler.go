package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/services"
)

// BudgetHandler handles budget lifecycle requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// CreateBudgetRequest represents the request body for opening a budget.
// An empty revenues list opens a budget with a zero balance.
type CreateBudgetRequest struct {
	Name      string                  `json:"name" binding:"required,max=255"`
	Period    string                  `json:"period" binding:"required,period_label"`
	StartDate string                  `json:"start_date" binding:"required"`
	Revenues  []services.RevenueInput `json:"revenues" binding:"required"`
}

// CreateBudget opens a budget funded by revenues
// @Summary     Create budget
// @Description Open a budget whose balance is the sum of its revenues
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget data"
// @Success     201 {object} services.BudgetResult
// @Failure     400 {object} ErrorResponse
// @Failure     401 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.budgetService.CreateBudget(c.Request.Context(), userID, services.CreateBudgetInput{
		Name:      req.Name,
		Period:    req.Period,
		StartDate: req.StartDate,
		Revenues:  req.Revenues,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreateBudget, "budget", result.Budget.ID, c.ClientIP(),
		map[string]interface{}{"name": result.Name, "amount": result.Budget.Amount.StringFixed(2)})

	c.JSON(http.StatusCreated, result)
}

// GetBudgets lists the user's budgets
// @Summary     List budgets
// @Description Get every budget of the authenticated user with revenues and period
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.Budget
// @Failure     401 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetBudgets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudget returns one budget
// @Summary     Get budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} map[string]models.Budget
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget removes a budget with its revenues, period and postings
// @Summary     Delete budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} map[string]string
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteBudget, "budget", budgetID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
