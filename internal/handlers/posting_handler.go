package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/money"
	"wisenkap/internal/services"
)

// PostingHandler handles transactions, savings and expenses posted against budgets
type PostingHandler struct {
	postingService services.PostingServicer
	auditService   services.AuditServicer
}

// NewPostingHandler creates a new PostingHandler
func NewPostingHandler(postingService services.PostingServicer, auditService services.AuditServicer) *PostingHandler {
	return &PostingHandler{postingService: postingService, auditService: auditService}
}

// TransactionItem is one spending line. Date defaults to today.
type TransactionItem struct {
	Category string      `json:"category" binding:"required,max=255"`
	Amount   money.Input `json:"amount" swaggertype:"string" example:"12.50"`
	Comment  string      `json:"comment" binding:"max=500"`
	Date     string      `json:"date" example:"2024-01-31"`
}

// PostTransactionsRequest represents the request body for posting transactions.
type PostTransactionsRequest struct {
	Transactions []TransactionItem `json:"transactions" binding:"required,min=1,dive"`
}

// ExpenseItem is one planned expense line.
type ExpenseItem struct {
	Category string      `json:"category" binding:"required,max=255"`
	Amount   money.Input `json:"amount" swaggertype:"string" example:"800"`
}

// PostExpensesRequest represents the request body for posting expenses.
type PostExpensesRequest struct {
	Expenses []ExpenseItem `json:"expenses" binding:"required,min=1,dive"`
}

// PostSavingRequest represents the request body for posting a saving.
type PostSavingRequest struct {
	Amount money.Input `json:"amount" swaggertype:"string" example:"100"`
	Date   string      `json:"date" example:"2024-01-31"`
}

// PostTransactions records transactions and decrements the budget balance
// @Summary     Post transactions
// @Description Record spending lines against a budget; the balance drops by their sum
// @Tags        postings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Budget ID"
// @Param       request body PostTransactionsRequest true "Transactions"
// @Success     201 {object} services.PostingResult
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /budgets/{id}/transactions [post]
func (h *PostingHandler) PostTransactions(c *gin.Context) {
	userID, budgetID, ok := h.target(c)
	if !ok {
		return
	}

	var req PostTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]services.TransactionInput, len(req.Transactions))
	for i, t := range req.Transactions {
		items[i] = services.TransactionInput{Category: t.Category, Amount: t.Amount, Comment: t.Comment, Date: t.Date}
	}

	result, err := h.postingService.PostTransactions(c.Request.Context(), userID, budgetID, items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditPostTransactions, "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"count": len(items), "total": result.Total.StringFixed(2)})
	c.JSON(http.StatusCreated, result)
}

// PostSaving records a saving and decrements the budget balance
// @Summary     Post saving
// @Tags        postings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Budget ID"
// @Param       request body PostSavingRequest true "Saving"
// @Success     201 {object} services.PostingResult
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /budgets/{id}/savings [post]
func (h *PostingHandler) PostSaving(c *gin.Context) {
	userID, budgetID, ok := h.target(c)
	if !ok {
		return
	}

	var req PostSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.postingService.PostSaving(c.Request.Context(), userID, budgetID, services.SavingInput{
		Amount: req.Amount,
		Date:   req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditPostSaving, "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"total": result.Total.StringFixed(2)})
	c.JSON(http.StatusCreated, result)
}

// PostExpenses records planned expenses; the budget balance is unchanged
// @Summary     Post expenses
// @Tags        postings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Budget ID"
// @Param       request body PostExpensesRequest true "Expenses"
// @Success     201 {object} services.PostingResult
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /budgets/{id}/expenses [post]
func (h *PostingHandler) PostExpenses(c *gin.Context) {
	userID, budgetID, ok := h.target(c)
	if !ok {
		return
	}

	var req PostExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]services.ExpenseInput, len(req.Expenses))
	for i, e := range req.Expenses {
		items[i] = services.ExpenseInput{Category: e.Category, Amount: e.Amount}
	}

	result, err := h.postingService.PostExpenses(c.Request.Context(), userID, budgetID, items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditPostExpenses, "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"count": len(items), "total": result.Total.StringFixed(2)})
	c.JSON(http.StatusCreated, result)
}

// GetTransactions lists the user's transactions across budgets
// @Summary     List transactions
// @Description Every transaction of the authenticated user with the category of its budget, newest first
// @Tags        postings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.TransactionRecord
// @Failure     401 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /transactions [get]
func (h *PostingHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.postingService.GetTransactions(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": records})
}

// GetSavings lists the user's savings across budgets
// @Summary     List savings
// @Tags        postings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.SavingRecord
// @Failure     401 {object} ErrorResponse
// @Failure     500 {object} ErrorResponse
// @Router      /savings [get]
func (h *PostingHandler) GetSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.postingService.GetSavings(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savings": records})
}

// target resolves the caller and the budget in the path, answering the
// request itself when either is invalid.
func (h *PostingHandler) target(c *gin.Context) (userID, budgetID uint, ok bool) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return 0, 0, false
	}
	budgetID, err = parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return 0, 0, false
	}
	return userID, budgetID, true
}
