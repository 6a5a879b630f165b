package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
	"ledgerly/internal/services"
)

// ExpenseHandler handles expense and balance requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	Amount        int64                `json:"amount" binding:"required,gt=0"`
	Category      string               `json:"category" binding:"required,min=1,max=100"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,payment_method"`
	Date          time.Time            `json:"date" binding:"required"`
	Description   string               `json:"description" binding:"max=500"`
}

// UpdateExpenseRequest represents the request payload for updating an
// expense. All fields are optional; omitted fields are left untouched.
type UpdateExpenseRequest struct {
	Amount        *int64                `json:"amount" binding:"omitempty,gt=0"`
	Category      *string               `json:"category" binding:"omitempty,min=1,max=100"`
	PaymentMethod *models.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
	Date          *time.Time            `json:"date"`
	Description   *string               `json:"description" binding:"omitempty,max=500"`
}

// SetBalanceRequest represents the request payload for overwriting the balance.
type SetBalanceRequest struct {
	Balance *int64 `json:"balance" binding:"required"`
}

// CreateExpense records an expense and debits the balance.
// @Summary     Create expense
// @Description Record a new expense; the amount is debited from the balance
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, req.Amount, req.Category, req.PaymentMethod, req.Date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"amount": req.Amount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses lists all of the caller's expenses, newest first.
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Expense "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.GetUserExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// UpdateExpense edits an owned expense; an amount change adjusts the
// balance by the difference.
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, c.Param("id"), services.ExpenseUpdateFields{
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
		Description:   req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an owned expense and refunds its amount.
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// GetRecentExpenses returns the most recent expenses by date.
// @Summary     Recent expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of expenses (default 5)"
// @Success     200 {array} models.Expense "Recent expenses"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/activity/recent [get]
func (h *ExpenseHandler) GetRecentExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := pagination.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a number"))
			return
		}
	}

	expenses, err := h.expenseService.GetRecentExpenses(userID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GetExpensesPaginated returns one page of expenses with paging metadata.
// @Summary     Paginated expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page  query int false "Page number (default 1)"
// @Param       limit query int false "Items per page (default 5, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Page of expenses"
// @Failure     400 {object} ErrorResponse "Non-numeric page or limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/paginated [get]
func (h *ExpenseHandler) GetExpensesPaginated(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "page and limit must be numbers"))
		return
	}

	result, err := h.expenseService.GetExpensesPage(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBalance reads the caller's balance.
// @Summary     Get balance
// @Tags        balance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]int64 "Current balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /balance [get]
func (h *ExpenseHandler) GetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.expenseService.GetBalance(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// SetBalance overwrites the caller's balance (manual correction).
// @Summary     Set balance
// @Tags        balance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBalanceRequest true "New balance"
// @Success     200 {object} map[string]int64 "New balance"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /balance [put]
func (h *ExpenseHandler) SetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance must be a number"))
		return
	}

	balance, err := h.expenseService.SetBalance(userID, *req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BALANCE", "user", userID, c.ClientIP(),
		map[string]any{"balance": balance})

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
