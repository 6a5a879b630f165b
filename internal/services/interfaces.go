package services

import (
	"time"

	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, username, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// ExpenseUpdateFields holds optional field changes for an expense update.
// Nil fields are left untouched.
type ExpenseUpdateFields struct {
	Amount        *int64
	Category      *string
	PaymentMethod *models.PaymentMethod
	Date          *time.Time
	Description   *string
}

// ExpenseServicer defines the contract for expense business logic,
// including balance reconciliation. Every expense mutation adjusts the
// owning user's balance in the same database transaction.
type ExpenseServicer interface {
	CreateExpense(userID string, amount int64, category string, paymentMethod models.PaymentMethod, date time.Time, description string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	GetUserExpenses(userID string) ([]models.Expense, error)
	GetRecentExpenses(userID string, limit int) ([]models.Expense, error)
	GetExpensesPage(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetBalance(userID string) (int64, error)
	SetBalance(userID string, balance int64) (int64, error)
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID, goalName string, targetAmount, currentSavings int64, deadline time.Time, description string) (*models.SavingsGoal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error)
	AddSavings(userID, goalID string, amount int64) (*models.SavingsGoal, error)
	DeleteGoal(userID, goalID string) error
}

// InvestmentServicer defines the contract for investment business logic.
type InvestmentServicer interface {
	CreateInvestment(userID, assetName string, assetType models.AssetType, quantity float64, purchasePrice, currentPrice int64) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	DeleteInvestment(userID, investmentID string) error
}

// IncomeSummary is the derived, never-persisted aggregate income breakdown.
type IncomeSummary struct {
	TotalSavings         int64 `json:"total_savings"`
	TotalInvestmentValue int64 `json:"total_investment_value"`
	TotalIncome          int64 `json:"total_income"`
}

// SummaryServicer defines the contract for aggregate income computation.
type SummaryServicer interface {
	TotalIncome(userID string) (*IncomeSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
