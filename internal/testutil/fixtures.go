package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"ledgerly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, unique email and
// username, and zero balance.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithBalance(t, db, 0)
}

// CreateTestUserWithBalance creates a user with the given balance (in cents).
func CreateTestUserWithBalance(t *testing.T, db *gorm.DB, balance int64) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	n := nextID()
	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", n),
		Username: fmt.Sprintf("user%d", n),
		Name:     fmt.Sprintf("Test User %d", n),
		Password: string(hash),
		Balance:  balance,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense with the given amount (in cents).
// Note: this writes the row directly and does not touch the balance; use the
// expense service when reconciliation matters.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount int64) *models.Expense {
	t.Helper()
	return CreateTestExpenseOnDate(t, db, userID, amount, time.Now())
}

// CreateTestExpenseOnDate creates an expense dated at the given time.
func CreateTestExpenseOnDate(t *testing.T, db *gorm.DB, userID string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:        userID,
		Amount:        amount,
		Category:      fmt.Sprintf("Category %d", nextID()),
		PaymentMethod: models.PaymentMethodCash,
		Date:          date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestGoal creates a savings goal with the given current savings.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, currentSavings int64) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		UserID:         userID,
		GoalName:       fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:   100000, // $1000.00
		CurrentSavings: currentSavings,
		Deadline:       time.Now().AddDate(1, 0, 0),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestInvestment creates a holding with the given quantity and
// current price (in cents).
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, quantity float64, currentPrice int64) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:        userID,
		AssetName:     fmt.Sprintf("Test Asset %d", nextID()),
		Type:          models.AssetTypeStock,
		Quantity:      quantity,
		PurchasePrice: currentPrice,
		CurrentPrice:  currentPrice,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
