package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// expenseService owns the expense ledger and keeps the user's balance
// reconciled with it. The invariant it maintains: at any point, balance
// equals the balance at account creation (or the last manual override)
// minus the sum of all live expense amounts.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// applyBalanceDelta is the single write path for balance changes. It runs
// as an atomic SQL increment, never a read-modify-write, so two interleaved
// expense mutations for the same user cannot drop an update.
func applyBalanceDelta(tx *gorm.DB, userID string, delta int64) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CreateExpense persists a new expense and debits the owner's balance in
// the same transaction.
func (s *expenseService) CreateExpense(userID string, amount int64, category string, paymentMethod models.PaymentMethod, date time.Time, description string) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" || paymentMethod == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category and payment method are required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	expense := &models.Expense{
		UserID:        userID,
		Amount:        amount,
		Category:      category,
		PaymentMethod: paymentMethod,
		Date:          date,
		Description:   description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyBalanceDelta(tx, userID, -amount)
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense applies field changes to an owned expense. An amount change
// adjusts the balance by oldAmount - newAmount: refund the old debit, apply
// the new one.
func (s *expenseService) UpdateExpense(userID, expenseID string, fields ExpenseUpdateFields) (*models.Expense, error) {
	expense, err := firstOwned[models.Expense](s.db, expenseID, userID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	var delta int64

	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		delta = expense.Amount - *fields.Amount
		updates["amount"] = *fields.Amount
	}
	if fields.Category != nil && *fields.Category != "" {
		updates["category"] = *fields.Category
	}
	if fields.PaymentMethod != nil && *fields.PaymentMethod != "" {
		updates["payment_method"] = *fields.PaymentMethod
	}
	if fields.Date != nil && !fields.Date.IsZero() {
		updates["date"] = *fields.Date
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}

	if len(updates) == 0 {
		return expense, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(expense).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if delta != 0 {
			return applyBalanceDelta(tx, userID, delta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", expense.ID).First(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense removes an owned expense and credits its amount back to
// the balance.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := firstOwned[models.Expense](s.db, expenseID, userID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyBalanceDelta(tx, userID, expense.Amount)
	})
}

// GetUserExpenses returns all of a user's expenses, newest first.
func (s *expenseService) GetUserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetRecentExpenses returns the user's most recent expenses by date.
func (s *expenseService) GetRecentExpenses(userID string, limit int) ([]models.Expense, error) {
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpensesPage returns one page of the user's expenses, newest first.
func (s *expenseService) GetExpensesPage(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Clamp()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.Limit, totalItems)
	return &result, nil
}

// GetBalance reads the user's current balance.
func (s *expenseService) GetBalance(userID string) (int64, error) {
	var user models.User
	if err := s.db.Select("balance").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.Balance, nil
}

// SetBalance overwrites the user's balance (manual correction). The stored
// value becomes the new reconciliation baseline.
func (s *expenseService) SetBalance(userID string, balance int64) (int64, error) {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("balance", balance)
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrUserNotFound
	}
	return balance, nil
}
