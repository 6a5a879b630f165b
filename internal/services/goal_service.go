package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// goalService handles savings-goal business logic. Goal savings form a
// ledger of their own: contributions never touch the user's balance.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal for a user.
func (s *goalService) CreateGoal(userID, goalName string, targetAmount, currentSavings int64, deadline time.Time, description string) (*models.SavingsGoal, error) {
	if goalName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if currentSavings < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current savings cannot be negative")
	}

	goal := &models.SavingsGoal{
		UserID:         userID,
		GoalName:       goalName,
		TargetAmount:   targetAmount,
		CurrentSavings: currentSavings,
		Deadline:       deadline,
		Description:    description,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals retrieves a paginated list of the user's savings goals.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error) {
	page.Clamp()

	base := s.db.Model(&models.SavingsGoal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingsGoal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("deadline ASC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.Limit, totalItems)
	return &result, nil
}

// AddSavings increments an owned goal's current savings. The increment is
// atomic at the store, so concurrent contributions never lose an update,
// and CurrentSavings only ever grows through this path.
func (s *goalService) AddSavings(userID, goalID string, amount int64) (*models.SavingsGoal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	goal, err := firstOwned[models.SavingsGoal](s.db, goalID, userID, apperrors.ErrGoalNotFound)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(goal).
		UpdateColumn("current_savings", gorm.Expr("current_savings + ?", amount)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Where("id = ?", goal.ID).First(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// DeleteGoal removes an owned savings goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := firstOwned[models.SavingsGoal](s.db, goalID, userID, apperrors.ErrGoalNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
