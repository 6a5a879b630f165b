package services

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

// summaryService computes derived aggregates over goals and investments.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// TotalIncome returns the sum of savings across the user's goals plus the
// market value of all holdings. The two aggregate queries run concurrently.
// Users with no goals or no investments contribute zero for that term; the
// computation never fails on empty collections.
func (s *summaryService) TotalIncome(userID string) (*IncomeSummary, error) {
	var (
		totalSavings    int64
		investmentValue float64
	)

	var g errgroup.Group
	g.Go(func() error {
		return s.db.Model(&models.SavingsGoal{}).
			Where("user_id = ?", userID).
			Select("COALESCE(SUM(current_savings), 0)").
			Scan(&totalSavings).Error
	})
	g.Go(func() error {
		return s.db.Model(&models.Investment{}).
			Where("user_id = ?", userID).
			Select("COALESCE(SUM(quantity * current_price), 0)").
			Scan(&investmentValue).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totalInvestmentValue := int64(math.Round(investmentValue))
	return &IncomeSummary{
		TotalSavings:         totalSavings,
		TotalInvestmentValue: totalInvestmentValue,
		TotalIncome:          totalSavings + totalInvestmentValue,
	}, nil
}
