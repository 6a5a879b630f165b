package services

import (
	"testing"

	"ledgerly/internal/testutil"
)

func TestTotalIncome(t *testing.T) {
	t.Run("empty_data_is_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.TotalIncome(user.ID)
		testutil.AssertNoError(t, err)
		if summary.TotalIncome != 0 {
			t.Errorf("expected 0 for empty data, got %d", summary.TotalIncome)
		}
	})

	t.Run("goals_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, user.ID, 15000)
		testutil.CreateTestGoal(t, db, user.ID, 5000)

		summary, err := svc.TotalIncome(user.ID)
		testutil.AssertNoError(t, err)
		if summary.TotalSavings != 20000 {
			t.Errorf("expected total savings 20000, got %d", summary.TotalSavings)
		}
		if summary.TotalInvestmentValue != 0 {
			t.Errorf("expected investment value 0, got %d", summary.TotalInvestmentValue)
		}
		if summary.TotalIncome != 20000 {
			t.Errorf("expected total income 20000, got %d", summary.TotalIncome)
		}
	})

	t.Run("goals_and_investments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, user.ID, 10000)
		testutil.CreateTestInvestment(t, db, user.ID, 4, 2500)  // 10000
		testutil.CreateTestInvestment(t, db, user.ID, 1.5, 2000) // 3000

		summary, err := svc.TotalIncome(user.ID)
		testutil.AssertNoError(t, err)
		if summary.TotalInvestmentValue != 13000 {
			t.Errorf("expected investment value 13000, got %d", summary.TotalInvestmentValue)
		}
		if summary.TotalIncome != 23000 {
			t.Errorf("expected total income 23000, got %d", summary.TotalIncome)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, other.ID, 77777)
		testutil.CreateTestInvestment(t, db, other.ID, 10, 10000)

		summary, err := svc.TotalIncome(user.ID)
		testutil.AssertNoError(t, err)
		if summary.TotalIncome != 0 {
			t.Errorf("expected 0, got %d (leaked another user's records)", summary.TotalIncome)
		}
	})
}
