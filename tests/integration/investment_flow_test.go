package integration

import (
	"net/http"
	"testing"
)

type investmentPayload struct {
	ID        string  `json:"id"`
	AssetName string  `json:"asset_name"`
	Type      string  `json:"type"`
	Quantity  float64 `json:"quantity"`
}

type investmentPage struct {
	Data       []investmentPayload `json:"data"`
	TotalItems int64               `json:"total_items"`
}

// createInvestment records a holding through the API and returns its ID.
func (app *testApp) createInvestment(t *testing.T, token, name, assetType string, quantity float64, purchasePrice, currentPrice int64) string {
	t.Helper()

	w := app.request(t, http.MethodPost, "/investments", token, map[string]any{
		"asset_name":     name,
		"type":           assetType,
		"quantity":       quantity,
		"purchase_price": purchasePrice,
		"current_price":  currentPrice,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create investment failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Investment investmentPayload `json:"investment"`
	}
	decode(t, w, &resp)
	return resp.Investment.ID
}

func TestInvestmentLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t)

	id := app.createInvestment(t, token, "ACME Corp", "stock", 10, 15000, 17500)
	app.createInvestment(t, token, "Total Market ETF", "etf", 2.5, 40000, 42000)

	w := app.request(t, http.MethodGet, "/investments", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list investments failed with status %d: %s", w.Code, w.Body.String())
	}
	var page investmentPage
	decode(t, w, &page)
	if page.TotalItems != 2 {
		t.Fatalf("expected 2 investments, got %d", page.TotalItems)
	}

	w = app.request(t, http.MethodDelete, "/investments/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete investment failed with status %d: %s", w.Code, w.Body.String())
	}

	w = app.request(t, http.MethodGet, "/investments", token, nil)
	decode(t, w, &page)
	if page.TotalItems != 1 {
		t.Errorf("expected 1 investment after delete, got %d", page.TotalItems)
	}
}

func TestInvestmentValidation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"unknown_type", map[string]any{"asset_name": "x", "type": "lottery_ticket", "quantity": 1, "purchase_price": 100, "current_price": 100}},
		{"zero_quantity", map[string]any{"asset_name": "x", "type": "stock", "quantity": 0, "purchase_price": 100, "current_price": 100}},
		{"negative_price", map[string]any{"asset_name": "x", "type": "stock", "quantity": 1, "purchase_price": -5, "current_price": 100}},
		{"missing_name", map[string]any{"type": "stock", "quantity": 1, "purchase_price": 100, "current_price": 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := app.request(t, http.MethodPost, "/investments", token, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestInvestmentOwnership(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := app.signupUser(t)
	otherToken, _ := app.signupUser(t)

	id := app.createInvestment(t, ownerToken, "Private holding", "crypto", 0.5, 300000, 350000)

	w := app.request(t, http.MethodDelete, "/investments/"+id, otherToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting a foreign investment, got %d", w.Code)
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, w, &resp)
	if resp.Error.Code != "INVESTMENT_NOT_FOUND" {
		t.Errorf("expected INVESTMENT_NOT_FOUND, got %q", resp.Error.Code)
	}

	w = app.request(t, http.MethodGet, "/investments", otherToken, nil)
	var page investmentPage
	decode(t, w, &page)
	if page.TotalItems != 0 {
		t.Errorf("expected empty list for other user, got %d", page.TotalItems)
	}
}

type incomeSummary struct {
	TotalSavings         int64 `json:"total_savings"`
	TotalInvestmentValue int64 `json:"total_investment_value"`
	TotalIncome          int64 `json:"total_income"`
}

func (app *testApp) totalIncome(t *testing.T, token string) incomeSummary {
	t.Helper()

	w := app.request(t, http.MethodGet, "/total-income", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("total income failed with status %d: %s", w.Code, w.Body.String())
	}
	var summary incomeSummary
	decode(t, w, &summary)
	return summary
}

func TestTotalIncomeEmpty(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t)

	summary := app.totalIncome(t, token)
	if summary.TotalSavings != 0 || summary.TotalInvestmentValue != 0 || summary.TotalIncome != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestTotalIncomeAggregation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t)

	app.createGoal(t, token, "House deposit", 1000000, 40000)
	goalID := app.createGoal(t, token, "Car", 500000, 0)
	w := app.request(t, http.MethodPut, "/saving-goals/"+goalID, token, map[string]any{"amount": 10000})
	if w.Code != http.StatusOK {
		t.Fatalf("add savings failed with status %d: %s", w.Code, w.Body.String())
	}

	// Market values: 4 * 2500 = 10000 and 1.5 * 2000 = 3000.
	app.createInvestment(t, token, "ACME Corp", "stock", 4, 2000, 2500)
	app.createInvestment(t, token, "Bond fund", "bond", 1.5, 1800, 2000)

	summary := app.totalIncome(t, token)
	if summary.TotalSavings != 50000 {
		t.Errorf("expected total savings 50000, got %d", summary.TotalSavings)
	}
	if summary.TotalInvestmentValue != 13000 {
		t.Errorf("expected total investment value 13000, got %d", summary.TotalInvestmentValue)
	}
	if summary.TotalIncome != 63000 {
		t.Errorf("expected total income 63000, got %d", summary.TotalIncome)
	}

	// Another user's summary is unaffected.
	otherToken, _ := app.signupUser(t)
	other := app.totalIncome(t, otherToken)
	if other.TotalIncome != 0 {
		t.Errorf("expected zero income for other user, got %d", other.TotalIncome)
	}
}
