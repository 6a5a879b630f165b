package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ledgerly/internal/handlers"
	"ledgerly/internal/logger"
	"ledgerly/internal/middleware"
	"ledgerly/internal/models"
	"ledgerly/internal/services"
	"ledgerly/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// userCounter provides unique signup identities.
var userCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database, wired the same way as cmd/api.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Expense{},
		&models.SavingsGoal{},
		&models.Investment{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Services
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(db)
	investmentService := services.NewInvestmentService(db)
	summaryService := services.NewSummaryService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService, auditService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/activity/recent", expenseHandler.GetRecentExpenses)
	expenses.GET("/paginated", expenseHandler.GetExpensesPaginated)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	protected.GET("/balance", expenseHandler.GetBalance)
	protected.PUT("/balance", expenseHandler.SetBalance)

	protected.POST("/saving-goals", goalHandler.CreateGoal)
	protected.GET("/saving-goals", goalHandler.GetGoals)
	protected.GET("/saved-goals", goalHandler.GetGoals)
	protected.PUT("/saving-goals/:id", goalHandler.AddSavings)
	protected.DELETE("/saving-goals/:id", goalHandler.DeleteGoal)

	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	protected.GET("/total-income", summaryHandler.GetTotalIncome)

	return &testApp{DB: db, Router: router}
}

// request performs an HTTP request against the test router. A non-empty
// token is set as a bearer credential.
func (app *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// signupUser registers a fresh user and returns its token and ID.
func (app *testApp) signupUser(t *testing.T) (token, userID string) {
	t.Helper()

	n := userCounter.Add(1)
	w := app.request(t, http.MethodPost, "/signup", "", map[string]any{
		"name":     fmt.Sprintf("Test User %d", n),
		"username": fmt.Sprintf("itestuser%d", n),
		"email":    fmt.Sprintf("itestuser%d@test.com", n),
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	return resp.Token, resp.User.ID
}

// setUserBalance overwrites a user's balance through the API.
func (app *testApp) setUserBalance(t *testing.T, token string, balance int64) {
	t.Helper()

	w := app.request(t, http.MethodPut, "/balance", token, map[string]any{"balance": balance})
	if w.Code != http.StatusOK {
		t.Fatalf("set balance failed with status %d: %s", w.Code, w.Body.String())
	}
}

// getBalance reads the user's balance through the API.
func (app *testApp) getBalance(t *testing.T, token string) int64 {
	t.Helper()

	w := app.request(t, http.MethodGet, "/balance", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get balance failed with status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Balance int64 `json:"balance"`
	}
	decode(t, w, &resp)
	return resp.Balance
}
