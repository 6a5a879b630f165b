package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testUser() *models.User {
	user := &models.User{Email: "ada@example.com"}
	user.ID = "0191b7a3-1111-7000-8000-000000000001"
	return user
}

func protectedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateAndParseToken(t *testing.T) {
	user := testUser()

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter()

	t.Run("missing_header", func(t *testing.T) {
		w := requestWithToken(router, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed_token", func(t *testing.T) {
		w := requestWithToken(router, "not-a-jwt")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid_token", func(t *testing.T) {
		token, err := GenerateToken(testUser())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		w := requestWithToken(router, token)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("accepted_just_before_expiry", func(t *testing.T) {
		// A 2s expiry is comfortably inside its window at request time.
		token, err := generateTokenWithExpiry(testUser(), 2*time.Second)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		w := requestWithToken(router, token)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 before expiry, got %d", w.Code)
		}
	})

	t.Run("rejected_after_expiry", func(t *testing.T) {
		token, err := generateTokenWithExpiry(testUser(), -time.Second)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		w := requestWithToken(router, token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 after expiry, got %d", w.Code)
		}
	})
}
