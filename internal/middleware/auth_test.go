package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/requestdata"
	"github.com/moduhak/moduhak-backend/internal/services"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type singleUserRepo struct {
	user *types.User
}

func (f *singleUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) error {
	f.user = user
	return nil
}

func (f *singleUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID string) (*types.User, error) {
	if f.user != nil && f.user.UserID == userID {
		return f.user, nil
	}
	return nil, nil
}

func (f *singleUserRepo) Exists(ctx context.Context, tx *gorm.DB, userID string) (bool, error) {
	return f.user != nil && f.user.UserID == userID, nil
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	repo := &singleUserRepo{}
	authService := services.NewAuthService(log, repo, "test-secret", time.Hour)
	ctx := context.Background()
	if err := authService.RegisterUser(ctx, "user-1", "pw", "이름"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	_, token, err := authService.LoginUser(ctx, "user-1", "pw")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	var seenUserID string
	router := gin.New()
	router.Use(NewAuthMiddleware(log, authService).RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
			seenUserID = rd.UserID
		}
		c.Status(http.StatusOK)
	})

	// No token.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	// Garbage token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", rec.Code)
	}

	// Valid token reaches the handler with the user id attached.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d", rec.Code)
	}
	if seenUserID != "user-1" {
		t.Fatalf("expected user id in request context, got %q", seenUserID)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated request id header")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "fixed-id" {
		t.Fatalf("expected caller-supplied id echoed, got %q", got)
	}
}
