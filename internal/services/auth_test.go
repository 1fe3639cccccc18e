package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type fakeUserRepo struct {
	users map[string]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*types.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) error {
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID string) (*types.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, tx *gorm.DB, userID string) (bool, error) {
	_, ok := f.users[userID]
	return ok, nil
}

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("logger: %v", err)
	}
	return log
}

func TestAuthServiceRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testLogger(t), repo, "test-secret", time.Hour)
	ctx := context.Background()

	if err := svc.RegisterUser(ctx, "user-1", "비밀번호123", "홍길동"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if repo.users["user-1"].Password == "비밀번호123" {
		t.Fatalf("password stored in plaintext")
	}

	userName, token, err := svc.LoginUser(ctx, "user-1", "비밀번호123")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if userName != "홍길동" {
		t.Fatalf("LoginUser: expected stored user name, got %q", userName)
	}
	if token == "" {
		t.Fatalf("LoginUser: expected a token")
	}

	subject, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != "user-1" {
		t.Fatalf("VerifyToken: expected subject user-1, got %q", subject)
	}
}

func TestAuthServiceDuplicateRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testLogger(t), repo, "test-secret", time.Hour)
	ctx := context.Background()

	if err := svc.RegisterUser(ctx, "user-1", "pw", "이름"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	err := svc.RegisterUser(ctx, "user-1", "pw2", "다른이름")
	if err == nil {
		t.Fatalf("expected error for duplicate user")
	}
	if !apierr.IsCode(err, apierr.CodeConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestAuthServiceInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testLogger(t), repo, "test-secret", time.Hour)
	ctx := context.Background()

	if err := svc.RegisterUser(ctx, "user-1", "right-pw", "이름"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	_, _, err := svc.LoginUser(ctx, "user-1", "wrong-pw")
	if !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED for wrong password, got %v", err)
	}

	_, _, err = svc.LoginUser(ctx, "no-such-user", "pw")
	if !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED for unknown user, got %v", err)
	}
}

func TestAuthServiceVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testLogger(t), newFakeUserRepo(), "test-secret", time.Hour)

	if _, err := svc.VerifyToken("not-a-token"); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}

	other := NewAuthService(testLogger(t), newFakeUserRepo(), "different-secret", time.Hour)
	ctx := context.Background()
	repo := newFakeUserRepo()
	signer := NewAuthService(testLogger(t), repo, "test-secret", time.Hour)
	if err := signer.RegisterUser(ctx, "user-1", "pw", "이름"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	_, token, err := signer.LoginUser(ctx, "user-1", "pw")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if _, err := other.VerifyToken(token); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED for wrong signing key, got %v", err)
	}
}
