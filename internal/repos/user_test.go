package repos

import (
	"context"
	"testing"

	"github.com/moduhak/moduhak-backend/internal/repos/testutil"
	"github.com/moduhak/moduhak-backend/internal/types"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	err := repo.Create(ctx, tx, &types.User{
		UserID:   "userrepo-1",
		Password: "hashed",
		UserName: "홍길동",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, "userrepo-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.UserName != "홍길동" {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	missing, err := repo.GetByID(ctx, tx, "userrepo-missing")
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}

	exists, err := repo.Exists(ctx, tx, "userrepo-1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("Exists: expected true")
	}

	exists, err = repo.Exists(ctx, tx, "userrepo-missing")
	if err != nil {
		t.Fatalf("Exists (missing): %v", err)
	}
	if exists {
		t.Fatalf("Exists (missing): expected false")
	}
}
