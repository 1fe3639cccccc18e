package repos

import (
	"context"
	"testing"

	"github.com/moduhak/moduhak-backend/internal/repos/testutil"
	"github.com/moduhak/moduhak-backend/internal/types"
)

func TestCharacterRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCharacterRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, tx, "charrepo-1")
	testutil.SeedProfile(t, tx, "charrepo-1", "아이1")

	err := repo.Upsert(ctx, tx, &types.Character{
		UserID:      "charrepo-1",
		ProfileName: "아이1",
		Toggle:      1,
		EyeShape:    0.25,
	})
	if err != nil {
		t.Fatalf("Upsert (insert): %v", err)
	}

	err = repo.Upsert(ctx, tx, &types.Character{
		UserID:      "charrepo-1",
		ProfileName: "아이1",
		Toggle:      0,
		EyeShape:    0.75,
		BodyColor:   0.5,
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}

	got, err := repo.Get(ctx, tx, "charrepo-1", "아이1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.EyeShape != 0.75 || got.BodyColor != 0.5 || got.Toggle != 0 {
		t.Fatalf("Get: expected replaced sliders, got %+v", got)
	}

	missing, err := repo.Get(ctx, tx, "charrepo-1", "없는프로필")
	if err != nil {
		t.Fatalf("Get (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("Get (missing): expected nil, got %+v", missing)
	}
}
