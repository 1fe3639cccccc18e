package repos

import (
	"context"
	"testing"

	"github.com/moduhak/moduhak-backend/internal/repos/testutil"
	"github.com/moduhak/moduhak-backend/internal/types"
)

func TestLearningListRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewLearningListRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, tx, "listrepo-1")
	scenarioA := testutil.SeedScenario(t, tx, "편의점 가기", 3)
	scenarioB := testutil.SeedScenario(t, tx, "도서관 가기", 5)

	for _, scenarioID := range []uint{scenarioA.ScenarioID, scenarioB.ScenarioID} {
		err := repo.Add(ctx, tx, &types.LearningListEntry{
			UserID:      "listrepo-1",
			ProfileName: "아이1",
			ScenarioID:  scenarioID,
		})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	titles, err := repo.ListTitles(ctx, tx, "listrepo-1", "아이1")
	if err != nil {
		t.Fatalf("ListTitles: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("ListTitles: expected 2 titles, got %d (%v)", len(titles), titles)
	}

	none, err := repo.ListTitles(ctx, tx, "listrepo-1", "다른프로필")
	if err != nil {
		t.Fatalf("ListTitles (none): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("ListTitles (none): expected empty, got %v", none)
	}

	removed, err := repo.Remove(ctx, tx, "listrepo-1", "아이1", scenarioA.ScenarioID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != 1 {
		t.Fatalf("Remove: expected 1 row, got %d", removed)
	}

	removed, err = repo.Remove(ctx, tx, "listrepo-1", "아이1", scenarioA.ScenarioID)
	if err != nil {
		t.Fatalf("Remove (again): %v", err)
	}
	if removed != 0 {
		t.Fatalf("Remove (again): expected 0 rows, got %d", removed)
	}
}
