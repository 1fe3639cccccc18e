package repos

import (
	"context"
	"testing"
	"time"

	"github.com/moduhak/moduhak-backend/internal/repos/testutil"
)

func TestScenarioRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewScenarioRepo(db, testutil.Logger(t))
	ctx := context.Background()

	seeded := testutil.SeedScenario(t, tx, "마트에서 장보기", 5)

	rows, err := repo.GetByID(ctx, tx, seeded.ScenarioID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "마트에서 장보기" {
		t.Fatalf("GetByID: unexpected result: %+v", rows)
	}

	byTitle, err := repo.GetByTitle(ctx, tx, "마트에서 장보기")
	if err != nil {
		t.Fatalf("GetByTitle: %v", err)
	}
	if byTitle == nil || byTitle.ScenarioID != seeded.ScenarioID {
		t.Fatalf("GetByTitle: unexpected result: %+v", byTitle)
	}

	missing, err := repo.GetByTitle(ctx, tx, "없는 시나리오")
	if err != nil {
		t.Fatalf("GetByTitle (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByTitle (missing): expected nil, got %+v", missing)
	}

	testutil.SeedUser(t, tx, "scenariorepo-1")
	logA := testutil.SeedLearningLog(t, tx, seeded.ScenarioID, "scenariorepo-1", "p", time.Now().UTC())
	logB := testutil.SeedLearningLog(t, tx, seeded.ScenarioID, "scenariorepo-1", "p", time.Now().UTC())

	// Two sessions of the same 5-scene scenario expect 10 questions total.
	sum, err := repo.SumSceneCntByLogIDs(ctx, tx, []uint{logA.LearningLogID, logB.LearningLogID})
	if err != nil {
		t.Fatalf("SumSceneCntByLogIDs: %v", err)
	}
	if sum != 10 {
		t.Fatalf("SumSceneCntByLogIDs: expected 10, got %d", sum)
	}

	sum, err = repo.SumSceneCntByLogIDs(ctx, tx, []uint{})
	if err != nil {
		t.Fatalf("SumSceneCntByLogIDs (empty): %v", err)
	}
	if sum != 0 {
		t.Fatalf("SumSceneCntByLogIDs (empty): expected 0, got %d", sum)
	}
}
