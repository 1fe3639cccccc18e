package repos

import (
	"context"
	"testing"
	"time"

	"github.com/moduhak/moduhak-backend/internal/repos/testutil"
	"github.com/moduhak/moduhak-backend/internal/types"
)

func TestStaticsRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewStaticsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, tx, "staticsrepo-1")
	scenario := testutil.SeedScenario(t, tx, "지하철 타기", 4)
	learningLog := testutil.SeedLearningLog(t, tx, scenario.ScenarioID, "staticsrepo-1", "p", time.Now().UTC())

	err := repo.Upsert(ctx, tx, &types.Statics{
		LearningLogID:      learningLog.LearningLogID,
		CorrectResponseCnt: 3,
		TimeoutResponseCnt: 1,
	})
	if err != nil {
		t.Fatalf("Upsert (insert): %v", err)
	}

	// Last writer wins on regeneration.
	err = repo.Upsert(ctx, tx, &types.Statics{
		LearningLogID:      learningLog.LearningLogID,
		CorrectResponseCnt: 4,
		TimeoutResponseCnt: 0,
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}

	got, err := repo.GetByLogID(ctx, tx, learningLog.LearningLogID)
	if err != nil {
		t.Fatalf("GetByLogID: %v", err)
	}
	if got == nil || got.CorrectResponseCnt != 4 || got.TimeoutResponseCnt != 0 {
		t.Fatalf("GetByLogID: expected replaced counters, got %+v", got)
	}

	var rows int64
	if err := tx.Model(&types.Statics{}).
		Where("learning_log_id = ?", learningLog.LearningLogID).
		Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single statics row, got %d", rows)
	}
}

func TestStaticsRepoSumByLogIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewStaticsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, tx, "staticsrepo-sum")
	scenario := testutil.SeedScenario(t, tx, "카페 가기", 3)
	logA := testutil.SeedLearningLog(t, tx, scenario.ScenarioID, "staticsrepo-sum", "p", time.Now().UTC())
	logB := testutil.SeedLearningLog(t, tx, scenario.ScenarioID, "staticsrepo-sum", "p", time.Now().UTC())

	if err := repo.Upsert(ctx, tx, &types.Statics{LearningLogID: logA.LearningLogID, CorrectResponseCnt: 2, TimeoutResponseCnt: 1}); err != nil {
		t.Fatalf("Upsert A: %v", err)
	}
	if err := repo.Upsert(ctx, tx, &types.Statics{LearningLogID: logB.LearningLogID, CorrectResponseCnt: 3, TimeoutResponseCnt: 2}); err != nil {
		t.Fatalf("Upsert B: %v", err)
	}

	sums, err := repo.SumByLogIDs(ctx, tx, []uint{logA.LearningLogID, logB.LearningLogID})
	if err != nil {
		t.Fatalf("SumByLogIDs: %v", err)
	}
	if sums.CorrectResponseCnt != 5 || sums.TimeoutResponseCnt != 3 {
		t.Fatalf("SumByLogIDs: unexpected sums: %+v", sums)
	}

	empty, err := repo.SumByLogIDs(ctx, tx, []uint{logA.LearningLogID + 1000})
	if err != nil {
		t.Fatalf("SumByLogIDs (no rows): %v", err)
	}
	if empty.CorrectResponseCnt != 0 || empty.TimeoutResponseCnt != 0 {
		t.Fatalf("SumByLogIDs (no rows): expected zeros, got %+v", empty)
	}
}
