package repos

import (
	"context"
	"testing"
	"time"

	"github.com/moduhak/moduhak-backend/internal/repos/testutil"
	"github.com/moduhak/moduhak-backend/internal/types"
)

func TestLearningReportRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewLearningReportRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedUser(t, tx, "reportrepo-1")
	scenario := testutil.SeedScenario(t, tx, "학교 가기", 4)
	learningLog := testutil.SeedLearningLog(t, tx, scenario.ScenarioID, "reportrepo-1", "p", time.Now().UTC())

	err := repo.Upsert(ctx, tx, &types.LearningReport{
		LearningLogID: learningLog.LearningLogID,
		Completed:     "첫 평가",
		Review:        "복습이 필요해요",
	})
	if err != nil {
		t.Fatalf("Upsert (insert): %v", err)
	}

	// Regeneration replaces the narrative in place.
	err = repo.Upsert(ctx, tx, &types.LearningReport{
		LearningLogID: learningLog.LearningLogID,
		Completed:     "두 번째 평가",
		Review:        "많이 좋아졌어요",
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}

	got, err := repo.GetByLogID(ctx, tx, learningLog.LearningLogID)
	if err != nil {
		t.Fatalf("GetByLogID: %v", err)
	}
	if got == nil || got.Completed != "두 번째 평가" {
		t.Fatalf("GetByLogID: expected replaced narrative, got %+v", got)
	}

	var rows int64
	if err := tx.Model(&types.LearningReport{}).
		Where("learning_log_id = ?", learningLog.LearningLogID).
		Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single report row, got %d", rows)
	}

	missing, err := repo.GetByLogID(ctx, tx, learningLog.LearningLogID+1000)
	if err != nil {
		t.Fatalf("GetByLogID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByLogID (missing): expected nil, got %+v", missing)
	}

	ids, err := repo.LogIDsWithReport(ctx, tx, []uint{learningLog.LearningLogID, learningLog.LearningLogID + 1000})
	if err != nil {
		t.Fatalf("LogIDsWithReport: %v", err)
	}
	if len(ids) != 1 || ids[0] != learningLog.LearningLogID {
		t.Fatalf("LogIDsWithReport: unexpected ids: %v", ids)
	}
}
