package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/types"
)

func SeedUser(tb testing.TB, tx *gorm.DB, userID string) *types.User {
	tb.Helper()
	row := &types.User{UserID: userID, Password: "hashed-pw", UserName: "Seed User"}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return row
}

func SeedProfile(tb testing.TB, tx *gorm.DB, userID, profileName string) *types.Profile {
	tb.Helper()
	row := &types.Profile{UserID: userID, ProfileName: profileName, IconURL: "https://cdn.example.com/icon.png"}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return row
}

func SeedScenario(tb testing.TB, tx *gorm.DB, title string, sceneCnt int) *types.Scenario {
	tb.Helper()
	row := &types.Scenario{Title: title, SceneCnt: sceneCnt}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed scenario: %v", err)
	}
	return row
}

func SeedLearningLog(tb testing.TB, tx *gorm.DB, scenarioID uint, userID, profileName string, at time.Time) *types.LearningLog {
	tb.Helper()
	row := &types.LearningLog{ScenarioID: scenarioID, UserID: userID, ProfileName: profileName, Time: at}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed learning log: %v", err)
	}
	return row
}

func SeedAnswer(tb testing.TB, tx *gorm.DB, logID uint, sceneID, answer string) *types.Answer {
	tb.Helper()
	row := &types.Answer{
		LearningLogID: logID,
		SceneID:       sceneID,
		Question:      "질문",
		Answer:        answer,
		Response:      "응답",
	}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed answer: %v", err)
	}
	return row
}
