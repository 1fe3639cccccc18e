package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type fakeLearningListRepo struct {
	added        []*types.LearningListEntry
	titles       []string
	removedRows  int64
	lastRemoved  uint
}

func (f *fakeLearningListRepo) Add(ctx context.Context, tx *gorm.DB, row *types.LearningListEntry) error {
	f.added = append(f.added, row)
	return nil
}

func (f *fakeLearningListRepo) ListTitles(ctx context.Context, tx *gorm.DB, userID, profileName string) ([]string, error) {
	return f.titles, nil
}

func (f *fakeLearningListRepo) Remove(ctx context.Context, tx *gorm.DB, userID, profileName string, scenarioID uint) (int64, error) {
	f.lastRemoved = scenarioID
	return f.removedRows, nil
}

func TestLearningListServiceAddResolvesTitle(t *testing.T) {
	scenarioRepo := &fakeScenarioRepo{
		byTitle: map[string]*types.Scenario{"마트에서 장보기": {ScenarioID: 9, Title: "마트에서 장보기"}},
	}
	listRepo := &fakeLearningListRepo{}
	svc := NewLearningListService(testLogger(t), listRepo, scenarioRepo)
	ctx := context.Background()

	if err := svc.Add(ctx, "u", "p", "마트에서 장보기"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(listRepo.added) != 1 || listRepo.added[0].ScenarioID != 9 {
		t.Fatalf("Add: scenario not resolved: %+v", listRepo.added)
	}

	err := svc.Add(ctx, "u", "p", "없는 시나리오")
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for unknown title, got %v", err)
	}
}

func TestLearningListServiceRemove(t *testing.T) {
	scenarioRepo := &fakeScenarioRepo{
		byTitle: map[string]*types.Scenario{"버스 타기": {ScenarioID: 4, Title: "버스 타기"}},
	}
	listRepo := &fakeLearningListRepo{removedRows: 1}
	svc := NewLearningListService(testLogger(t), listRepo, scenarioRepo)
	ctx := context.Background()

	if err := svc.Remove(ctx, "u", "p", "버스 타기"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if listRepo.lastRemoved != 4 {
		t.Fatalf("Remove: wrong scenario id %d", listRepo.lastRemoved)
	}

	listRepo.removedRows = 0
	err := svc.Remove(ctx, "u", "p", "버스 타기")
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND when nothing matched, got %v", err)
	}

	err = svc.Remove(ctx, "u", "p", "없는 시나리오")
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for unknown title, got %v", err)
	}
}
