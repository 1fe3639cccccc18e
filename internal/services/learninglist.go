package services

import (
	"context"
	"fmt"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/types"
)

// LearningListService manages the per-profile bookmark list of scenarios.
// Scenarios are referenced by title at the API boundary and resolved to ids here.
type LearningListService interface {
	Add(ctx context.Context, userID, profileName, scenarioTitle string) error
	Titles(ctx context.Context, userID, profileName string) ([]string, error)
	Remove(ctx context.Context, userID, profileName, scenarioTitle string) error
}

type learningListService struct {
	log          *logger.Logger
	listRepo     repos.LearningListRepo
	scenarioRepo repos.ScenarioRepo
}

func NewLearningListService(
	log *logger.Logger,
	listRepo repos.LearningListRepo,
	scenarioRepo repos.ScenarioRepo,
) LearningListService {
	serviceLog := log.With("service", "LearningListService")
	return &learningListService{log: serviceLog, listRepo: listRepo, scenarioRepo: scenarioRepo}
}

func (lls *learningListService) Add(ctx context.Context, userID, profileName, scenarioTitle string) error {
	scenario, err := lls.scenarioRepo.GetByTitle(ctx, nil, scenarioTitle)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to fetch scenario: %w", err))
	}
	if scenario == nil {
		return apierr.NotFound(fmt.Errorf("scenario with given title not found"))
	}
	row := &types.LearningListEntry{
		UserID:      userID,
		ProfileName: profileName,
		ScenarioID:  scenario.ScenarioID,
	}
	if err := lls.listRepo.Add(ctx, nil, row); err != nil {
		return apierr.Store(fmt.Errorf("failed to add learning list entry: %w", err))
	}
	return nil
}

func (lls *learningListService) Titles(ctx context.Context, userID, profileName string) ([]string, error) {
	titles, err := lls.listRepo.ListTitles(ctx, nil, userID, profileName)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to list learning list titles: %w", err))
	}
	return titles, nil
}

func (lls *learningListService) Remove(ctx context.Context, userID, profileName, scenarioTitle string) error {
	scenario, err := lls.scenarioRepo.GetByTitle(ctx, nil, scenarioTitle)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to fetch scenario: %w", err))
	}
	if scenario == nil {
		return apierr.NotFound(fmt.Errorf("scenario with given title not found"))
	}
	removed, err := lls.listRepo.Remove(ctx, nil, userID, profileName, scenario.ScenarioID)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to remove learning list entry: %w", err))
	}
	if removed == 0 {
		return apierr.NotFound(fmt.Errorf("no matching learning list record found"))
	}
	return nil
}
