package services

import (
	"context"
	"fmt"
	"time"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/types"
)

// LearningService manages learning sessions and their per-step answer records.
type LearningService interface {
	StartSession(ctx context.Context, userID, profileName string, scenarioID uint) (uint, error)
	RecordStep(ctx context.Context, row *types.Answer) error
	ListLogs(ctx context.Context, userID, profileName string) ([]*types.LearningLogSummary, error)
	Answers(ctx context.Context, learningLogID uint) ([]*types.Answer, error)
}

type learningService struct {
	log          *logger.Logger
	logRepo      repos.LearningLogRepo
	answerRepo   repos.AnswerRepo
	scenarioRepo repos.ScenarioRepo
}

func NewLearningService(
	log *logger.Logger,
	logRepo repos.LearningLogRepo,
	answerRepo repos.AnswerRepo,
	scenarioRepo repos.ScenarioRepo,
) LearningService {
	serviceLog := log.With("service", "LearningService")
	return &learningService{
		log:          serviceLog,
		logRepo:      logRepo,
		answerRepo:   answerRepo,
		scenarioRepo: scenarioRepo,
	}
}

func (ls *learningService) StartSession(ctx context.Context, userID, profileName string, scenarioID uint) (uint, error) {
	if userID == "" || profileName == "" {
		return 0, apierr.InvalidInput(fmt.Errorf("user id and profile name are required"))
	}
	scenarios, err := ls.scenarioRepo.GetByID(ctx, nil, scenarioID)
	if err != nil {
		return 0, apierr.Store(fmt.Errorf("failed to fetch scenario: %w", err))
	}
	if len(scenarios) == 0 {
		return 0, apierr.NotFound(fmt.Errorf("scenario not found"))
	}
	row := &types.LearningLog{
		ScenarioID:  scenarioID,
		UserID:      userID,
		ProfileName: profileName,
		Time:        time.Now().UTC(),
	}
	created, err := ls.logRepo.Create(ctx, nil, row)
	if err != nil {
		return 0, apierr.Store(fmt.Errorf("failed to create learning log: %w", err))
	}
	return created.LearningLogID, nil
}

func (ls *learningService) RecordStep(ctx context.Context, row *types.Answer) error {
	if row == nil || row.LearningLogID == 0 {
		return apierr.InvalidInput(fmt.Errorf("learning log id is required"))
	}
	learningLog, err := ls.logRepo.GetByID(ctx, nil, row.LearningLogID)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to fetch learning log: %w", err))
	}
	if learningLog == nil {
		return apierr.NotFound(fmt.Errorf("learning log not found"))
	}
	if err := ls.answerRepo.Create(ctx, nil, row); err != nil {
		return apierr.Store(fmt.Errorf("failed to record answer: %w", err))
	}
	return nil
}

func (ls *learningService) ListLogs(ctx context.Context, userID, profileName string) ([]*types.LearningLogSummary, error) {
	summaries, err := ls.logRepo.ListSummaries(ctx, nil, userID, profileName)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to list learning logs: %w", err))
	}
	return summaries, nil
}

func (ls *learningService) Answers(ctx context.Context, learningLogID uint) ([]*types.Answer, error) {
	answers, err := ls.answerRepo.GetByLogID(ctx, nil, learningLogID)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch answers: %w", err))
	}
	if len(answers) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("no answers found for this learning log"))
	}
	return answers, nil
}
