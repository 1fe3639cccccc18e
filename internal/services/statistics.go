package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
)

// Counters is the cross-session rollup for one (user, profile) pair.
type Counters struct {
	WholeResponseCnt     int64 `json:"whole_response_cnt"`
	ResponsedQuestionCnt int64 `json:"responsed_question_cnt"`
	ExpectedQuestionCnt  int64 `json:"expected_question_cnt"`
	EvalResponseCnt      int64 `json:"eval_response_cnt"`
	CorrectResponseCnt   int64 `json:"correct_response_cnt"`
	TimeoutResponseCnt   int64 `json:"timeout_response_cnt"`
}

type StatisticsService interface {
	Aggregate(ctx context.Context, userID, profileName string, start, end *time.Time) (*Counters, error)
}

type statisticsService struct {
	db           *gorm.DB
	log          *logger.Logger
	logRepo      repos.LearningLogRepo
	answerRepo   repos.AnswerRepo
	scenarioRepo repos.ScenarioRepo
	staticsRepo  repos.StaticsRepo
}

func NewStatisticsService(
	db *gorm.DB,
	log *logger.Logger,
	logRepo repos.LearningLogRepo,
	answerRepo repos.AnswerRepo,
	scenarioRepo repos.ScenarioRepo,
	staticsRepo repos.StaticsRepo,
) StatisticsService {
	serviceLog := log.With("service", "StatisticsService")
	return &statisticsService{
		db:           db,
		log:          serviceLog,
		logRepo:      logRepo,
		answerRepo:   answerRepo,
		scenarioRepo: scenarioRepo,
		staticsRepo:  staticsRepo,
	}
}

// Aggregate computes the six counters over the sessions matching the filter.
// The measures draw from four tables with different join cardinalities, so
// each one is its own aggregate query over the shared id set instead of a
// single join that would need DISTINCT gymnastics to avoid double counting.
func (ss *statisticsService) Aggregate(ctx context.Context, userID, profileName string, start, end *time.Time) (*Counters, error) {
	logIDs, err := ss.logRepo.ListIDs(ctx, nil, userID, profileName, start, end)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to resolve learning logs: %w", err))
	}
	if len(logIDs) == 0 {
		// No matching sessions is a defined outcome, not an error.
		return &Counters{}, nil
	}

	whole, err := ss.answerRepo.CountByLogIDs(ctx, nil, logIDs)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to count responses: %w", err))
	}

	responsed, err := ss.answerRepo.CountAnsweredScenes(ctx, nil, logIDs)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to count answered questions: %w", err))
	}

	expected, err := ss.scenarioRepo.SumSceneCntByLogIDs(ctx, nil, logIDs)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to sum expected questions: %w", err))
	}

	evaluated, err := ss.answerRepo.CountWithReport(ctx, nil, logIDs)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to count evaluated responses: %w", err))
	}

	sums, err := ss.staticsRepo.SumByLogIDs(ctx, nil, logIDs)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to sum rollup counters: %w", err))
	}

	return &Counters{
		WholeResponseCnt:     whole,
		ResponsedQuestionCnt: responsed,
		ExpectedQuestionCnt:  expected,
		EvalResponseCnt:      evaluated,
		CorrectResponseCnt:   sums.CorrectResponseCnt,
		TimeoutResponseCnt:   sums.TimeoutResponseCnt,
	}, nil
}
