package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/types"
)

// GeneratedReport is what one successful pipeline run produced: the persisted
// narrative plus the rollup counters.
type GeneratedReport struct {
	Report   *types.LearningReport `json:"report"`
	Counters *types.Statics        `json:"counters"`
}

type ReportService interface {
	GenerateReport(ctx context.Context, logID uint) (*GeneratedReport, error)
	GetReport(ctx context.Context, logID uint) (*types.LearningReport, error)
}

type reportService struct {
	db           *gorm.DB
	log          *logger.Logger
	logRepo      repos.LearningLogRepo
	scenarioRepo repos.ScenarioRepo
	answerRepo   repos.AnswerRepo
	reportRepo   repos.LearningReportRepo
	staticsRepo  repos.StaticsRepo
	generator    EvaluationGenerator
}

func NewReportService(
	db *gorm.DB,
	log *logger.Logger,
	logRepo repos.LearningLogRepo,
	scenarioRepo repos.ScenarioRepo,
	answerRepo repos.AnswerRepo,
	reportRepo repos.LearningReportRepo,
	staticsRepo repos.StaticsRepo,
	generator EvaluationGenerator,
) ReportService {
	serviceLog := log.With("service", "ReportService")
	return &reportService{
		db:           db,
		log:          serviceLog,
		logRepo:      logRepo,
		scenarioRepo: scenarioRepo,
		answerRepo:   answerRepo,
		reportRepo:   reportRepo,
		staticsRepo:  staticsRepo,
		generator:    generator,
	}
}

// GenerateReport runs the full pipeline for one session: resolve the log and
// its scenario, collect the recorded answers, ask the generator for an
// evaluation, then persist the narrative and the counters in one transaction.
// Either both rows land or neither does.
func (rs *reportService) GenerateReport(ctx context.Context, logID uint) (*GeneratedReport, error) {
	entry, err := rs.logRepo.GetByID(ctx, nil, logID)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch learning log: %w", err))
	}
	if entry == nil {
		return nil, apierr.NotFound(fmt.Errorf("learning log %d not found", logID))
	}

	scenarioRows, err := rs.scenarioRepo.GetByID(ctx, nil, entry.ScenarioID)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch scenario: %w", err))
	}
	if len(scenarioRows) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("scenario %d not found for learning log %d", entry.ScenarioID, logID))
	}

	// A session with zero answers is valid input: the generator still gets
	// the scenario and reports on the empty answer sheet.
	answers, err := rs.answerRepo.GetByLogID(ctx, nil, logID)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch answers: %w", err))
	}

	result, err := rs.generator.Evaluate(ctx, scenarioRows, answers)
	if err != nil {
		var ae *apierr.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, apierr.Generator(fmt.Errorf("evaluation failed: %w", err))
	}

	report := &types.LearningReport{
		LearningLogID: logID,
		Completed:     result.Completed,
		Agile:         result.Agile,
		Accuracy:      result.Accuracy,
		Context:       result.Context,
		Pronunciation: result.Pronunciation,
		Review:        result.Review,
		Raw:           datatypes.JSON(result.Raw),
	}
	counters := &types.Statics{
		LearningLogID:      logID,
		CorrectResponseCnt: result.CorrectResponseCnt,
		TimeoutResponseCnt: result.TimeoutResponseCnt,
	}

	err = rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if uErr := rs.reportRepo.Upsert(ctx, tx, report); uErr != nil {
			return fmt.Errorf("failed to write learning report: %w", uErr)
		}
		if uErr := rs.staticsRepo.Upsert(ctx, tx, counters); uErr != nil {
			return fmt.Errorf("failed to write statics counters: %w", uErr)
		}
		return nil
	})
	if err != nil {
		rs.log.Error("Report transaction rolled back", "learning_log_id", logID, "error", err)
		return nil, apierr.Store(err)
	}

	rs.log.Info("Report generated", "learning_log_id", logID,
		"correct_response_cnt", counters.CorrectResponseCnt,
		"timeout_response_cnt", counters.TimeoutResponseCnt)
	return &GeneratedReport{Report: report, Counters: counters}, nil
}

func (rs *reportService) GetReport(ctx context.Context, logID uint) (*types.LearningReport, error) {
	report, err := rs.reportRepo.GetByLogID(ctx, nil, logID)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch learning report: %w", err))
	}
	if report == nil {
		return nil, apierr.NotFound(fmt.Errorf("no report found for learning log %d", logID))
	}
	return report, nil
}
