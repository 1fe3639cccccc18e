package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type ScenarioRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, scenarioID uint) ([]*types.Scenario, error)
	GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.Scenario, error)
	SumSceneCntByLogIDs(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error)
}

type scenarioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScenarioRepo(db *gorm.DB, baseLog *logger.Logger) ScenarioRepo {
	repoLog := baseLog.With("repo", "ScenarioRepo")
	return &scenarioRepo{db: db, log: repoLog}
}

func (sr *scenarioRepo) GetByID(ctx context.Context, tx *gorm.DB, scenarioID uint) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Scenario
	if scenarioID == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("scenario_id = ?", scenarioID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *scenarioRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.Scenario
	err := transaction.WithContext(ctx).
		Where("title = ?", title).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SumSceneCntByLogIDs totals the expected step count of every scenario the
// given learning logs point at, counting a scenario once per log that used it.
func (sr *scenarioRepo) SumSceneCntByLogIDs(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(logIDs) == 0 {
		return 0, nil
	}

	var total int64
	if err := transaction.WithContext(ctx).
		Model(&types.Scenario{}).
		Select("COALESCE(SUM(scenario.scene_cnt), 0)").
		Joins("JOIN learning_logs ON learning_logs.scenario_id = scenario.scenario_id").
		Where("learning_logs.learning_log_id IN ?", logIDs).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
