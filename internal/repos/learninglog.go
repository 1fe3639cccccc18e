package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type LearningLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.LearningLog) (*types.LearningLog, error)
	GetByID(ctx context.Context, tx *gorm.DB, logID uint) (*types.LearningLog, error)
	ListIDs(ctx context.Context, tx *gorm.DB, userID, profileName string, start, end *time.Time) ([]uint, error)
	ListSummaries(ctx context.Context, tx *gorm.DB, userID, profileName string) ([]*types.LearningLogSummary, error)
}

type learningLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningLogRepo(db *gorm.DB, baseLog *logger.Logger) LearningLogRepo {
	repoLog := baseLog.With("repo", "LearningLogRepo")
	return &learningLogRepo{db: db, log: repoLog}
}

func (lr *learningLogRepo) Create(ctx context.Context, tx *gorm.DB, row *types.LearningLog) (*types.LearningLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if row == nil {
		return nil, nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (lr *learningLogRepo) GetByID(ctx context.Context, tx *gorm.DB, logID uint) (*types.LearningLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.LearningLog
	err := transaction.WithContext(ctx).
		Where("learning_log_id = ?", logID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListIDs resolves the session id set for one (user, profile), optionally
// restricted to sessions whose start time falls within [start, end] inclusive.
func (lr *learningLogRepo) ListIDs(ctx context.Context, tx *gorm.DB, userID, profileName string, start, end *time.Time) ([]uint, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.LearningLog{}).
		Where("user_id = ? AND profile_name = ?", userID, profileName)
	if start != nil && end != nil {
		query = query.Where("time BETWEEN ? AND ?", *start, *end)
	}

	var ids []uint
	if err := query.Pluck("learning_log_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (lr *learningLogRepo) ListSummaries(ctx context.Context, tx *gorm.DB, userID, profileName string) ([]*types.LearningLogSummary, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var rows []*struct {
		LearningLogID      uint
		ScenarioTitle      string
		ScenarioPages      int
		NumOfAnswerRecords int
		LearningTime       time.Time
	}
	if err := transaction.WithContext(ctx).
		Model(&types.LearningLog{}).
		Select(`learning_logs.learning_log_id AS learning_log_id,
			scenario.title AS scenario_title,
			scenario.scene_cnt AS scenario_pages,
			COUNT(answers.learning_log_id) AS num_of_answer_records,
			learning_logs.time AS learning_time`).
		Joins("JOIN scenario ON learning_logs.scenario_id = scenario.scenario_id").
		Joins("LEFT JOIN answers ON learning_logs.learning_log_id = answers.learning_log_id").
		Where("learning_logs.user_id = ? AND learning_logs.profile_name = ?", userID, profileName).
		Group("learning_logs.learning_log_id, scenario.title, scenario.scene_cnt, learning_logs.time").
		Order("learning_logs.time DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]*types.LearningLogSummary, 0, len(rows))
	for _, row := range rows {
		results = append(results, &types.LearningLogSummary{
			LearningLogID:      row.LearningLogID,
			ScenarioTitle:      row.ScenarioTitle,
			ScenarioPages:      row.ScenarioPages,
			NumOfAnswerRecords: row.NumOfAnswerRecords,
			LearningTime:       row.LearningTime.Format(time.RFC3339),
		})
	}
	return results, nil
}
