package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type AnswerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Answer) error
	GetByLogID(ctx context.Context, tx *gorm.DB, logID uint) ([]*types.Answer, error)
	CountByLogIDs(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error)
	CountAnsweredScenes(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error)
	CountWithReport(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error)
}

type answerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	repoLog := baseLog.With("repo", "AnswerRepo")
	return &answerRepo{db: db, log: repoLog}
}

func (ar *answerRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Answer) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return nil
}

func (ar *answerRepo) GetByLogID(ctx context.Context, tx *gorm.DB, logID uint) ([]*types.Answer, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Answer
	if err := transaction.WithContext(ctx).
		Where("learning_log_id = ?", logID).
		Order("hash_num ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *answerRepo) CountByLogIDs(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(logIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Answer{}).
		Where("learning_log_id IN ?", logIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAnsweredScenes counts distinct (log, scene) pairs with at least one
// answer. A retried scene collapses to its latest attempt, so it contributes
// one unit regardless of how many attempts were recorded.
func (ar *answerRepo) CountAnsweredScenes(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(logIDs) == 0 {
		return 0, nil
	}

	latest := transaction.WithContext(ctx).
		Model(&types.Answer{}).
		Select("MAX(hash_num) AS latest_hash_num").
		Where("learning_log_id IN ?", logIDs).
		Group("learning_log_id, scene_id")

	var count int64
	if err := transaction.WithContext(ctx).
		Table("(?) AS latest_answers", latest).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountWithReport counts answers belonging to logs that already have a
// finalized evaluation report.
func (ar *answerRepo) CountWithReport(ctx context.Context, tx *gorm.DB, logIDs []uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(logIDs) == 0 {
		return 0, nil
	}

	reported := transaction.WithContext(ctx).
		Model(&types.LearningReport{}).
		Select("learning_log_id").
		Where("learning_log_id IN ?", logIDs)

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Answer{}).
		Where("learning_log_id IN (?)", reported).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
