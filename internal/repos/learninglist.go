package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type LearningListRepo interface {
	Add(ctx context.Context, tx *gorm.DB, row *types.LearningListEntry) error
	ListTitles(ctx context.Context, tx *gorm.DB, userID, profileName string) ([]string, error)
	Remove(ctx context.Context, tx *gorm.DB, userID, profileName string, scenarioID uint) (int64, error)
}

type learningListRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningListRepo(db *gorm.DB, baseLog *logger.Logger) LearningListRepo {
	repoLog := baseLog.With("repo", "LearningListRepo")
	return &learningListRepo{db: db, log: repoLog}
}

func (lr *learningListRepo) Add(ctx context.Context, tx *gorm.DB, row *types.LearningListEntry) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return nil
}

func (lr *learningListRepo) ListTitles(ctx context.Context, tx *gorm.DB, userID, profileName string) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var titles []string
	if err := transaction.WithContext(ctx).
		Model(&types.LearningListEntry{}).
		Joins("JOIN scenario ON learning_list.scenario_id = scenario.scenario_id").
		Where("learning_list.user_id = ? AND learning_list.profile_name = ?", userID, profileName).
		Pluck("scenario.title", &titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

func (lr *learningListRepo) Remove(ctx context.Context, tx *gorm.DB, userID, profileName string, scenarioID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	result := transaction.WithContext(ctx).
		Where("user_id = ? AND profile_name = ? AND scenario_id = ?", userID, profileName, scenarioID).
		Delete(&types.LearningListEntry{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
