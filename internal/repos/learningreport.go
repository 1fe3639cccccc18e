package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type LearningReportRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.LearningReport) error
	GetByLogID(ctx context.Context, tx *gorm.DB, logID uint) (*types.LearningReport, error)
	LogIDsWithReport(ctx context.Context, tx *gorm.DB, logIDs []uint) ([]uint, error)
}

type learningReportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningReportRepo(db *gorm.DB, baseLog *logger.Logger) LearningReportRepo {
	repoLog := baseLog.With("repo", "LearningReportRepo")
	return &learningReportRepo{db: db, log: repoLog}
}

// Upsert writes the report keyed by learning_log_id: regenerating a report for
// the same session replaces the previous narrative rather than adding a row.
func (rr *learningReportRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.LearningReport) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "learning_log_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"completed", "agile", "accuracy", "context", "pronunciation", "review", "raw",
			}),
		}).
		Create(row).Error; err != nil {
		return err
	}
	return nil
}

func (rr *learningReportRepo) GetByLogID(ctx context.Context, tx *gorm.DB, logID uint) (*types.LearningReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.LearningReport
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

func (rr *learningReportRepo) LogIDsWithReport(ctx context.Context, tx *gorm.DB, logIDs []uint) ([]uint, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var ids []uint
	if len(logIDs) == 0 {
		return ids, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.LearningReport{}).
		Where("learning_log_id IN ?", logIDs).
		Pluck("learning_log_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
