package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type CounterSums struct {
	CorrectResponseCnt int64
	TimeoutResponseCnt int64
}

type StaticsRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.Statics) error
	GetByLogID(ctx context.Context, tx *gorm.DB, logID uint) (*types.Statics, error)
	SumByLogIDs(ctx context.Context, tx *gorm.DB, logIDs []uint) (CounterSums, error)
}

type staticsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStaticsRepo(db *gorm.DB, baseLog *logger.Logger) StaticsRepo {
	repoLog := baseLog.With("repo", "StaticsRepo")
	return &staticsRepo{db: db, log: repoLog}
}

// Upsert replaces the counters for a session and touches updated_at, keyed by
// learning_log_id. Concurrent regenerations resolve last-writer-wins.
func (sr *staticsRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Statics) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if row == nil {
		return nil
	}

	row.UpdatedAt = time.Now().UTC()
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "learning_log_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"correct_response_cnt", "timeout_response_cnt", "updated_at",
			}),
		}).
		Create(row).Error; err != nil {
		return err
	}
	return nil
}

func (sr *staticsRepo) GetByLogID(ctx context.Context, tx *gorm.DB, logID uint) (*types.Statics, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.Statics
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

// SumByLogIDs totals both counters over the given logs. Logs without a statics
// row contribute zero.
func (sr *staticsRepo) SumByLogIDs(ctx context.Context, tx *gorm.DB, logIDs []uint) (CounterSums, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var sums CounterSums
	if len(logIDs) == 0 {
		return sums, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Statics{}).
		Select(`COALESCE(SUM(correct_response_cnt), 0) AS correct_response_cnt,
			COALESCE(SUM(timeout_response_cnt), 0) AS timeout_response_cnt`).
		Where("learning_log_id IN ?", logIDs).
		Scan(&sums).Error; err != nil {
		return CounterSums{}, err
	}
	return sums, nil
}
