package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Profile, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.Profile) error
	Delete(ctx context.Context, tx *gorm.DB, userID, profileName string) (int64, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (pr *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Profile
	if userID == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Profile) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if row == nil {
		return nil
	}

	// Upsert by composite key user_id + profile_name
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND profile_name = ?", row.UserID, row.ProfileName).
		Assign(row).
		FirstOrCreate(row).Error; err != nil {
		return err
	}
	return nil
}

func (pr *profileRepo) Delete(ctx context.Context, tx *gorm.DB, userID, profileName string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	result := transaction.WithContext(ctx).
		Where("user_id = ? AND profile_name = ?", userID, profileName).
		Delete(&types.Profile{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
