package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type CharacterRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.Character) error
	Get(ctx context.Context, tx *gorm.DB, userID, profileName string) (*types.Character, error)
}

type characterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCharacterRepo(db *gorm.DB, baseLog *logger.Logger) CharacterRepo {
	repoLog := baseLog.With("repo", "CharacterRepo")
	return &characterRepo{db: db, log: repoLog}
}

func (cr *characterRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Character) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
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

func (cr *characterRepo) Get(ctx context.Context, tx *gorm.DB, userID, profileName string) (*types.Character, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Character
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND profile_name = ?", userID, profileName).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
