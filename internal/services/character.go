package services

import (
	"context"
	"fmt"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type CharacterService interface {
	UpdateCharacter(ctx context.Context, row *types.Character) error
	GetCharacter(ctx context.Context, userID, profileName string) (*types.Character, error)
}

type characterService struct {
	log           *logger.Logger
	characterRepo repos.CharacterRepo
}

func NewCharacterService(log *logger.Logger, characterRepo repos.CharacterRepo) CharacterService {
	serviceLog := log.With("service", "CharacterService")
	return &characterService{log: serviceLog, characterRepo: characterRepo}
}

func (cs *characterService) UpdateCharacter(ctx context.Context, row *types.Character) error {
	if row == nil || row.UserID == "" || row.ProfileName == "" {
		return apierr.InvalidInput(fmt.Errorf("user id and profile name are required"))
	}
	if err := cs.characterRepo.Upsert(ctx, nil, row); err != nil {
		return apierr.Store(fmt.Errorf("failed to update character: %w", err))
	}
	return nil
}

func (cs *characterService) GetCharacter(ctx context.Context, userID, profileName string) (*types.Character, error) {
	row, err := cs.characterRepo.Get(ctx, nil, userID, profileName)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch character: %w", err))
	}
	if row == nil {
		return nil, apierr.NotFound(fmt.Errorf("character not found"))
	}
	return row, nil
}
