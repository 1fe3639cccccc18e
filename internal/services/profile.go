package services

import (
	"context"
	"fmt"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type ProfileService interface {
	ListProfiles(ctx context.Context, userID string) ([]*types.Profile, error)
	SetProfile(ctx context.Context, row *types.Profile) error
	RemoveProfile(ctx context.Context, userID, profileName string) error
}

type profileService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{log: serviceLog, profileRepo: profileRepo}
}

func (ps *profileService) ListProfiles(ctx context.Context, userID string) ([]*types.Profile, error) {
	profiles, err := ps.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, apierr.Store(fmt.Errorf("failed to fetch profiles: %w", err))
	}
	if len(profiles) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("no profiles found for this user"))
	}
	return profiles, nil
}

func (ps *profileService) SetProfile(ctx context.Context, row *types.Profile) error {
	if row == nil || row.UserID == "" || row.ProfileName == "" {
		return apierr.InvalidInput(fmt.Errorf("user id and profile name are required"))
	}
	if err := ps.profileRepo.Upsert(ctx, nil, row); err != nil {
		return apierr.Store(fmt.Errorf("failed to set profile: %w", err))
	}
	return nil
}

func (ps *profileService) RemoveProfile(ctx context.Context, userID, profileName string) error {
	deleted, err := ps.profileRepo.Delete(ctx, nil, userID, profileName)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to remove profile: %w", err))
	}
	if deleted == 0 {
		return apierr.NotFound(fmt.Errorf("profile not found"))
	}
	return nil
}
