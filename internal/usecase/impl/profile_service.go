package impl

import (
	"context"
	"log/slog"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"
	"salesapi/internal/usecase"

	"github.com/pkg/errors"
)

// profileService exposes the seeded profile reference data.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListProfiles returns every seeded profile.
func (srv *profileService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}
