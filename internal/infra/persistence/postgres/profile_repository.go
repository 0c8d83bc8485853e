package postgres

import (
	"context"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
// Profiles are seeded reference data, so the repository is read-only.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindAll returns every seeded profile.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// toProfileDomain converts a persistence model to a domain entity.
func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:         profileM.ID,
		Role:       profileM.Role,
		Permission: entity.Permission(profileM.Permission),
	}
}
