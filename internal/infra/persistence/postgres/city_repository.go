package postgres

import (
	"context"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{
		db: db,
	}
}

// FindByID retrieves a city by its unique ID.
func (repo *cityRepository) FindByID(ctx context.Context, id int64) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by ID")
	}

	return toCityDomain(&cityM), nil
}

// FindByState returns the cities of a state, optionally filtered by a name
// substring.
func (repo *cityRepository) FindByState(ctx context.Context, stateID int64, name *string) ([]*entity.City, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CityModel{}).
		Where("state_id = ?", stateID)

	if name != nil {
		query = query.Where("name ILIKE ?", "%"+*name+"%")
	}

	var cityModels []*model.CityModel
	if err := query.Order("id ASC").Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cities by state")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

// FindByNameInState retrieves a city by exact name within a state. The name is
// matched case-insensitively so duplicate checks catch casing variants.
func (repo *cityRepository) FindByNameInState(ctx context.Context, stateID int64, name string) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("state_id = ? AND LOWER(name) = LOWER(?)", stateID, name).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by name in state")
	}

	return toCityDomain(&cityM), nil
}

// Create persists a new city and assigns the generated ID back to the entity.
func (repo *cityRepository) Create(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStateNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required city information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	// Update the entity with generated values
	city.ID = cityM.ID

	return nil
}

// toCityDomain converts a persistence model to a domain entity.
func toCityDomain(cityM *model.CityModel) *entity.City {
	return &entity.City{
		ID:      cityM.ID,
		Name:    cityM.Name,
		StateID: cityM.StateID,
	}
}

// fromCityDomain converts a domain entity to a persistence model.
func fromCityDomain(city *entity.City) *model.CityModel {
	return &model.CityModel{
		ID:      city.ID,
		Name:    city.Name,
		StateID: city.StateID,
	}
}
