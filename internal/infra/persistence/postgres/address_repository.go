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

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// FindByCity returns the addresses of a city, optionally filtered by a street
// substring.
func (repo *addressRepository) FindByCity(ctx context.Context, cityID int64, street *string) ([]*entity.Address, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("city_id = ?", cityID)

	if street != nil {
		query = query.Where("street ILIKE ?", "%"+*street+"%")
	}

	var addressModels []*model.AddressModel
	if err := query.Order("id ASC").Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by city")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Create persists a new address and assigns the generated ID back to the entity.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCityNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressInvalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID

	return nil
}

// toAddressDomain converts a persistence model to a domain entity.
func toAddressDomain(addressM *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:         addressM.ID,
		Street:     addressM.Street,
		Number:     addressM.Number,
		CEP:        addressM.CEP,
		Complement: addressM.Complement,
		CityID:     addressM.CityID,
	}
}

// fromAddressDomain converts a domain entity to a persistence model.
func fromAddressDomain(address *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:         address.ID,
		Street:     address.Street,
		Number:     address.Number,
		CEP:        address.CEP,
		Complement: address.Complement,
		CityID:     address.CityID,
	}
}
