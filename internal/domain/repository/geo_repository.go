package repository

import (
	"context"
	"errors"

	"salesapi/internal/domain/entity"
)

// Domain-specific sentinels for the geographic hierarchy.
var (
	ErrStateNotFound = errors.New("state not found")
	ErrCityNotFound  = errors.New("city not found")
)

// StateRepository defines the operations for state persistence.
type StateRepository interface {
	// FindByID retrieves a single state by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.State, error)

	// Search returns all states whose name contains the given substring,
	// or every state when name is nil.
	Search(ctx context.Context, name *string) ([]*entity.State, error)

	// Update replaces the stored fields of an existing state.
	Update(ctx context.Context, state *entity.State) error

	// Delete removes the state with the given ID.
	Delete(ctx context.Context, id int64) error
}

// CityRepository defines the operations for city persistence.
type CityRepository interface {
	// FindByID retrieves a single city by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.City, error)

	// FindByState returns the cities of a state, optionally filtered by a
	// name substring.
	FindByState(ctx context.Context, stateID int64, name *string) ([]*entity.City, error)

	// FindByNameInState retrieves a city by exact name within a state.
	FindByNameInState(ctx context.Context, stateID int64, name string) (*entity.City, error)

	// Create persists a new city entity and assigns its ID.
	Create(ctx context.Context, city *entity.City) error
}

// AddressRepository defines the operations for address persistence.
type AddressRepository interface {
	// FindByCity returns the addresses of a city, optionally filtered by a
	// street substring.
	FindByCity(ctx context.Context, cityID int64, street *string) ([]*entity.Address, error)

	// Create persists a new address entity and assigns its ID.
	Create(ctx context.Context, address *entity.Address) error
}
