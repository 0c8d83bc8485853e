package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// UpdateStateInput is a full state replacement. The ID must equal the path id
// of the request; a mismatch is rejected before any lookup.
type UpdateStateInput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Initials string `json:"initials" validate:"required,len=2"`
}

// CreateCityInput defines the data required to create a city under a state.
type CreateCityInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateAddressInput defines the data required to create an address under a
// (state, city) pair.
type CreateAddressInput struct {
	Street     string `json:"street"`
	Number     int    `json:"number"`
	CEP        string `json:"cep"`
	Complement string `json:"complement"`
}

// GeoUsecase defines the state, city and address pipelines.
type GeoUsecase interface {
	// ListStates returns the states whose name contains the given substring,
	// or all states when the filter is nil. Zero matches yield an empty slice.
	ListStates(ctx context.Context, name *string) ([]*entity.State, error)

	// GetState resolves a single state by id.
	GetState(ctx context.Context, id int64) (*entity.State, error)

	// UpdateState replaces the fields of an existing state. The path id must
	// match input.ID.
	UpdateState(ctx context.Context, pathID int64, input *UpdateStateInput) error

	// DeleteState removes a state by id.
	DeleteState(ctx context.Context, id int64) error

	// ListCities returns the cities of an existing state, optionally filtered
	// by a name substring.
	ListCities(ctx context.Context, stateID int64, name *string) ([]*entity.City, error)

	// GetCity resolves a city through its state; a city that belongs to a
	// different state is a mismatch failure, not a not-found.
	GetCity(ctx context.Context, stateID, cityID int64) (*entity.City, error)

	// CreateCity persists a city under an existing state, returning its id.
	CreateCity(ctx context.Context, stateID int64, input *CreateCityInput) (int64, error)

	// ListAddresses returns the addresses of a city resolved through its
	// state, optionally filtered by a street substring.
	ListAddresses(ctx context.Context, stateID, cityID int64, street *string) ([]*entity.Address, error)

	// CreateAddress persists an address under an existing (state, city) pair,
	// returning its id.
	CreateAddress(ctx context.Context, stateID, cityID int64, input *CreateAddressInput) (int64, error)
}
