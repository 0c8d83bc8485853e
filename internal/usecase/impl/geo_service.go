package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geoService implements the GeoUsecase interface for states, cities and addresses.
type geoService struct {
	txManager   repository.TransactionManager
	stateRepo   repository.StateRepository
	cityRepo    repository.CityRepository
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// GeoServiceParams holds dependencies for geoService, injected by Fx.
type GeoServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StateRepo   repository.StateRepository
	CityRepo    repository.CityRepository
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewGeoService is the constructor for geoService.
func NewGeoService(params GeoServiceParams) usecase.GeoUsecase {
	return &geoService{
		txManager:   params.TxManager,
		stateRepo:   params.StateRepo,
		cityRepo:    params.CityRepo,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *geoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStates returns the states matching the optional name substring. A
// zero-match result is an empty slice, not an error.
func (srv *geoService) ListStates(ctx context.Context, name *string) ([]*entity.State, error) {
	states, err := srv.stateRepo.Search(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search states")
	}

	return states, nil
}

// GetState resolves a single state by id.
func (srv *geoService) GetState(ctx context.Context, id int64) (*entity.State, error) {
	state, err := srv.stateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, domainerrors.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by id")
	}

	return state, nil
}

// UpdateState replaces the fields of an existing state. A path id different
// from the body id is rejected before any lookup is performed.
func (srv *geoService) UpdateState(ctx context.Context, pathID int64, input *usecase.UpdateStateInput) error {
	if pathID != input.ID {
		srv.log(ctx).Warn("Rejected state update with mismatched ids",
			slog.Int64("pathID", pathID), slog.Int64("bodyID", input.ID))

		return domainerrors.ErrStateIDMismatch
	}

	srv.log(ctx).Info("Updating state", slog.Int64("stateID", pathID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.StateRepo()

		state, err := stateRepo.FindByID(ctx, pathID)
		if err != nil {
			if errors.Is(err, repository.ErrStateNotFound) {
				return domainerrors.ErrStateNotFound
			}

			return errors.Wrap(err, "failed to find state by id")
		}

		state.Name = input.Name
		state.Initials = strings.ToUpper(input.Initials)

		return errors.Wrap(stateRepo.Update(ctx, state), "failed to update state")
	})
	if err != nil {
		srv.log(ctx).Warn("State update failed", slog.Int64("stateID", pathID), slog.Any("error", err))

		return err
	}

	return nil
}

// DeleteState removes a state by id.
func (srv *geoService) DeleteState(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting state", slog.Int64("stateID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.StateRepo()

		if _, err := stateRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrStateNotFound) {
				return domainerrors.ErrStateNotFound
			}

			return errors.Wrap(err, "failed to find state by id")
		}

		return errors.Wrap(stateRepo.Delete(ctx, id), "failed to delete state")
	})
	if err != nil {
		srv.log(ctx).Warn("State deletion failed", slog.Int64("stateID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// ListCities returns the cities of an existing state, optionally filtered by
// a name substring. Zero matches yield an empty slice.
func (srv *geoService) ListCities(ctx context.Context, stateID int64, name *string) ([]*entity.City, error) {
	if _, err := srv.stateRepo.FindByID(ctx, stateID); err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, domainerrors.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by id")
	}

	cities, err := srv.cityRepo.FindByState(ctx, stateID, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search cities")
	}

	return cities, nil
}

// GetCity resolves a city through its state. A city that exists under a
// different state is a mismatch failure, distinct from not-found.
func (srv *geoService) GetCity(ctx context.Context, stateID, cityID int64) (*entity.City, error) {
	city, err := srv.resolveCityInState(ctx, srv.stateRepo, srv.cityRepo, stateID, cityID)
	if err != nil {
		return nil, err
	}

	return city, nil
}

// CreateCity persists a city under an existing state.
func (srv *geoService) CreateCity(ctx context.Context, stateID int64, input *usecase.CreateCityInput) (int64, error) {
	srv.log(ctx).Info("Creating city", slog.Int64("stateID", stateID), slog.String("name", input.Name))

	var createdID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.StateRepo()
		cityRepo := repoFactory.CityRepo()

		if _, err := stateRepo.FindByID(ctx, stateID); err != nil {
			if errors.Is(err, repository.ErrStateNotFound) {
				return domainerrors.ErrStateNotFound
			}

			return errors.Wrap(err, "failed to find state by id")
		}

		if _, err := cityRepo.FindByNameInState(ctx, stateID, input.Name); err == nil {
			return domainerrors.ErrCityNameExists
		} else if !errors.Is(err, repository.ErrCityNotFound) {
			return errors.Wrap(err, "failed to check city name uniqueness")
		}

		city := &entity.City{
			Name:    input.Name,
			StateID: stateID,
		}
		if err := cityRepo.Create(ctx, city); err != nil {
			return errors.Wrap(err, "failed to create city")
		}
		createdID = city.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("City creation failed", slog.Int64("stateID", stateID), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("City created", slog.Int64("cityID", createdID))

	return createdID, nil
}

// ListAddresses returns the addresses of a city resolved through its state.
func (srv *geoService) ListAddresses(ctx context.Context, stateID, cityID int64, street *string) ([]*entity.Address, error) {
	if _, err := srv.resolveCityInState(ctx, srv.stateRepo, srv.cityRepo, stateID, cityID); err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindByCity(ctx, cityID, street)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search addresses")
	}

	return addresses, nil
}

// CreateAddress persists an address under an existing (state, city) pair.
// Street, number and CEP violations are client errors, each with its own detail.
func (srv *geoService) CreateAddress(ctx context.Context, stateID, cityID int64, input *usecase.CreateAddressInput) (int64, error) {
	srv.log(ctx).Info("Creating address", slog.Int64("stateID", stateID), slog.Int64("cityID", cityID))

	var createdID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.resolveCityInState(ctx, repoFactory.StateRepo(), repoFactory.CityRepo(), stateID, cityID); err != nil {
			return err
		}

		if strings.TrimSpace(input.Street) == "" {
			return domainerrors.ErrAddressInvalid.WithDetails("street must not be empty")
		}
		if input.Number == 0 {
			return domainerrors.ErrAddressInvalid.WithDetails("number must not be zero")
		}
		if strings.TrimSpace(input.CEP) == "" {
			return domainerrors.ErrAddressInvalid.WithDetails("cep must not be empty")
		}

		address := &entity.Address{
			Street:     input.Street,
			Number:     input.Number,
			CEP:        input.CEP,
			Complement: input.Complement,
			CityID:     cityID,
		}
		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		createdID = address.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Address creation failed",
			slog.Int64("stateID", stateID), slog.Int64("cityID", cityID), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("Address created", slog.Int64("addressID", createdID))

	return createdID, nil
}

// resolveCityInState checks, in order, that the state exists, the city exists
// and the city belongs to that state. The three failures stay distinct.
func (srv *geoService) resolveCityInState(
	ctx context.Context,
	stateRepo repository.StateRepository,
	cityRepo repository.CityRepository,
	stateID, cityID int64,
) (*entity.City, error) {
	if _, err := stateRepo.FindByID(ctx, stateID); err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, domainerrors.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by id")
	}

	city, err := cityRepo.FindByID(ctx, cityID)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by id")
	}

	if city.StateID != stateID {
		srv.log(ctx).Warn("City does not belong to the addressed state",
			slog.Int64("cityID", cityID), slog.Int64("stateID", stateID), slog.Int64("actualStateID", city.StateID))

		return nil, domainerrors.CityStateMismatch(cityID, stateID)
	}

	return city, nil
}
