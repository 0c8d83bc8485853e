package impl

import (
	"context"
	"testing"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	mockRepo "salesapi/internal/mocks/repository"
	"salesapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeoService(stateRepo repository.StateRepository, cityRepo repository.CityRepository, addressRepo repository.AddressRepository) usecase.GeoUsecase {
	factory := &mockRepo.StubRepositoryFactory{
		StateRepository:   stateRepo,
		CityRepository:    cityRepo,
		AddressRepository: addressRepo,
	}

	return NewGeoService(GeoServiceParams{
		TxManager:   &mockRepo.StubTransactionManager{Factory: factory},
		StateRepo:   stateRepo,
		CityRepo:    cityRepo,
		AddressRepo: addressRepo,
		Logger:      discardLogger(),
	})
}

func TestGeoService_ListStates_NameFilter(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	service := newGeoService(stateRepo, nil, nil)

	ctx := context.Background()
	expected := []*entity.State{{ID: 24, Name: "Santa Catarina", Initials: "SC"}}
	stateRepo.On("Search", ctx, stringPtr("Santa")).Return(expected, nil)

	states, err := service.ListStates(ctx, stringPtr("Santa"))
	require.NoError(t, err)
	assert.Equal(t, expected, states)
}

func TestGeoService_GetState_NotFound(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	service := newGeoService(stateRepo, nil, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(99)).
		Return(nil, repository.ErrStateNotFound)

	_, err := service.GetState(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrStateNotFound)
}

func TestGeoService_UpdateState_PathBodyIDMismatchSkipsLookup(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	service := newGeoService(stateRepo, nil, nil)

	err := service.UpdateState(context.Background(), 5, &usecase.UpdateStateInput{
		ID:       6,
		Name:     "Bahia",
		Initials: "BA",
	})
	assert.ErrorIs(t, err, domainerrors.ErrStateIDMismatch)
	stateRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGeoService_UpdateState_UppercasesInitials(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	service := newGeoService(stateRepo, nil, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(5)).
		Return(&entity.State{ID: 5, Name: "Bahia", Initials: "BA"}, nil)
	stateRepo.On("Update", ctx, mock.MatchedBy(func(s *entity.State) bool {
		return s.Initials == "BA" && s.Name == "Bahia Nova"
	})).Return(nil)

	err := service.UpdateState(ctx, 5, &usecase.UpdateStateInput{
		ID:       5,
		Name:     "Bahia Nova",
		Initials: "ba",
	})
	assert.NoError(t, err)
}

func TestGeoService_DeleteState_NotFound(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	service := newGeoService(stateRepo, nil, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(99)).
		Return(nil, repository.ErrStateNotFound)

	err := service.DeleteState(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrStateNotFound)
}

func TestGeoService_ListCities_UnknownState(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	service := newGeoService(stateRepo, cityRepo, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(99)).
		Return(nil, repository.ErrStateNotFound)

	_, err := service.ListCities(ctx, 99, nil)
	assert.ErrorIs(t, err, domainerrors.ErrStateNotFound)
	cityRepo.AssertNotCalled(t, "FindByState", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeoService_GetCity_MismatchIsDistinctFromNotFound(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	service := newGeoService(stateRepo, cityRepo, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByID", ctx, int64(7)).
		Return(&entity.City{ID: 7, Name: "Curitiba", StateID: 16}, nil)

	_, err := service.GetCity(ctx, 24, 7)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.NotErrorIs(t, err, domainerrors.ErrCityNotFound)
}

func TestGeoService_GetCity_CityNotFound(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	service := newGeoService(stateRepo, cityRepo, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByID", ctx, int64(7)).
		Return(nil, repository.ErrCityNotFound)

	_, err := service.GetCity(ctx, 24, 7)
	assert.ErrorIs(t, err, domainerrors.ErrCityNotFound)
}

func TestGeoService_CreateCity_DuplicateNameInState(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	service := newGeoService(stateRepo, cityRepo, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByNameInState", ctx, int64(24), "Joinville").
		Return(&entity.City{ID: 3, Name: "Joinville", StateID: 24}, nil)

	_, err := service.CreateCity(ctx, 24, &usecase.CreateCityInput{Name: "Joinville"})
	assert.ErrorIs(t, err, domainerrors.ErrCityNameExists)
}

func TestGeoService_CreateCity_Success(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	service := newGeoService(stateRepo, cityRepo, nil)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByNameInState", ctx, int64(24), "Joinville").
		Return(nil, repository.ErrCityNotFound)
	cityRepo.On("Create", ctx, mock.AnythingOfType("*entity.City")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.City).ID = 11
		}).
		Return(nil)

	id, err := service.CreateCity(ctx, 24, &usecase.CreateCityInput{Name: "Joinville"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestGeoService_CreateAddress_FieldValidation(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := newGeoService(stateRepo, cityRepo, addressRepo)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByID", ctx, int64(7)).
		Return(&entity.City{ID: 7, Name: "Joinville", StateID: 24}, nil)

	cases := []struct {
		name  string
		input *usecase.CreateAddressInput
	}{
		{"empty street", &usecase.CreateAddressInput{Street: " ", Number: 10, CEP: "89200-000"}},
		{"zero number", &usecase.CreateAddressInput{Street: "Rua XV", Number: 0, CEP: "89200-000"}},
		{"empty cep", &usecase.CreateAddressInput{Street: "Rua XV", Number: 10, CEP: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateAddress(ctx, 24, 7, tc.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, "ADDRESS_INVALID", appErr.ErrorCode())
		})
	}
	addressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGeoService_CreateAddress_Success(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := newGeoService(stateRepo, cityRepo, addressRepo)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByID", ctx, int64(7)).
		Return(&entity.City{ID: 7, Name: "Joinville", StateID: 24}, nil)
	addressRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.CityID == 7 && a.Street == "Rua XV"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Address).ID = 21
	}).Return(nil)

	id, err := service.CreateAddress(ctx, 24, 7, &usecase.CreateAddressInput{
		Street: "Rua XV",
		Number: 10,
		CEP:    "89200-000",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)
}

func TestGeoService_ListAddresses_StreetFilter(t *testing.T) {
	stateRepo := mockRepo.NewMockStateRepository(t)
	cityRepo := mockRepo.NewMockCityRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := newGeoService(stateRepo, cityRepo, addressRepo)

	ctx := context.Background()
	stateRepo.On("FindByID", ctx, int64(24)).
		Return(&entity.State{ID: 24, Name: "Santa Catarina", Initials: "SC"}, nil)
	cityRepo.On("FindByID", ctx, int64(7)).
		Return(&entity.City{ID: 7, Name: "Joinville", StateID: 24}, nil)

	expected := []*entity.Address{{ID: 1, Street: "Rua XV", Number: 10, CEP: "89200-000", CityID: 7}}
	addressRepo.On("FindByCity", ctx, int64(7), stringPtr("XV")).Return(expected, nil)

	addresses, err := service.ListAddresses(ctx, 24, 7, stringPtr("XV"))
	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}
