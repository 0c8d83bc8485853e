package repository

import (
	"context"
	"testing"

	"salesapi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockStateRepository mocks repository.StateRepository.
type MockStateRepository struct {
	mock.Mock
}

// NewMockStateRepository builds a mock bound to the test lifecycle.
func NewMockStateRepository(t *testing.T) *MockStateRepository {
	m := &MockStateRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStateRepository) FindByID(ctx context.Context, id int64) (*entity.State, error) {
	args := m.Called(ctx, id)
	state, _ := args.Get(0).(*entity.State)

	return state, args.Error(1)
}

func (m *MockStateRepository) Search(ctx context.Context, name *string) ([]*entity.State, error) {
	args := m.Called(ctx, name)
	states, _ := args.Get(0).([]*entity.State)

	return states, args.Error(1)
}

func (m *MockStateRepository) Update(ctx context.Context, state *entity.State) error {
	args := m.Called(ctx, state)

	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockCityRepository mocks repository.CityRepository.
type MockCityRepository struct {
	mock.Mock
}

// NewMockCityRepository builds a mock bound to the test lifecycle.
func NewMockCityRepository(t *testing.T) *MockCityRepository {
	m := &MockCityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCityRepository) FindByID(ctx context.Context, id int64) (*entity.City, error) {
	args := m.Called(ctx, id)
	city, _ := args.Get(0).(*entity.City)

	return city, args.Error(1)
}

func (m *MockCityRepository) FindByState(ctx context.Context, stateID int64, name *string) ([]*entity.City, error) {
	args := m.Called(ctx, stateID, name)
	cities, _ := args.Get(0).([]*entity.City)

	return cities, args.Error(1)
}

func (m *MockCityRepository) FindByNameInState(ctx context.Context, stateID int64, name string) (*entity.City, error) {
	args := m.Called(ctx, stateID, name)
	city, _ := args.Get(0).(*entity.City)

	return city, args.Error(1)
}

func (m *MockCityRepository) Create(ctx context.Context, city *entity.City) error {
	args := m.Called(ctx, city)

	return args.Error(0)
}

// MockAddressRepository mocks repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

// NewMockAddressRepository builds a mock bound to the test lifecycle.
func NewMockAddressRepository(t *testing.T) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressRepository) FindByCity(ctx context.Context, cityID int64, street *string) ([]*entity.Address, error) {
	args := m.Called(ctx, cityID, street)
	addresses, _ := args.Get(0).([]*entity.Address)

	return addresses, args.Error(1)
}

func (m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}
