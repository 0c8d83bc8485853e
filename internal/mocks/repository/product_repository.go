package repository

import (
	"context"
	"testing"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository builds a mock bound to the test lifecycle.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, filter repository.ProductSearchFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
