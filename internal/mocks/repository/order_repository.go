package repository

import (
	"context"
	"testing"

	"salesapi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository builds a mock bound to the test lifecycle.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, userID int64) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindBySeller(ctx context.Context, userID int64) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) CreateOrderProduct(ctx context.Context, line *entity.OrderProduct) error {
	args := m.Called(ctx, line)

	return args.Error(0)
}

func (m *MockOrderRepository) HasOrderProductForProduct(ctx context.Context, productID int64) (bool, error) {
	args := m.Called(ctx, productID)

	return args.Bool(0), args.Error(1)
}
