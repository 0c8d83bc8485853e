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

func newOrderService(userRepo repository.UserRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) usecase.OrderUsecase {
	factory := &mockRepo.StubRepositoryFactory{
		UserRepository:    userRepo,
		OrderRepository:   orderRepo,
		ProductRepository: productRepo,
	}

	return NewOrderService(OrderServiceParams{
		TxManager: &mockRepo.StubTransactionManager{Factory: factory},
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		Logger:    discardLogger(),
	})
}

func TestOrderService_ListOrdersByBuyer_UnknownUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := newOrderService(userRepo, orderRepo, nil)

	ctx := context.Background()
	userRepo.On("FindByID", ctx, int64(9)).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.ListOrdersByBuyer(ctx, 9)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	orderRepo.AssertNotCalled(t, "FindByBuyer", mock.Anything, mock.Anything)
}

func TestOrderService_ListOrdersBySeller_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := newOrderService(userRepo, orderRepo, nil)

	ctx := context.Background()
	expected := []*entity.Order{{ID: 4, SellerID: 9}}
	userRepo.On("FindByID", ctx, int64(9)).
		Return(&entity.User{ID: 9, Name: "Maria Silva"}, nil)
	orderRepo.On("FindBySeller", ctx, int64(9)).Return(expected, nil)

	orders, err := service.ListOrdersBySeller(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_AddOrderProduct_UnknownOrder(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(nil, orderRepo, productRepo)

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(5)).
		Return(nil, repository.ErrOrderNotFound)

	_, err := service.AddOrderProduct(ctx, 5, &usecase.AddOrderProductInput{
		ProductID: 3,
		Amount:    2,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "5")
}

func TestOrderService_AddOrderProduct_NonPositiveAmount(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(nil, orderRepo, productRepo)

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(5)).
		Return(&entity.Order{ID: 5}, nil)
	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, SuggestedPrice: 10}, nil)

	_, err := service.AddOrderProduct(ctx, 5, &usecase.AddOrderProductInput{
		ProductID: 3,
		Amount:    0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAmountInvalid)
}

func TestOrderService_AddOrderProduct_DefaultsToSuggestedPrice(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(nil, orderRepo, productRepo)

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(5)).
		Return(&entity.Order{ID: 5}, nil)
	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, SuggestedPrice: 17.5}, nil)
	orderRepo.On("CreateOrderProduct", ctx, mock.MatchedBy(func(line *entity.OrderProduct) bool {
		return line.OrderID == 5 && line.ProductID == 3 && line.UnitPrice == 17.5 && line.Amount == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.OrderProduct).ID = 31
	}).Return(nil)

	id, err := service.AddOrderProduct(ctx, 5, &usecase.AddOrderProductInput{
		ProductID: 3,
		Amount:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
}

func TestOrderService_AddOrderProduct_ExplicitUnitPriceWins(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(nil, orderRepo, productRepo)

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(5)).
		Return(&entity.Order{ID: 5}, nil)
	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, SuggestedPrice: 17.5}, nil)
	orderRepo.On("CreateOrderProduct", ctx, mock.MatchedBy(func(line *entity.OrderProduct) bool {
		return line.UnitPrice == 12.0
	})).Return(nil)

	_, err := service.AddOrderProduct(ctx, 5, &usecase.AddOrderProductInput{
		ProductID: 3,
		UnitPrice: float64Ptr(12.0),
		Amount:    1,
	})
	assert.NoError(t, err)
}
