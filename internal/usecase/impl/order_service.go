package impl

import (
	"context"
	"log/slog"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrdersByBuyer returns the orders placed by an existing user. Zero
// matches yield an empty slice.
func (srv *orderService) ListOrdersByBuyer(ctx context.Context, userID int64) ([]*entity.Order, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByBuyer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by buyer")
	}

	return orders, nil
}

// ListOrdersBySeller returns the orders sold by an existing user.
func (srv *orderService) ListOrdersBySeller(ctx context.Context, userID int64) ([]*entity.Order, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindBySeller(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by seller")
	}

	return orders, nil
}

// AddOrderProduct validates and persists a new order line. The unit price
// defaults to the product's suggested price when not supplied.
func (srv *orderService) AddOrderProduct(ctx context.Context, orderID int64, input *usecase.AddOrderProductInput) (int64, error) {
	srv.log(ctx).Info("Adding order line",
		slog.Int64("orderID", orderID), slog.Int64("productID", input.ProductID))

	var createdID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		if _, err := orderRepo.FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.OrderNotFound(orderID)
			}

			return errors.Wrap(err, "failed to find order by id")
		}

		product, err := productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ProductNotFound(input.ProductID)
			}

			return errors.Wrap(err, "failed to find product by id")
		}

		if input.Amount <= 0 {
			return domainerrors.ErrOrderAmountInvalid
		}

		unitPrice := product.SuggestedPrice
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}

		line := &entity.OrderProduct{
			OrderID:   orderID,
			ProductID: input.ProductID,
			UnitPrice: unitPrice,
			Amount:    input.Amount,
		}
		if err := orderRepo.CreateOrderProduct(ctx, line); err != nil {
			return errors.Wrap(err, "failed to create order line")
		}
		createdID = line.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Adding order line failed", slog.Int64("orderID", orderID), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("Order line added", slog.Int64("orderProductID", createdID))

	return createdID, nil
}

func (srv *orderService) ensureUserExists(ctx context.Context, userID int64) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.UserNotFound(userID)
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	return nil
}
