package repository

import (
	"context"
	"errors"

	"salesapi/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order id does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByBuyer returns the orders where the given user is the buyer.
	FindByBuyer(ctx context.Context, userID int64) ([]*entity.Order, error)

	// FindBySeller returns the orders where the given user is the seller.
	FindBySeller(ctx context.Context, userID int64) ([]*entity.Order, error)

	// CreateOrderProduct persists a new order line and assigns its ID.
	CreateOrderProduct(ctx context.Context, line *entity.OrderProduct) error

	// HasOrderProductForProduct reports whether any order line references the
	// given product. This is the delete guard for products.
	HasOrderProductForProduct(ctx context.Context, productID int64) (bool, error)
}
