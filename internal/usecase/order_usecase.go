package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// AddOrderProductInput defines the data required to append a line to an
// order. When UnitPrice is nil the product's suggested price is used.
type AddOrderProductInput struct {
	ProductID int64    `json:"product_id"`
	UnitPrice *float64 `json:"unit_price"`
	Amount    int      `json:"amount"`
}

// OrderUsecase defines the order pipelines the delivery layer depends on.
type OrderUsecase interface {
	// ListOrdersByBuyer returns the orders placed by an existing user.
	ListOrdersByBuyer(ctx context.Context, userID int64) ([]*entity.Order, error)

	// ListOrdersBySeller returns the orders sold by an existing user.
	ListOrdersBySeller(ctx context.Context, userID int64) ([]*entity.Order, error)

	// AddOrderProduct validates and persists a new order line, returning its
	// id. These lines are what block deletion of the referenced product.
	AddOrderProduct(ctx context.Context, orderID int64, input *AddOrderProductInput) (int64, error)
}
