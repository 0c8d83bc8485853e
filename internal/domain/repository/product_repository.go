package repository

import (
	"context"
	"errors"

	"salesapi/internal/domain/entity"
)

// ErrProductNotFound is returned when a product id does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ProductSearchFilter narrows the product listing. Nil fields are ignored and
// supplied fields combine with AND.
type ProductSearchFilter struct {
	Name     *string  // Substring match on the product name.
	PriceMin *float64 // Inclusive lower bound on the suggested price.
	PriceMax *float64 // Inclusive upper bound on the suggested price.
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByName retrieves a product by exact name match.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// Search returns all products matching the filter. A zero-match result is
	// a nil error with an empty slice.
	Search(ctx context.Context, filter ProductSearchFilter) ([]*entity.Product, error)

	// Create persists a new product entity and assigns its ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the stored fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product with the given ID.
	Delete(ctx context.Context, id int64) error
}
