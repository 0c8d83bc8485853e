// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// ListProductsInput carries the optional catalog filters. Supplied filters
// combine with AND.
type ListProductsInput struct {
	Name     *string  `query:"name"`
	PriceMin *float64 `query:"price_min"`
	PriceMax *float64 `query:"price_max"`
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name           string  `json:"name" validate:"required"`
	CategoryID     int64   `json:"category_id"`
	SuggestedPrice float64 `json:"suggested_price"`
}

// ReplaceProductInput is a full replacement. Name and SuggestedPrice are
// pointers so a missing field is distinguishable from a zero value and can be
// rejected explicitly.
type ReplaceProductInput struct {
	Name           *string  `json:"name"`
	CategoryID     *int64   `json:"category_id"`
	SuggestedPrice *float64 `json:"suggested_price"`
}

// PatchProductInput is a partial update; only non-nil fields are applied.
// A body with no field set is a distinct rejected case.
type PatchProductInput struct {
	Name           *string  `json:"name"`
	SuggestedPrice *float64 `json:"suggested_price"`
}

// ProductUsecase defines the product pipelines the delivery layer depends on.
type ProductUsecase interface {
	// ListProducts returns the products matching the filters. A zero-match
	// result is a nil error with an empty slice.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// CreateProduct validates and persists a new product, returning its id.
	CreateProduct(ctx context.Context, input *CreateProductInput) (int64, error)

	// ReplaceProduct validates and replaces every field of an existing product.
	ReplaceProduct(ctx context.Context, id int64, input *ReplaceProductInput) error

	// PatchProduct applies only the provided fields to an existing product.
	PatchProduct(ctx context.Context, id int64, input *PatchProductInput) error

	// DeleteProduct removes a product unless an order line references it.
	DeleteProduct(ctx context.Context, id int64) error
}
