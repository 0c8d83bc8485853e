// Package impl contains the implementation of the application's business logic.
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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog entries matching the filters. Supplied
// filters combine with AND; a zero-match result is an empty slice, not an error.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	if input.PriceMin != nil && input.PriceMax != nil && *input.PriceMax < *input.PriceMin {
		srv.log(ctx).Warn("Rejected product listing with inverted price range",
			slog.Float64("priceMin", *input.PriceMin), slog.Float64("priceMax", *input.PriceMax))

		return nil, domainerrors.PriceRangeInvalid(*input.PriceMin, *input.PriceMax)
	}

	products, err := srv.productRepo.Search(ctx, repository.ProductSearchFilter{
		Name:     input.Name,
		PriceMin: input.PriceMin,
		PriceMax: input.PriceMax,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// CreateProduct validates name uniqueness and price positivity, then persists
// the product and returns the assigned id.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (int64, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	var createdID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := ensureProductNameFree(ctx, productRepo, input.Name, 0); err != nil {
			return err
		}

		if input.SuggestedPrice <= 0 {
			return domainerrors.ErrProductPriceInvalid
		}

		product := &entity.Product{
			Name:           input.Name,
			CategoryID:     input.CategoryID,
			SuggestedPrice: input.SuggestedPrice,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}
		createdID = product.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Product creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("Product created", slog.Int64("productID", createdID))

	return createdID, nil
}

// ReplaceProduct replaces every field of an existing product after the full
// validation sequence: existence, required fields, name collision, price.
func (srv *productService) ReplaceProduct(ctx context.Context, id int64, input *usecase.ReplaceProductInput) error {
	srv.log(ctx).Info("Replacing product", slog.Int64("productID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ProductNotFound(id)
			}

			return errors.Wrap(err, "failed to find product by id")
		}

		if input.Name == nil || input.SuggestedPrice == nil {
			return domainerrors.ErrProductFieldsRequired
		}

		if err := ensureProductNameFree(ctx, productRepo, *input.Name, id); err != nil {
			return err
		}

		if *input.SuggestedPrice <= 0 {
			return domainerrors.ErrProductPriceInvalid
		}

		product.Name = *input.Name
		product.SuggestedPrice = *input.SuggestedPrice
		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}

		return errors.Wrap(productRepo.Update(ctx, product), "failed to update product")
	})
	if err != nil {
		srv.log(ctx).Warn("Product replacement failed", slog.Int64("productID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// PatchProduct applies only the provided fields. An unresolved target id is a
// client error here, not a not-found; an all-nil body is rejected outright.
func (srv *productService) PatchProduct(ctx context.Context, id int64, input *usecase.PatchProductInput) error {
	srv.log(ctx).Info("Patching product", slog.Int64("productID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ProductTargetInvalid(id)
			}

			return errors.Wrap(err, "failed to find product by id")
		}

		if input.Name == nil && input.SuggestedPrice == nil {
			return domainerrors.ErrProductUpdateEmpty
		}

		if input.Name != nil {
			if err := ensureProductNameFree(ctx, productRepo, *input.Name, id); err != nil {
				return err
			}
			product.Name = *input.Name
		}

		if input.SuggestedPrice != nil {
			if *input.SuggestedPrice <= 0 {
				return domainerrors.ErrProductPriceInvalid
			}
			product.SuggestedPrice = *input.SuggestedPrice
		}

		return errors.Wrap(productRepo.Update(ctx, product), "failed to update product")
	})
	if err != nil {
		srv.log(ctx).Warn("Product patch failed", slog.Int64("productID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// DeleteProduct removes a product unless any order line references it.
func (srv *productService) DeleteProduct(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting product", slog.Int64("productID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		if _, err := productRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ProductNotFound(id)
			}

			return errors.Wrap(err, "failed to find product by id")
		}

		referenced, err := orderRepo.HasOrderProductForProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check order lines for product")
		}
		if referenced {
			return domainerrors.ProductInOrder(id)
		}

		return errors.Wrap(productRepo.Delete(ctx, id), "failed to delete product")
	})
	if err != nil {
		srv.log(ctx).Warn("Product deletion failed", slog.Int64("productID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Product deleted", slog.Int64("productID", id))

	return nil
}

// ensureProductNameFree rejects a name already taken by a product other than
// selfID. A selfID of zero means any match is a collision.
func ensureProductNameFree(ctx context.Context, productRepo repository.ProductRepository, name string, selfID int64) error {
	existing, err := productRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check product name uniqueness")
	}

	if existing.ID != selfID {
		return domainerrors.ErrProductNameExists
	}

	return nil
}
