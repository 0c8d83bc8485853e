package postgres

import (
	"context"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByName retrieves a product by exact name match.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// Search returns all products matching the filter, combining criteria with AND.
func (repo *productRepository) Search(ctx context.Context, filter repository.ProductSearchFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Name != nil {
		query = query.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.PriceMin != nil {
		query = query.Where("suggested_price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("suggested_price <= ?", *filter.PriceMax)
	}

	var productModels []*model.ProductModel
	if err := query.Order("id ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product and assigns the generated ID back to the entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductNameExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductFieldsRequired
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update replaces the stored fields of an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            product.Name,
			"category_id":     product.CategoryID,
			"suggested_price": product.SuggestedPrice,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductNameExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product with the given ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain converts a persistence model to a domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:             productM.ID,
		Name:           productM.Name,
		CategoryID:     productM.CategoryID,
		SuggestedPrice: productM.SuggestedPrice,
		CreatedAt:      productM.CreatedAt,
		UpdatedAt:      productM.UpdatedAt,
	}
}

// fromProductDomain converts a domain entity to a persistence model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:             product.ID,
		Name:           product.Name,
		CategoryID:     product.CategoryID,
		SuggestedPrice: product.SuggestedPrice,
	}
}
