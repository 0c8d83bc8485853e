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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByBuyer returns the orders where the given user is the buyer.
func (repo *orderRepository) FindByBuyer(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by buyer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindBySeller returns the orders where the given user is the seller.
func (repo *orderRepository) FindBySeller(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", userID).
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by seller")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CreateOrderProduct persists a new order line and assigns its ID.
func (repo *orderRepository) CreateOrderProduct(ctx context.Context, line *entity.OrderProduct) error {
	lineM := fromOrderProductDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line")
	}

	// Update the entity with generated values
	line.ID = lineM.ID

	return nil
}

// HasOrderProductForProduct reports whether any order line references the
// given product.
func (repo *orderRepository) HasOrderProductForProduct(ctx context.Context, productID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderProductModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count order lines for product")
	}

	return count > 0, nil
}

// toOrderDomain converts a persistence model to a domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:                   orderM.ID,
		UserID:               orderM.UserID,
		SellerID:             orderM.SellerID,
		DeliveryAddressID:    orderM.DeliveryAddressID,
		DeliveryForecast:     orderM.DeliveryForecast,
		ShippingCompany:      orderM.ShippingCompany,
		ShippingCompanyPrice: orderM.ShippingCompanyPrice,
		CreatedAt:            orderM.CreatedAt,
	}
}

// fromOrderProductDomain converts a domain entity to a persistence model.
func fromOrderProductDomain(line *entity.OrderProduct) *model.OrderProductModel {
	return &model.OrderProductModel{
		ID:        line.ID,
		OrderID:   line.OrderID,
		ProductID: line.ProductID,
		UnitPrice: line.UnitPrice,
		Amount:    line.Amount,
	}
}
