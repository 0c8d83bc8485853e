package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"
	mockRepo "salesapi/internal/mocks/repository"
	"salesapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProductService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) usecase.ProductUsecase {
	factory := &mockRepo.StubRepositoryFactory{
		ProductRepository: productRepo,
		OrderRepository:   orderRepo,
	}

	return NewProductService(ProductServiceParams{
		TxManager:   &mockRepo.StubTransactionManager{Factory: factory},
		ProductRepo: productRepo,
		Logger:      discardLogger(),
	})
}

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func TestProductService_ListProducts_InvertedPriceRange(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	_, err := service.ListProducts(context.Background(), &usecase.ListProductsInput{
		PriceMin: float64Ptr(100),
		PriceMax: float64Ptr(50),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "100")
	assert.Contains(t, appErr.Message(), "50")
}

func TestProductService_ListProducts_FiltersCombined(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	expected := []*entity.Product{{ID: 1, Name: "Teclado", SuggestedPrice: 120}}

	productRepo.On("Search", ctx, repository.ProductSearchFilter{
		Name:     stringPtr("Tec"),
		PriceMin: float64Ptr(50),
		PriceMax: float64Ptr(200),
	}).Return(expected, nil)

	products, err := service.ListProducts(ctx, &usecase.ListProductsInput{
		Name:     stringPtr("Tec"),
		PriceMin: float64Ptr(50),
		PriceMax: float64Ptr(200),
	})
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_ListProducts_EmptyResultIsNotAnError(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("Search", ctx, repository.ProductSearchFilter{}).
		Return([]*entity.Product{}, nil)

	products, err := service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByName", ctx, "Abacaxi").
		Return(nil, repository.ErrProductNotFound)
	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = 42
		}).
		Return(nil)

	id, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:           "Abacaxi",
		SuggestedPrice: 5.5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByName", ctx, "Abacaxi").
		Return(&entity.Product{ID: 7, Name: "Abacaxi"}, nil)

	_, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:           "Abacaxi",
		SuggestedPrice: 5.5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNameExists)
}

func TestProductService_CreateProduct_ZeroPrice(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByName", ctx, "Teste").
		Return(nil, repository.ErrProductNotFound)

	_, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:           "Teste",
		SuggestedPrice: 0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductPriceInvalid)
}

func TestProductService_ReplaceProduct_UnknownID(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(99)).
		Return(nil, repository.ErrProductNotFound)

	err := service.ReplaceProduct(ctx, 99, &usecase.ReplaceProductInput{
		Name:           stringPtr("Novo"),
		SuggestedPrice: float64Ptr(10),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "99")
}

func TestProductService_ReplaceProduct_NullFields(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Velho", SuggestedPrice: 10}, nil)

	err := service.ReplaceProduct(ctx, 1, &usecase.ReplaceProductInput{
		SuggestedPrice: float64Ptr(10),
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductFieldsRequired)
}

func TestProductService_ReplaceProduct_KeepingOwnNameIsNotACollision(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Teclado", SuggestedPrice: 10}, nil)
	productRepo.On("FindByName", ctx, "Teclado").
		Return(&entity.Product{ID: 1, Name: "Teclado"}, nil)
	productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	err := service.ReplaceProduct(ctx, 1, &usecase.ReplaceProductInput{
		Name:           stringPtr("Teclado"),
		SuggestedPrice: float64Ptr(15),
	})
	assert.NoError(t, err)
}

func TestProductService_PatchProduct_UnknownIDIsClientError(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(99)).
		Return(nil, repository.ErrProductNotFound)

	err := service.PatchProduct(ctx, 99, &usecase.PatchProductInput{
		Name: stringPtr("Novo"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestProductService_PatchProduct_EmptyBody(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Teclado", SuggestedPrice: 10}, nil)

	err := service.PatchProduct(ctx, 1, &usecase.PatchProductInput{})
	assert.ErrorIs(t, err, domainerrors.ErrProductUpdateEmpty)
}

func TestProductService_PatchProduct_OnlyPrice(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(productRepo, nil)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Teclado", SuggestedPrice: 10}, nil)
	productRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Name == "Teclado" && p.SuggestedPrice == 25
	})).Return(nil)

	err := service.PatchProduct(ctx, 1, &usecase.PatchProductInput{
		SuggestedPrice: float64Ptr(25),
	})
	assert.NoError(t, err)
}

func TestProductService_DeleteProduct_ReferencedByOrder(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := newProductService(productRepo, orderRepo)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, Name: "Monitor"}, nil)
	orderRepo.On("HasOrderProductForProduct", ctx, int64(3)).
		Return(true, nil)

	err := service.DeleteProduct(ctx, 3)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "3")
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := newProductService(productRepo, orderRepo)

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, Name: "Monitor"}, nil)
	orderRepo.On("HasOrderProductForProduct", ctx, int64(3)).
		Return(false, nil)
	productRepo.On("Delete", ctx, int64(3)).Return(nil)

	err := service.DeleteProduct(ctx, 3)
	assert.NoError(t, err)
}
