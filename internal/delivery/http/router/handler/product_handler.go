// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseIDParam reads a positive integer path parameter. Anything else is a
// client error before the pipeline runs.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// ProductHandler holds dependencies for the catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the catalog listing with optional name and price filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var input usecase.ListProductsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filters")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(products) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "Product created successfully")
}

// ReplaceProduct handles the full product update request.
func (h *ProductHandler) ReplaceProduct(c echo.Context) error {
	id, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	var input usecase.ReplaceProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.uc.ReplaceProduct(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// PatchProduct handles the partial product update request.
func (h *ProductHandler) PatchProduct(c echo.Context) error {
	id, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	var input usecase.PatchProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.uc.PatchProduct(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DeleteProduct handles the product removal request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
