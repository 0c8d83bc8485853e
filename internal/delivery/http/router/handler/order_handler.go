package handler

import (
	"log/slog"
	"net/http"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPurchases handles the listing of orders where the user is the buyer.
func (h *OrderHandler) ListPurchases(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrdersByBuyer(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(orders) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListSales handles the listing of orders where the user is the seller.
func (h *OrderHandler) ListSales(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrdersBySeller(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(orders) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// AddOrderProduct handles appending a product line to an existing order.
func (h *OrderHandler) AddOrderProduct(c echo.Context) error {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return err
	}

	var input usecase.AddOrderProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order line input")
	}

	id, err := h.uc.AddOrderProduct(c.Request().Context(), orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "Order line created successfully")
}
