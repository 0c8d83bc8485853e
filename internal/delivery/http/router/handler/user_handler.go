package handler

import (
	"log/slog"
	"net/http"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers handles the user listing with optional name and birth date filters.
// A zero-match listing is a not-found failure, unlike the catalog listings.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var input usecase.ListUsersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user filters")
	}

	users, err := h.uc.ListUsers(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// CreateUser handles the user registration request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := h.uc.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "User created successfully")
}

// DeleteUser handles the user removal request. The deleted id is echoed back
// as confirmation.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	deletedID, err := h.uc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": deletedID}, "User deleted successfully")
}
