package handler

import (
	"log/slog"
	"net/http"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler exposes the seeded profile reference data.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProfiles handles the profile listing request.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.uc.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}
