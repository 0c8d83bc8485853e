package handler

import (
	"log/slog"
	"net/http"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StateHandler holds dependencies for the state, city and address handlers.
type StateHandler struct {
	uc     usecase.GeoUsecase
	logger *slog.Logger
}

// NewStateHandler is the constructor for StateHandler, injected by Fx.
func NewStateHandler(uc usecase.GeoUsecase, logger *slog.Logger) *StateHandler {
	return &StateHandler{
		uc:     uc,
		logger: logger,
	}
}

// optionalQueryParam returns a pointer to the query value, or nil when the
// parameter is absent or blank.
func optionalQueryParam(c echo.Context, name string) *string {
	if value := c.QueryParam(name); value != "" {
		return &value
	}

	return nil
}

// ListStates handles the state listing with an optional name filter.
func (h *StateHandler) ListStates(c echo.Context) error {
	states, err := h.uc.ListStates(c.Request().Context(), optionalQueryParam(c, "name"))
	if err != nil {
		return errors.WithStack(err)
	}

	if len(states) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, states, "States retrieved successfully")
}

// GetState handles the single state lookup.
func (h *StateHandler) GetState(c echo.Context) error {
	id, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}

	state, err := h.uc.GetState(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "State retrieved successfully")
}

// UpdateState handles the full state replacement request.
func (h *StateHandler) UpdateState(c echo.Context) error {
	id, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}

	var input usecase.UpdateStateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid state input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateState(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DeleteState handles the state removal request.
func (h *StateHandler) DeleteState(c echo.Context) error {
	id, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteState(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListCities handles the city listing of a state with an optional name filter.
func (h *StateHandler) ListCities(c echo.Context) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}

	cities, err := h.uc.ListCities(c.Request().Context(), stateID, optionalQueryParam(c, "name"))
	if err != nil {
		return errors.WithStack(err)
	}

	if len(cities) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}

// GetCity handles the single city lookup through its state.
func (h *StateHandler) GetCity(c echo.Context) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		return err
	}

	city, err := h.uc.GetCity(c.Request().Context(), stateID, cityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "City retrieved successfully")
}

// CreateCity handles the city creation request under a state.
func (h *StateHandler) CreateCity(c echo.Context) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}

	var input usecase.CreateCityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := h.uc.CreateCity(c.Request().Context(), stateID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "City created successfully")
}

// ListAddresses handles the address listing of a city with an optional street filter.
func (h *StateHandler) ListAddresses(c echo.Context) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), stateID, cityID, optionalQueryParam(c, "street"))
	if err != nil {
		return errors.WithStack(err)
	}

	if len(addresses) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// CreateAddress handles the address creation request under a city.
func (h *StateHandler) CreateAddress(c echo.Context) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return err
	}
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		return err
	}

	var input usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	id, err := h.uc.CreateAddress(c.Request().Context(), stateID, cityID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"id": id}, "Address created successfully")
}
