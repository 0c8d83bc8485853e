// Package errors defines the application error taxonomy. Every validation
// failure carries an HTTP status class, a business error code and a
// user-facing message; the delivery layer maps them onto responses.
package errors

import (
	"fmt"
	"net/http"

	"salesapi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Product-related errors
	ErrProductNameExists = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NAME_EXISTS",
		"a product with this name already exists",
		"",
	)

	ErrProductPriceInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_PRICE_INVALID",
		"the suggested price cannot be less than or equal to zero",
		"",
	)

	ErrProductFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_FIELDS_REQUIRED",
		"name or suggested price is null",
		"",
	)

	ErrProductUpdateEmpty = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_UPDATE_EMPTY",
		"at least one of name or suggested price must be provided",
		"",
	)

	// State/city/address-related errors
	ErrStateNotFound = NewBaseError(
		http.StatusNotFound,
		"STATE_NOT_FOUND",
		"state not found",
		"",
	)

	ErrStateIDMismatch = NewBaseError(
		http.StatusBadRequest,
		"STATE_ID_MISMATCH",
		"path id does not match the state id in the body",
		"",
	)

	ErrCityNotFound = NewBaseError(
		http.StatusNotFound,
		"CITY_NOT_FOUND",
		"city not found",
		"",
	)

	ErrCityNameExists = NewBaseError(
		http.StatusBadRequest,
		"CITY_NAME_EXISTS",
		"a city with this name already exists in this state",
		"",
	)

	ErrAddressInvalid = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_INVALID",
		"street, number and cep are required",
		"",
	)

	// User-related errors
	ErrBirthDateInvalid = NewBaseError(
		http.StatusBadRequest,
		"BIRTH_DATE_INVALID",
		"invalid date, expected format dd/MM/yyyy",
		"",
	)

	ErrUserUnderage = NewBaseError(
		http.StatusBadRequest,
		"USER_UNDERAGE",
		"the user must be at least 18 years old",
		"",
	)

	ErrPasswordUniform = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UNIFORM",
		"the password must contain at least one character different from the others",
		"",
	)

	ErrEmailExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_EXISTS",
		"this email is already registered",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"profile not found",
		"",
	)

	ErrNoUsersFound = NewBaseError(
		http.StatusNotFound,
		"NO_USERS_FOUND",
		"no users were found",
		"",
	)

	// Order-related errors
	ErrOrderAmountInvalid = NewBaseError(
		http.StatusBadRequest,
		"ORDER_AMOUNT_INVALID",
		"the amount must be greater than zero",
		"",
	)

	// Authentication-related errors
	ErrWrongCredentials = NewBaseError(
		http.StatusNotFound,
		"WRONG_CREDENTIALS",
		"incorrect user or password",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// PriceRangeInvalid signals a product listing where the maximum price bound
// is below the minimum. Both values appear in the message.
func PriceRangeInvalid(priceMin, priceMax float64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"PRICE_RANGE_INVALID",
		fmt.Sprintf("the maximum price (%v) cannot be less than the minimum price (%v)", priceMax, priceMin),
		"",
	)
}

// ProductNotFound is the not-found outcome for product lookups by id.
func ProductNotFound(id int64) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		fmt.Sprintf("there is no product with id %d", id),
		"",
	)
}

// ProductTargetInvalid is the client-error outcome a partial update uses when
// the target id does not resolve. Same message as ProductNotFound but a 400
// class, which partial updates report instead of 404.
func ProductTargetInvalid(id int64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_TARGET_INVALID",
		fmt.Sprintf("there is no product with id %d", id),
		"",
	)
}

// ProductInOrder blocks deleting a product that an order line references.
func ProductInOrder(id int64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_IN_ORDER",
		fmt.Sprintf("product %d is referenced by an order and cannot be deleted", id),
		"",
	)
}

// CityStateMismatch signals that a city exists but belongs to a different
// state than the one addressed in the request. Distinct from CITY_NOT_FOUND.
func CityStateMismatch(cityID, stateID int64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"CITY_STATE_MISMATCH",
		fmt.Sprintf("city %d does not belong to state %d", cityID, stateID),
		"",
	)
}

// UserNotFound is the not-found outcome for user lookups by id.
func UserNotFound(id int64) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		fmt.Sprintf("there is no user with id %d", id),
		"",
	)
}

// OrderNotFound is the not-found outcome for order lookups by id.
func OrderNotFound(id int64) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		fmt.Sprintf("there is no order with id %d", id),
		"",
	)
}

// Response is the error envelope the delivery layer writes for failed requests.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and optional detail text.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
