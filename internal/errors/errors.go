package errors

import (
	"errors"
	"net/http"
)

// Error kinds. Every domain error wraps exactly one of these so callers can
// classify with errors.Is without knowing the concrete error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

var (
	// ErrInvalidRequestBody is returned when a request body cannot be decoded.
	ErrInvalidRequestBody = New(ErrValidation, "invalid request body", "INVALID_REQUEST")
	// ErrMissingFields is returned when a registration field is empty.
	ErrMissingFields = New(ErrValidation, "all fields are required", "VALIDATION_ERROR")
	// ErrMissingCredentials is returned when login is attempted without email or password.
	ErrMissingCredentials = New(ErrValidation, "email and password are required", "VALIDATION_ERROR")
	// ErrMissingProductID is returned when a wishlist add carries no product id.
	ErrMissingProductID = New(ErrValidation, "productId is required", "VALIDATION_ERROR")

	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = New(ErrConflict, "user already exists", "USER_ALREADY_EXISTS")
	// ErrAlreadyInWishlist is returned when the wishlist holds a product with the same name.
	ErrAlreadyInWishlist = New(ErrConflict, "product already in wishlist", "ALREADY_IN_WISHLIST")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = New(ErrUnauthorized, "invalid email or password", "INVALID_CREDENTIALS")
	// ErrInvalidToken is returned when a bearer token is missing, malformed, expired or forged.
	ErrInvalidToken = New(ErrUnauthorized, "invalid or expired token", "INVALID_TOKEN")

	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = New(ErrNotFound, "user not found", "USER_NOT_FOUND")
	// ErrProductNotFound is returned when a product id does not resolve in the catalog.
	ErrProductNotFound = New(ErrNotFound, "product not found", "PRODUCT_NOT_FOUND")
)

// Error is a client-safe domain error. Its message is shown to clients as is.
type Error struct {
	kind    error
	message string
	code    string
}

// New creates a domain error of the given kind.
func New(kind error, message, code string) *Error {
	return &Error{kind: kind, message: message, code: code}
}

func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes the kind.
func (e *Error) Unwrap() error {
	return e.kind
}

// Code returns the machine readable error code.
func (e *Error) Code() string {
	return e.code
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything that is not a
// domain error becomes a generic 500 so internals never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}

	switch {
	case errors.Is(domainErr, ErrValidation), errors.Is(domainErr, ErrConflict):
		return NewHTTPError(http.StatusBadRequest, domainErr.message, domainErr.code)
	case errors.Is(domainErr, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, domainErr.message, domainErr.code)
	case errors.Is(domainErr, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, domainErr.message, domainErr.code)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
