package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrValidation           = errors.New("validation failed")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrRentalNotFound       = errors.New("rental not found")
	ErrCubbyNotFound        = errors.New("cubby not found")
	ErrCubbyUnavailable     = errors.New("cubby is not available for the requested period")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrNoUnpaidEarnings     = errors.New("no unpaid earnings")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrCodeSaleNotFound         = "SALE_NOT_FOUND"
	ErrCodeRentalNotFound       = "RENTAL_NOT_FOUND"
	ErrCodeCubbyNotFound        = "CUBBY_NOT_FOUND"
	ErrCodeCubbyUnavailable     = "CUBBY_UNAVAILABLE"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodeNoUnpaidEarnings     = "NO_UNPAID_EARNINGS"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
	ErrCodeCacheError           = "CACHE_ERROR"
)

// WrapValidation reports malformed or out-of-range input.
func WrapValidation(format string, args ...any) *BusinessError {
	return NewBusinessError(
		ErrCodeValidation,
		fmt.Sprintf(format, args...),
		ErrValidation,
	)
}

func WrapInvalidConfiguration(message string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidConfiguration,
		message,
		ErrInvalidConfiguration,
	)
}

func WrapSaleNotFound(saleID string) *BusinessError {
	return NewBusinessError(
		ErrCodeSaleNotFound,
		fmt.Sprintf("Sale with ID %s not found", saleID),
		ErrSaleNotFound,
	)
}

func WrapRentalNotFound(rentalID string) *BusinessError {
	return NewBusinessError(
		ErrCodeRentalNotFound,
		fmt.Sprintf("Rental with ID %s not found", rentalID),
		ErrRentalNotFound,
	)
}

func WrapCubbyNotFound(cubbyID string) *BusinessError {
	return NewBusinessError(
		ErrCodeCubbyNotFound,
		fmt.Sprintf("Cubby with ID %s not found", cubbyID),
		ErrCubbyNotFound,
	)
}

func WrapCubbyUnavailable(cubbyID string) *BusinessError {
	return NewBusinessError(
		ErrCodeCubbyUnavailable,
		fmt.Sprintf("Cubby with ID %s is already rented for the requested period", cubbyID),
		ErrCubbyUnavailable,
	)
}

func WrapInsufficientStock(itemID string, requested int) *BusinessError {
	return NewBusinessError(
		ErrCodeInsufficientStock,
		fmt.Sprintf("Item %s has fewer than %d units in stock", itemID, requested),
		ErrInsufficientStock,
	)
}

func WrapNoUnpaidEarnings(sellerID string) *BusinessError {
	return NewBusinessError(
		ErrCodeNoUnpaidEarnings,
		fmt.Sprintf("Seller %s has no unpaid earnings", sellerID),
		ErrNoUnpaidEarnings,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

// Code returns the business error code carried by err, or "" when err is not a BusinessError.
func Code(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
