package errors

import (
	"net/http"

	"mrisafe/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Catalog lookups
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrManufacturerNotFound = NewBaseError(
		http.StatusNotFound,
		"MANUFACTURER_NOT_FOUND",
		"Manufacturer not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please enter a valid email address",
		"",
	)

	// Waitlist
	ErrWaitlistFailed = NewBaseError(
		http.StatusBadGateway,
		"WAITLIST_FAILED",
		"Failed to join waitlist. Please try again later.",
		"",
	)

	// Seeding
	ErrReadOnlySource = NewBaseError(
		http.StatusNotImplemented,
		"READ_ONLY_SOURCE",
		"The configured data source is read-only",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DataServiceError reports a failed call to the hosted data service, implementing the AppError interface
type DataServiceError struct {
	err       error
	operation string
}

// NewDataServiceError creates an error for the failed operation
func NewDataServiceError(err error, operation string) AppError {
	return &DataServiceError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *DataServiceError) Error() string {
	return errors.Wrapf(e.err, "data service call %s failed", e.operation).Error()
}

// Unwrap exposes the transport or driver error
func (e *DataServiceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DataServiceError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DataServiceError) ErrorCode() string {
	return "DATA_SERVICE_ERROR"
}

// Message returns the user-friendly error message
func (e *DataServiceError) Message() string {
	return "The device database is unavailable. Please try again later."
}

// Details returns the failing operation
func (e *DataServiceError) Details() string {
	return e.operation
}

// ConfigurationError reports missing connection parameters, implementing the AppError interface
type ConfigurationError struct {
	missing []string
}

// NewConfigurationError creates an error naming the missing settings
func NewConfigurationError(missing ...string) *ConfigurationError {
	return &ConfigurationError{missing: missing}
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	msg := "data service is not configured"
	for i, name := range e.missing {
		if i == 0 {
			msg += ": missing "
		} else {
			msg += ", "
		}
		msg += name
	}

	return msg
}

// Missing returns the names of the absent settings
func (e *ConfigurationError) Missing() []string {
	return e.missing
}

// HTTPCode returns the HTTP status code
func (e *ConfigurationError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *ConfigurationError) ErrorCode() string {
	return "CONFIGURATION_ERROR"
}

// Message returns the user-friendly error message
func (e *ConfigurationError) Message() string {
	return "The data service environment variables are not properly configured. " +
		"Please ensure DATASERVICE_BASEURL and DATASERVICE_ACCESSKEY are set in your environment."
}

// Details returns detailed error information
func (e *ConfigurationError) Details() string {
	return e.Error()
}

// IsNotFound reports whether err is any of the catalog not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDeviceNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrManufacturerNotFound)
}
