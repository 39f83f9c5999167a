package apierror

import (
	"errors"
	"fmt"
)

const (
	CodeValidation      = "VALIDATION"
	CodeUserError       = "USER_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodePaymentRequired = "PAYMENT_REQUIRED"
	CodeNetwork         = "NETWORK"
)

// APIError classifies everything that can go wrong between the client and the
// storefront/content backends. BackendCode carries the backend's own error code
// (e.g. "TAKEN" on signup) when one was reported.
type APIError struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Field       string `json:"field,omitempty"`
	BackendCode string `json:"backend_code,omitempty"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// NewField marks a validation failure on a specific input field.
func NewField(field string, message string) *APIError {
	return &APIError{Code: CodeValidation, Field: field, Message: message}
}

// FromBackend wraps a structured user error reported by a mutation.
func FromBackend(backendCode string, field string, message string) *APIError {
	return &APIError{Code: CodeUserError, BackendCode: backendCode, Field: field, Message: message}
}

// CodeOf extracts the taxonomy code from err, or CodeNetwork when err is not an
// APIError. Transport failures arrive untyped, so the fallback matches their
// classification.
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeNetwork
}

// AsAPIError returns the APIError inside err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
