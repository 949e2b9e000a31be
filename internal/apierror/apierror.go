// Package apierror provides the standardized error envelope for the API.
// Every 4xx/5xx response goes through this package so clients always get the
// same shape and internal details (SQL errors, stack traces) never leak.
package apierror

// APIError is the canonical error envelope for all error responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field tag failures from the request validator.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
