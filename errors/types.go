package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// World document errors
	ErrCodeWorldNotFound   ErrorCode = "WORLD_NOT_FOUND"
	ErrCodeWorldInvalid    ErrorCode = "WORLD_INVALID"
	ErrCodeWorldValidation ErrorCode = "WORLD_VALIDATION"

	// Coordination errors
	ErrCodePanelNotFound ErrorCode = "PANEL_NOT_FOUND"
	ErrCodeNodeNotFound  ErrorCode = "NODE_NOT_FOUND"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// FacetError represents a structured error with context
type FacetError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *FacetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FacetError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *FacetError) WithDetail(key string, value interface{}) *FacetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *FacetError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new FacetError
func New(code ErrorCode, message string) *FacetError {
	return &FacetError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a FacetError
func Wrap(err error, code ErrorCode, message string) *FacetError {
	return &FacetError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific FacetError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	facetErr, ok := err.(*FacetError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return facetErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	facetErr, ok := err.(*FacetError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return facetErr.Code
}
