// Package errors provides application-level error types and utilities.
// It defines the error kinds the claim engine reports to callers: validation,
// not found, duplicate claim, no-op change, forbidden transition, rule lookup
// failure and generic internal errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeDuplicateClaim      ErrorType = "duplicate_claim"
	ErrorTypeNoChange            ErrorType = "no_change"
	ErrorTypeForbiddenTransition ErrorType = "forbidden_transition"
	ErrorTypeRuleLookup          ErrorType = "rule_lookup_error"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeInternal            ErrorType = "internal_error"
	ErrorTypeBadRequest          ErrorType = "bad_request"
)

// AppError represents an application error with additional context.
// Fields carries the complete list of failing preconditions for validation
// errors so callers receive every problem in one response.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	Fields  []string  `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, strings.Join(e.Fields, "; "))
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: detail,
	}
}

// NewValidationErrors creates a validation error carrying every failing field.
func NewValidationErrors(fields []string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: "validation failed",
		Code:    http.StatusBadRequest,
		Fields:  fields,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
		Details: detail,
	}
}

// NewDuplicateClaimError creates an error for a claim that already covers
// one of the requested (order, sku) pairs.
func NewDuplicateClaimError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeDuplicateClaim,
		Message: message,
		Code:    http.StatusConflict,
		Details: detail,
	}
}

// NewNoChangeError creates an error for a status change request that neither
// changes the status nor adds a note.
func NewNoChangeError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNoChange,
		Message: message,
		Code:    http.StatusConflict,
	}
}

// NewForbiddenTransitionError creates an error for a transition the actor is
// not permitted to perform.
func NewForbiddenTransitionError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeForbiddenTransition,
		Message: message,
		Code:    http.StatusForbidden,
		Details: detail,
	}
}

// NewConflictError creates an error for concurrent modification conflicts.
func NewConflictError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
		Code:    http.StatusConflict,
		Details: detail,
	}
}

// NewRuleLookupError wraps a genuine storage failure while reading the
// warranty rule table. Missing rules are never reported through this error.
func NewRuleLookupError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeRuleLookup,
		Message: message,
		Code:    http.StatusServiceUnavailable,
		Details: detail,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: detail,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeBadRequest,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: detail,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsDuplicateClaimError checks if the error is a duplicate claim error
func IsDuplicateClaimError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeDuplicateClaim
}

// IsNoChangeError checks if the error is a no-op change error
func IsNoChangeError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNoChange
}

// IsForbiddenTransitionError checks if the error is a forbidden transition error
func IsForbiddenTransitionError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeForbiddenTransition
}

// IsRuleLookupError checks if the error is a rule table storage error
func IsRuleLookupError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeRuleLookup
}

// IsDuplicateKeyError checks if the error is a database duplicate key error
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}
