package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error independent of its HTTP mapping
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindMalformedValue   Kind = "malformed_value"
	KindNotFound         Kind = "not_found"
	KindStoreUnavailable Kind = "store_unavailable"
	KindAuditWriteFailed Kind = "audit_write_failed"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindConflict         Kind = "conflict"
	KindInternal         Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code     int          `json:"code"`
	Kind     Kind         `json:"kind"`
	Message  string       `json:"message"`
	Field    string       `json:"field,omitempty"`
	RecordID string       `json:"record_id,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
	Cause    error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches on Kind so sentinel values like ErrNotFound work with errors.Is
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithMessage returns a copy of e carrying message
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Kind: KindForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Kind: KindConflict, Message: "Resource already exists"}
)

// NewRecordNotFoundError creates a not found error naming the missing id
func NewRecordNotFoundError(resource, id string) *AppError {
	err := ErrNotFound.WithMessage(fmt.Sprintf("%s %q not found", resource, id))
	err.RecordID = id
	return err
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return ErrConflict.WithMessage(message)
}

// NewInvalidInputError reports a structurally invalid value supplied by the caller
func NewInvalidInputError(field, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: message,
		Field:   field,
		Errors:  []FieldError{{Field: field, Message: message}},
	}
}

// NewMalformedValueError reports a stored value that could not be parsed
func NewMalformedValueError(resource, recordID, field string, cause error) *AppError {
	return &AppError{
		Code:     http.StatusUnprocessableEntity,
		Kind:     KindMalformedValue,
		Message:  fmt.Sprintf("%s %q has a malformed %s", resource, recordID, field),
		Field:    field,
		RecordID: recordID,
		Cause:    cause,
	}
}

// NewStoreUnavailableError wraps a failure to reach a backing store
func NewStoreUnavailableError(store string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindStoreUnavailable,
		Message: store + " store unavailable",
		Cause:   cause,
	}
}

// NewAuditWriteFailedError reports a calculation whose audit record was not persisted
func NewAuditWriteFailedError(productID string, cause error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Kind:     KindAuditWriteFailed,
		Message:  "Price calculated but the audit record could not be saved",
		RecordID: productID,
		Cause:    cause,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
