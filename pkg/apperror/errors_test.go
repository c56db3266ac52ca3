package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  *AppError
		code int
		kind Kind
	}{
		{"invalid input", NewInvalidInputError("basePrice", "must not be negative"), http.StatusBadRequest, KindInvalidInput},
		{"malformed value", NewMalformedValueError("Product", "prod-1", "basePrice", cause), http.StatusUnprocessableEntity, KindMalformedValue},
		{"record not found", NewRecordNotFoundError("Product", "does-not-exist"), http.StatusNotFound, KindNotFound},
		{"store unavailable", NewStoreUnavailableError("catalog", cause), http.StatusServiceUnavailable, KindStoreUnavailable},
		{"audit write failed", NewAuditWriteFailedError("prod-1", cause), http.StatusInternalServerError, KindAuditWriteFailed},
		{"bad request", ErrBadRequest.WithMessage("nope"), http.StatusBadRequest, KindInvalidInput},
		{"conflict", NewConflictError("exists"), http.StatusConflict, KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}
}

func TestRecordContext(t *testing.T) {
	err := NewMalformedValueError("Customer", "cust-9", "logFeeDiscount", errors.New("bad"))
	assert.Equal(t, "cust-9", err.RecordID)
	assert.Equal(t, "logFeeDiscount", err.Field)
	assert.Contains(t, err.Message, "cust-9")

	nf := NewRecordNotFoundError("Product", "does-not-exist")
	assert.Equal(t, "does-not-exist", nf.RecordID)
	assert.Contains(t, nf.Error(), "does-not-exist")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := fmt.Errorf("calculate: %w", NewStoreUnavailableError("audit", cause))

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindStoreUnavailable))
	assert.Contains(t, err.Error(), "dial tcp: timeout")
}

func TestWithMessage(t *testing.T) {
	err := ErrForbidden.WithMessage("Missing permission: view-audits")
	assert.Equal(t, "Missing permission: view-audits", err.Message)
	assert.Equal(t, http.StatusForbidden, err.Code)
	assert.Equal(t, "Forbidden", ErrForbidden.Message)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestIsMatchesKind(t *testing.T) {
	err := NewRecordNotFoundError("Customer", "c-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestGetAppError(t *testing.T) {
	t.Run("passes through app errors", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", ErrForbidden)
		got := GetAppError(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, http.StatusForbidden, got.Code)
	})

	t.Run("plain errors become internal", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Code)
		assert.Equal(t, KindInternal, got.Kind)
		assert.False(t, IsKind(errors.New("boom"), KindInternal))
	})
}
