package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesKindFromStatus(t *testing.T) {
	tests := []struct {
		code int
		want Kind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusConflict, KindConflict},
		{http.StatusNotFound, KindNotFound},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindForbidden},
		{http.StatusInternalServerError, KindInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.code, "x").Kind, "status %d", tt.code)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("db down")
	err := Wrap(cause, http.StatusInternalServerError, "failed")

	assert.Equal(t, "failed", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppErrorFoundThroughWrapping(t *testing.T) {
	sentinel := NewKind(http.StatusBadRequest, KindConflict, "conflict")
	wrapped := fmt.Errorf("create: %w", sentinel)

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, KindConflict, appErr.Kind)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}
