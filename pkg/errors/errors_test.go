package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: evaluation not found", apperrors.NewNotFoundError("evaluation not found").Error())

	wrapped := apperrors.NewInternalError("failed to save", fmt.Errorf("connection reset"))
	assert.Equal(t, "INTERNAL: failed to save: connection reset", wrapped.Error())
}

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *apperrors.AppError
		want int
	}{
		{apperrors.NewNotFoundError("x"), http.StatusNotFound},
		{apperrors.NewValidationError("x"), http.StatusBadRequest},
		{apperrors.NewConflictError("x"), http.StatusConflict},
		{apperrors.NewUnavailableError("x"), http.StatusServiceUnavailable},
		{apperrors.NewExternalError("x", nil), http.StatusBadGateway},
		{apperrors.NewInternalError("x", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAs(t *testing.T) {
	base := apperrors.NewValidationError("invalid inventory", "agent 1: missing name")
	wrapped := fmt.Errorf("assess: %w", base)

	appErr, ok := apperrors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"agent 1: missing name"}, appErr.Details)
	assert.True(t, apperrors.IsType(wrapped, apperrors.ErrorTypeValidation))
	assert.False(t, apperrors.IsType(wrapped, apperrors.ErrorTypeNotFound))

	_, ok = apperrors.As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
