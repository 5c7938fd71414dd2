package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageArgs(t *testing.T) {
	err := ErrInsufficientStock.WithMessageArgs("B")

	assert.Equal(t, "Error: Stock insuficiente para el producto con ID B", err.Message())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.True(t, stderrors.Is(err, ErrInsufficientStock))
	assert.False(t, stderrors.Is(err, ErrProductNotFound))
	// the template itself is untouched
	assert.Contains(t, ErrInsufficientStock.Message(), "%s")
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrEmailSendFailed.WithDetails("mailjet: 401")

	assert.Equal(t, "Error sending email: mailjet: 401", err.Error())
	assert.Equal(t, "Error sending email", err.Message())
	assert.True(t, stderrors.Is(err, ErrEmailSendFailed))
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrUserNotFound.WrapMessage("update details")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("deadline exceeded")
	err := NewDatabaseExecuteError(cause, "get products")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deadline exceeded")
}
