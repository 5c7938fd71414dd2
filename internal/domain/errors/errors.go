package errors

import (
	"fmt"
	"net/http"

	"pescastur/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
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

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails or WithMessageArgs still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

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

// WithMessageArgs fills the placeholders of a templated message
func (e *BaseError) WithMessageArgs(args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(e.message, args...),
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos.",
		"",
	)

	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"El email es obligatorio.",
		"",
	)

	ErrProfilePhotoRequired = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_PHOTO_REQUIRED",
		"La foto de perfil es obligatoria.",
		"",
	)

	ErrInvalidDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE",
		"Formato de fecha no válido.",
		"",
	)

	ErrNullUserData = NewBaseError(
		http.StatusBadRequest,
		"NULL_USER_DATA",
		"Error: Los datos de usuario son nulos.",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"El email ya está registrado.",
		"",
	)

	ErrUserRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_REGISTRATION_FAILED",
		"Error al registrar el usuario.",
		"",
	)

	ErrUserAuthUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_AUTH_UPDATE_FAILED",
		"Error al actualizar los datos de autenticación.",
		"",
	)

	ErrUserDetailsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_DETAILS_UPDATE_FAILED",
		"Error al actualizar los detalles del usuario",
		"",
	)

	ErrUserDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_DELETE_FAILED",
		"Error al eliminar el usuario.",
		"",
	)

	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Error de autenticación",
		"",
	)

	// Product errors. Stock messages are templates filled with the product ID.
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Error: Producto con ID %s no encontrado en la base de datos",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Error: Stock insuficiente para el producto con ID %s",
		"",
	)

	ErrStockUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"STOCK_UPDATE_FAILED",
		"Error al procesar el pedido",
		"",
	)

	ErrAddCommentFailed = NewBaseError(
		http.StatusInternalServerError,
		"ADD_COMMENT_FAILED",
		"Error adding comment",
		"",
	)

	ErrAddRatingFailed = NewBaseError(
		http.StatusInternalServerError,
		"ADD_RATING_FAILED",
		"Error adding rating",
		"",
	)

	// Email errors
	ErrEmailSendFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"EMAIL_SEND_FAILED",
		"Error sending email",
		"",
	)

	// General errors
	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"Servicio externo no disponible.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del servidor.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado.",
		"",
	)
)

// DatabaseExecuteError represents a document store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Error al acceder a la base de datos."
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
