// Package errors define la taxonomía cerrada de errores HTTP del servicio.
//
// Tres clases, alineadas con el contrato del gate de autenticación:
//   - 401 Unauthorized: token ausente, malformado, revocado, forjado o expirado.
//     Los mensajes son fijos y no filtran cuál fue el caso.
//   - 500 Internal: falla de storage (blacklist, credential store). Se loguea
//     con contexto operacional; el cliente solo ve el mensaje genérico.
//   - 400 Bad Request: validación de input.
//
// Ningún error sin tipar cruza el boundary del gate: FromError colapsa
// cualquier error desconocido en ErrInternal.
package errors

import (
	"fmt"
	"net/http"
)

// AppError es la estructura estándar para errores de la aplicación.
type AppError struct {
	Code       string // Código estable para debugging/tests
	Message    string // Mensaje para el cliente (campo "message" del JSON)
	HTTPStatus int
	Err        error // Causa original, nunca serializada al cliente
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New crea un nuevo AppError.
func New(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// FromError intenta convertir un error genérico en un AppError.
// Si no es un AppError, devuelve un error interno genérico conservando la causa.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrInternal.WithCause(err)
}

// WithCause agrega el error original (causa).
// Devuelve una COPIA para no mutar las variables globales base.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// =================================================================================
// 401 UNAUTHORIZED — mensajes de wire fijos del gate
// =================================================================================

var (
	// ErrNoToken: header Authorization ausente, esquema incorrecto o
	// cantidad de segmentos distinta de dos. Todos colapsan acá.
	ErrNoToken = &AppError{
		Code:       "NO_TOKEN",
		Message:    "Unauthorized: No token provided",
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrOldToken: el token figura en el blacklist.
	ErrOldToken = &AppError{
		Code:       "OLD_TOKEN",
		Message:    "Old token provided",
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrTokenInvalid: firma inválida o token expirado, indistinguibles.
	ErrTokenInvalid = &AppError{
		Code:       "TOKEN_INVALID",
		Message:    "Failed to authenticate the token",
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrBadCredentials: login con usuario inexistente o password incorrecto.
	ErrBadCredentials = &AppError{
		Code:       "BAD_CREDENTIALS",
		Message:    "Incorrect username or password",
		HTTPStatus: http.StatusUnauthorized,
	}
)

// =================================================================================
// 500 INTERNAL
// =================================================================================

var (
	// ErrBlacklistCheck: el lookup al blacklist falló. Clase distinta de
	// "token inválido" porque puede ser transitoria; jamás se trata como
	// "no revocado".
	ErrBlacklistCheck = &AppError{
		Code:       "BLACKLIST_CHECK",
		Message:    "Error checking old token",
		HTTPStatus: http.StatusInternalServerError,
	}

	// ErrAccountLookup: falla del credential store al resolver una cuenta.
	ErrAccountLookup = &AppError{
		Code:       "ACCOUNT_LOOKUP",
		Message:    "Error finding account",
		HTTPStatus: http.StatusInternalServerError,
	}

	// ErrLogoutFailed: el write al blacklist falló; el logout no puede
	// reportar éxito.
	ErrLogoutFailed = &AppError{
		Code:       "LOGOUT_FAILED",
		Message:    "Failed to log out",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrInternal = &AppError{
		Code:       "INTERNAL",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}
)

// =================================================================================
// 400 / 404 — validación y recursos
// =================================================================================

var (
	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "Invalid request body",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrIncorrectPassword: cambio de password con currentPassword incorrecto.
	ErrIncorrectPassword = &AppError{
		Code:       "INCORRECT_PASSWORD",
		Message:    "Incorrect password",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Not found",
		HTTPStatus: http.StatusNotFound,
	}
)

// BadRequest arma un 400 con un mensaje de validación puntual.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, "BAD_REQUEST", message)
}
