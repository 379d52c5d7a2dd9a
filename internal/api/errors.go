package api

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
)

// AppError is an application-level error carrying the HTTP status it should
// surface as.
type AppError struct {
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error templates.
var (
	ErrBadRequest   = &AppError{Message: "invalid request", HTTPStatus: http.StatusBadRequest}
	ErrUnauthorized = &AppError{Message: "invalid or missing token", HTTPStatus: http.StatusUnauthorized}
	ErrRateLimited  = &AppError{Message: "rate limit exceeded", HTTPStatus: http.StatusTooManyRequests}
	ErrInternal     = &AppError{Message: "internal error", HTTPStatus: http.StatusInternalServerError}
)

// Wrap creates a copy of base carrying a more specific message.
func Wrap(base *AppError, message string) *AppError {
	return &AppError{Message: message, HTTPStatus: base.HTTPStatus}
}

// errorEnvelope is the flat wire shape every error response uses:
// {"error": "<message>"}.
type errorEnvelope struct {
	Error string `json:"error"`
}

// RespondWithError writes err to w as the flat error envelope, defaulting
// to 500/"internal error" for errors that are not an *AppError.
func RespondWithError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if !stdErrors.As(err, &appErr) {
		appErr = ErrInternal
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: appErr.Message})
}
