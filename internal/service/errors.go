package service

import (
	"net/http"
	"strings"

	"github.com/fuzumoe/alarm-service/internal/i18n"
)

// AppError is a failure the client caused or should know about. Key names
// the message shown to the client; Status is the HTTP status to answer with.
type AppError struct {
	Status int
	Key    string
}

func (e *AppError) Error() string {
	return e.Key
}

var (
	ErrEmailDuplicate = &AppError{Status: http.StatusBadRequest, Key: i18n.KeyEmailDuplicate}
	ErrUserNotFound   = &AppError{Status: http.StatusNotFound, Key: i18n.KeyUserNotFound}
	ErrLoginFail      = &AppError{Status: http.StatusUnauthorized, Key: i18n.KeyLoginFail}
	ErrUnauthorized   = &AppError{Status: http.StatusUnauthorized, Key: i18n.KeyUnauthorized}
)

// FieldError is one failed rule on one input field.
type FieldError struct {
	Field string
	Key   string
}

// ValidationError reports every failed rule of a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	return "validation failed: " + strings.Join(keys, ", ")
}
