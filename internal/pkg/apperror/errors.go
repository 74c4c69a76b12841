package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/image-toolbox/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
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

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain classifies a pipeline error. op names the engine involved, if
// any, and only affects the message of encode failures.
func FromDomain(err error, op string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	wrap := func(code string, status int) *AppError {
		return &AppError{Code: code, Message: domain.Message(err, op), StatusCode: status, Err: err}
	}

	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return wrap("UNSUPPORTED_FORMAT", http.StatusUnsupportedMediaType)
	case errors.Is(err, domain.ErrDecode):
		return wrap("DECODE_ERROR", http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrInvalidDimensions):
		return wrap("INVALID_DIMENSIONS", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidQuality):
		return wrap("INVALID_QUALITY", http.StatusBadRequest)
	case errors.Is(err, domain.ErrFileTooLarge):
		return wrap("FILE_TOO_LARGE", http.StatusRequestEntityTooLarge)
	case errors.Is(err, domain.ErrUnknownTool):
		return wrap("UNKNOWN_TOOL", http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoSource):
		return wrap("NO_SOURCE", http.StatusConflict)
	case errors.Is(err, domain.ErrNoArtifact):
		return wrap("NO_ARTIFACT", http.StatusNotFound)
	case errors.Is(err, domain.ErrHandleNotFound):
		return &AppError{Code: "NOT_FOUND", Message: "artifact not found", StatusCode: http.StatusNotFound, Err: err}
	case errors.Is(err, domain.ErrSuperseded):
		return &AppError{Code: "SUPERSEDED", Message: "a newer request replaced this one", StatusCode: http.StatusConflict, Err: err}
	case errors.Is(err, domain.ErrEncode):
		return wrap("ENCODE_ERROR", http.StatusInternalServerError)
	default:
		return Internal(err)
	}
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
