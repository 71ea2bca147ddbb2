package customerror

import (
	"fmt"
	"net/http"
	"strings"
)

type CustomError interface {
	Error() string
	GetHTTPCode() int
}

// FieldError описывает одно нарушенное правило валидации.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	httpCode int
	Fields   []FieldError
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{httpCode: http.StatusBadRequest, Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) GetHTTPCode() int {
	return e.httpCode
}

type UploadAcceptanceError struct {
	httpCode int
	message  string
}

func NewUploadAcceptanceError(msg string) *UploadAcceptanceError {
	return &UploadAcceptanceError{httpCode: http.StatusBadRequest, message: msg}
}

func (e *UploadAcceptanceError) Error() string {
	return fmt.Sprintf("file upload rejected: %s", e.message)
}

func (e *UploadAcceptanceError) GetHTTPCode() int {
	return e.httpCode
}

type StorageError struct {
	httpCode int
	message  string
	cause    error
}

func NewStorageError(msg string, cause error) *StorageError {
	return &StorageError{httpCode: http.StatusInternalServerError, message: msg, cause: cause}
}

func (e *StorageError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *StorageError) GetHTTPCode() int {
	return e.httpCode
}

func (e *StorageError) Unwrap() error {
	return e.cause
}
