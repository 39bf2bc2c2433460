package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that no row matched the requested key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey signals a uniqueness violation on insert.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidStatus signals a status value outside the entity's enumeration.
	ErrInvalidStatus = errors.New("invalid status value")
)

// Stable codes carried by AppError.
const (
	CodeDuplicateKey = "DUPLICATE_KEY"
	CodeStorage      = "STORAGE_FAILURE"
)

// AppError carries a stable code alongside the human-readable message and the
// underlying cause.
type AppError struct {
	Code    string
	Message string
	Err     error
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

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey reports whether err is, or wraps, ErrDuplicateKey.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
