package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Extraction and configuration errors are terminal
// for a validation run; a transport error at the resolver is terminal too,
// while checker-local failures only downgrade that one check.
var (
	ErrExtraction    = errors.New("no extractable text")
	ErrConfiguration = errors.New("service not configured")
	ErrTransport     = errors.New("transport failure")
	ErrUnparseable   = errors.New("unparseable response")
	ErrRegistryLoad  = errors.New("registry load failed")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
