package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
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

// Common application errors
var (
	// ErrNotFound covers unknown document or pass ids.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidConfiguration covers bad page ranges and unknown methods.
	// It is returned synchronously at pass creation and never reaches
	// execution.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrAdapterFailure wraps errors raised by an extraction adapter during
	// pass execution. It is recorded on the pass, never propagated.
	ErrAdapterFailure = errors.New("adapter failure")
	// ErrConsolidationConflict signals two concurrent recomputations for one
	// document. The per-document lock makes this unreachable; seeing it is
	// an invariant violation, not a runtime condition to recover from.
	ErrConsolidationConflict = errors.New("consolidation conflict")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDatabase              = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// GRPCStatus maps the application error taxonomy onto gRPC codes.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrInvalidConfiguration), errors.Is(err, ErrInvalidInput):
		return InvalidArgumentError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
