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

// Pipeline error taxonomy. Row-scoped extraction/normalization failures are
// NOT errors at this level; they travel as RowError warnings alongside results.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabase               = errors.New("database error")
	ErrUnsupportedFormat      = errors.New("unsupported document format")
	ErrInvalidState           = errors.New("invalid document state")
	ErrAlreadyRunning         = errors.New("ocr already running")
	ErrOCRFailed              = errors.New("ocr failed")
	ErrCrossCaseReference     = errors.New("transaction belongs to another case")
	ErrUngroupableTransaction = errors.New("transaction has no counterparty identity")
	ErrAlreadyGrouped         = errors.New("transaction already included in a notice")
	ErrInvalidTransition      = errors.New("invalid notice status transition")
)

// RowError is a row-scoped extraction or normalization failure. It carries
// enough context (position, raw values) for manual correction and never
// aborts processing of the remaining document.
type RowError struct {
	Row   int    // 1-based position in the source document
	Field string // canonical field name, "" when the whole row failed
	Value string // offending raw value, possibly truncated
	Err   error
}

func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: field %s=%q: %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

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

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// GRPCStatus maps the pipeline taxonomy onto grpc codes. Lifecycle misuse is
// FailedPrecondition so callers can distinguish it from bad input.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrUnsupportedFormat), errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrCrossCaseReference), errors.Is(err, ErrUngroupableTransaction):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrAlreadyRunning),
		errors.Is(err, ErrAlreadyGrouped), errors.Is(err, ErrInvalidTransition):
		return FailedPreconditionError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
