// Package errors provides coded errors for bitdoctor.
//
// Every error that crosses a package boundary carries an ErrorCode so callers
// and tests can branch on the category without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category
type ErrorCode string

const (
	// General
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Filesystem
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Workspace discovery
	ErrWorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"

	// Diagnoses
	ErrDiagnosisNotFound ErrorCode = "DIAGNOSIS_NOT_FOUND"
	ErrDiagnosisFailed   ErrorCode = "DIAGNOSIS_FAILED"

	// Output
	ErrRender ErrorCode = "RENDER"
)

// CodedError is a structured error with a code and optional details
type CodedError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CodedError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *CodedError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CodedError with the same code
func (e *CodedError) Is(target error) bool {
	var targetErr *CodedError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a CodedError
func New(code ErrorCode, message string) *CodedError {
	return &CodedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a CodedError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CodedError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CodedError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a code and a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CodedError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CodedError) WithDetail(key string, value interface{}) *CodedError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CodedError) WithDetails(details map[string]interface{}) *CodedError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks whether any error in err's chain carries code
func IsErrorCode(err error, code ErrorCode) bool {
	var codedErr *CodedError
	if errors.As(err, &codedErr) {
		return codedErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown for uncoded errors
func GetErrorCode(err error) ErrorCode {
	var codedErr *CodedError
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil for uncoded errors
func GetErrorDetails(err error) map[string]interface{} {
	var codedErr *CodedError
	if errors.As(err, &codedErr) {
		return codedErr.Details
	}
	return nil
}

// Is is errors.Is, re-exported so callers need a single errors import
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported so callers need a single errors import
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
