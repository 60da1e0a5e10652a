package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Kit errors
	ErrKitNotFound ErrorCode = "KIT_NOT_FOUND"
	ErrKitInvalid  ErrorCode = "KIT_INVALID"
	ErrKitAccess   ErrorCode = "KIT_ACCESS"

	// Settings merge errors
	ErrSettingsParse ErrorCode = "SETTINGS_PARSE"
	ErrSettingsType  ErrorCode = "SETTINGS_TYPE"
	ErrSettingsWrite ErrorCode = "SETTINGS_WRITE"

	// Install target errors
	ErrTargetInvalid ErrorCode = "TARGET_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// ClawkitError represents a structured error with code and details
type ClawkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClawkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClawkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ClawkitError) Is(target error) bool {
	var targetErr *ClawkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClawkitError with the given code and message
func New(code ErrorCode, message string) *ClawkitError {
	return &ClawkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClawkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClawkitError {
	return &ClawkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ClawkitError
func Wrap(err error, code ErrorCode, message string) *ClawkitError {
	if err == nil {
		return nil
	}
	return &ClawkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ClawkitError {
	if err == nil {
		return nil
	}
	return &ClawkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ClawkitError) WithDetail(key string, value interface{}) *ClawkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ClawkitError) WithDetails(details map[string]interface{}) *ClawkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ckErr *ClawkitError
	if errors.As(err, &ckErr) {
		return ckErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClawkitError
func GetErrorCode(err error) ErrorCode {
	var ckErr *ClawkitError
	if errors.As(err, &ckErr) {
		return ckErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ClawkitError
func GetErrorDetails(err error) map[string]interface{} {
	var ckErr *ClawkitError
	if errors.As(err, &ckErr) {
		return ckErr.Details
	}
	return nil
}
