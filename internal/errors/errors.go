// Package errors defines the coded errors a run can fail with, their exit
// statuses and the hints shown alongside them.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable identifier for every failure mode of a run
type ErrorCode string

const (
	// MalformedInput indicates a token that should be an integer could not be parsed,
	// or input ended before all expected values were read
	MalformedInput ErrorCode = "MALFORMED_INPUT"
	// EmptyArrayAccess indicates the first element of an empty sequence was requested
	EmptyArrayAccess ErrorCode = "EMPTY_ARRAY_ACCESS"
	// InvalidLength indicates a negative or oversized array length
	InvalidLength ErrorCode = "INVALID_LENGTH"
	// ConfigInvalid indicates the configuration failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// ScenarioFailed indicates at least one verify scenario did not match
	ScenarioFailed ErrorCode = "SCENARIO_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// exitCodes maps error codes to process exit statuses
var exitCodes = map[ErrorCode]int{
	InternalError:    1,
	MalformedInput:   2,
	EmptyArrayAccess: 3,
	InvalidLength:    4,
	ConfigInvalid:    5,
	ScenarioFailed:   6,
}

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// EditInput suggests changing what is typed at the prompt
	EditInput FixActionType = "edit-input"
	// EditConfig suggests changing a configuration value
	EditConfig FixActionType = "edit-config"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Description string        `json:"description,omitempty"`
	Key         string        `json:"key,omitempty"`
}

// Error carries a code, a message and suggestions
type Error struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates an Error with the suggested fixes registered for code
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Newf is New with a formatted message and no cause
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// ExitCode returns the process exit status for the error's code
func (e *Error) ExitCode() int {
	if c, ok := exitCodes[e.Code]; ok {
		return c
	}
	return exitCodes[InternalError]
}

// CodeOf returns the code of the first *Error in err's chain, or InternalError.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalError
}

// Is reports whether err's chain contains an *Error with the given code
func Is(err error, code ErrorCode) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.cause
	}
	return false
}

// ExitCodeOf returns the exit status for any error; nil maps to 0.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return exitCodes[InternalError]
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	MalformedInput: {
		{
			Type:        EditInput,
			Description: "Enter whole numbers separated by spaces or newlines",
		},
	},
	EmptyArrayAccess: {
		{
			Type:        EditInput,
			Description: "Enter an array length of at least 1",
		},
	},
	InvalidLength: {
		{
			Type:        EditInput,
			Description: "Enter a length between 1 and the configured maximum",
		},
		{
			Type:        EditConfig,
			Key:         "input.maxLength",
			Description: "Raise the maximum accepted length",
		},
	},
	ConfigInvalid: {
		{
			Type:        RunCommand,
			Command:     "firstelem config show",
			Description: "Inspect the effective configuration",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
