// Package rerrors defines the closed error-code taxonomy used throughout
// the evaluation core (spec §6, §7) and formats errors with the position
// and optional cause chain embedders expect.
package rerrors

import "fmt"

// Code is one of the closed set of error kinds exposed to embedders
// (spec §6). It is a taxonomy, not a Go type hierarchy: every component
// reports failures by returning or storing a *Error carrying one of
// these codes, never by panicking.
type Code uint8

const (
	CodeNone Code = iota
	CodeMemory
	CodeSyntax
	CodeType
	CodeRuntime
	CodeArgument
	CodeBounds
	CodeNullPtr
	CodeRecursion
	CodeTimeout
	CodeInternal
	CodeUndefined
	CodeHandler
)

// String names the code, used in trace messages and CLI output.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeMemory:
		return "Memory"
	case CodeSyntax:
		return "Syntax"
	case CodeType:
		return "Type"
	case CodeRuntime:
		return "Runtime"
	case CodeArgument:
		return "Argument"
	case CodeBounds:
		return "Bounds"
	case CodeNullPtr:
		return "NullPtr"
	case CodeRecursion:
		return "Recursion"
	case CodeTimeout:
		return "Timeout"
	case CodeInternal:
		return "Internal"
	case CodeUndefined:
		return "Undefined"
	case CodeHandler:
		return "Handler"
	default:
		return "Unknown"
	}
}

// Error is the structured error value threaded through the runtime
// environment's single error slot (spec §3 C3) and returned from
// constructors that can fail. File/Line identify the AST position
// associated with the failure, when known; Cause chains to an earlier
// error when one component's failure is wrapped by another's.
type Error struct {
	Code    Code
	Message string
	File    string
	Line    int
	Cause   error
}

// New creates an Error with no position information.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// At attaches a source position to an Error, returning it for chaining.
func (e *Error) At(file string, line int) *Error {
	e.File = file
	e.Line = line
	return e
}

// Wrap creates an Error that chains to cause.
func Wrap(code Code, cause error, message string) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.File != "" {
		msg = fmt.Sprintf("%s (%s:%d)", msg, e.File, e.Line)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap exposes the cause chain to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }
