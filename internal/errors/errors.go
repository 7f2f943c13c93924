// Package errors defines the error kinds surfaced by the front end.
//
// Errors caused by the input (an unreadable path, a program that does not
// parse) are UserErrors. Errors caused by a broken tree handed to a consumer
// are InternalErrors. Both travel as ordinary error values up to the driver,
// which turns them into a message and an exit code.
package errors

import (
	"fmt"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. a tree built with a
// variant that violates its invariants.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the program being processed.
type UserError interface {
	error
	IsUserError()
}

// IOError

// IOError reports that the input could not be read.
type IOError struct {
	Path string
	Err  error
}

var _ UserError = &IOError{}

func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (*IOError) IsUserError() {}

// ParseError

// ParseError reports that the source text was rejected by the parser.
// Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

var _ UserError = &ParseError{}

func NewParseError(line, column int, message string, args ...any) *ParseError {
	return &ParseError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(message, args...),
	}
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (*ParseError) IsUserError() {}

// MalformedNodeError

// MalformedNodeError reports a node whose fields do not match its variant.
type MalformedNodeError struct {
	Node   string
	Reason string
}

var _ InternalError = &MalformedNodeError{}

func NewMalformedNodeError(node string, reason string, args ...any) *MalformedNodeError {
	return &MalformedNodeError{
		Node:   node,
		Reason: fmt.Sprintf(reason, args...),
	}
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed %s node: %s", e.Node, e.Reason)
}

func (*MalformedNodeError) IsInternalError() {}

// ConfigError

// ConfigError reports an unusable configuration file or option.
type ConfigError struct {
	Source string
	Err    error
}

var _ UserError = &ConfigError{}

func NewConfigError(source string, err error) *ConfigError {
	return &ConfigError{Source: source, Err: err}
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %s", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (*ConfigError) IsUserError() {}

// IsInternalError checks whether a given error was caused by an InternalError.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}

// Exit codes returned by the driver.
const (
	ExitOK        = 0
	ExitIO        = 1
	ExitParse     = 2
	ExitMalformed = 3
	ExitUsage     = 64
	ExitUnknown   = 70
)

// ExitCode maps an error to the process exit code the driver reports.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ioErr *IOError
	if xerrors.As(err, &ioErr) {
		return ExitIO
	}

	var parseErr *ParseError
	if xerrors.As(err, &parseErr) {
		return ExitParse
	}

	var malformedErr *MalformedNodeError
	if xerrors.As(err, &malformedErr) {
		return ExitMalformed
	}

	var configErr *ConfigError
	if xerrors.As(err, &configErr) {
		return ExitUsage
	}

	return ExitUnknown
}
