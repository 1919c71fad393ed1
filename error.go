package crisp

import (
	"fmt"

	"github.com/juju/errors"
)

// ErrorKind classifies an interpreter error so a host can decide how to
// react (reparse, report, abort) without string-matching messages.
type ErrorKind int

const (
	// ParseError indicates a lexing or parsing failure: mismatched
	// parentheses, a malformed float, a bad boolean literal.
	ParseError ErrorKind = iota

	// NotFoundError indicates an identifier that resolves to neither a
	// built-in, a user function nor a variable.
	NotFoundError

	// ArgumentError indicates an arity mismatch, a wrong operand kind
	// for a built-in, or a domain violation such as division by zero.
	ArgumentError

	// InternalTypeError indicates a Value payload accessor called on
	// the wrong tag. It usually means a malformed program reached the
	// evaluator, and is reportable to the host like any other error.
	InternalTypeError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case NotFoundError:
		return "NotFoundError"
	case ArgumentError:
		return "ArgumentError"
	case InternalTypeError:
		return "InternalTypeError"
	default:
		return "UnknownError"
	}
}

// Error is the error type used for every failure during lexing, parsing
// or evaluation. If you return an error from your own built-in, fill
// this object with as much information as you have. Make sure Sender is
// always given (for a built-in named 'foo', make Sender equal
// 'builtin:foo'). It's okay to only fill in OrigError if you don't have
// any other details at hand.
type Error struct {
	Kind     ErrorKind
	Filename string
	Line     int
	Sender   string
	OrigError error
}

// Error returns a nicely formatted error string.
func (e *Error) Error() string {
	s := "[" + e.Kind.String()
	if e.Sender != "" {
		s += " (where: " + e.Sender + ")"
	}
	if e.Filename != "" {
		s += " in " + e.Filename
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" | Line %d", e.Line)
	}
	s += "] "
	if e.OrigError != nil {
		s += e.OrigError.Error()
	}
	return s
}

// AsError unwraps err down to the interpreter's *Error, if it is one.
func AsError(err error) (*Error, bool) {
	e, ok := errors.Cause(err).(*Error)
	return e, ok
}

// KindOf reports the ErrorKind of err, or ok=false for foreign errors.
func KindOf(err error) (ErrorKind, bool) {
	e, ok := AsError(err)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}

func newParseError(line int, sender, format string, args ...interface{}) *Error {
	return &Error{
		Kind:      ParseError,
		Line:      line,
		Sender:    sender,
		OrigError: errors.Errorf(format, args...),
	}
}

// newNotFoundError reports an unresolvable identifier. The message
// wording is part of the language's error surface.
func newNotFoundError(line int, name string) *Error {
	return &Error{
		Kind:      NotFoundError,
		Line:      line,
		Sender:    "evaluator",
		OrigError: errors.Errorf("'%s' does not exist in this namespace", name),
	}
}

func newArgumentError(line int, sender, format string, args ...interface{}) *Error {
	return &Error{
		Kind:      ArgumentError,
		Line:      line,
		Sender:    sender,
		OrigError: errors.Errorf(format, args...),
	}
}

func newTypeError(line int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:      InternalTypeError,
		Line:      line,
		OrigError: errors.Errorf(format, args...),
	}
}

// wrapParseError attaches line/kind information to an error coming out
// of a lower layer (e.g. strconv) while keeping the original cause.
func wrapParseError(orig error, line int, sender, format string, args ...interface{}) *Error {
	return &Error{
		Kind:      ParseError,
		Line:      line,
		Sender:    sender,
		OrigError: errors.Annotatef(orig, format, args...),
	}
}
