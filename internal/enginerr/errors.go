// Package enginerr defines the domain error kinds shared by both engines.
//
// Every failure that crosses the MCP boundary is classified into one of the
// kinds below and rendered as a single "Error: <kind>: <detail>" line, which
// existing clients match on the leading "Error" token.
package enginerr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind string

const (
	// InvalidArgument marks out-of-range numbers, empty required strings,
	// unknown enum values, and unsupported Datalog constructs.
	InvalidArgument Kind = "invalid argument"

	// NotFound marks references to unknown node or session ids.
	NotFound Kind = "not found"

	// StateViolation marks operations that require state which is absent,
	// such as add_leaf without a tree or re-expanding an expanded node.
	StateViolation Kind = "state violation"

	// Timeout marks a Datalog call that exceeded its deadline.
	Timeout Kind = "timeout"

	// Internal marks reasoner failures on otherwise-valid input.
	Internal Kind = "internal"
)

// Error is a classified domain error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error from a formatted message.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error, preserving it for errors.Is/As.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the kind of a classified error. Unclassified errors
// report Internal, which is what the MCP boundary should show for them.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
