package game

import "fmt"

// Kind classifies a rejected operation. Every rejection is synchronous and
// leaves the room unchanged; internal invariant breaks panic instead.
type Kind int

const (
	NotFound Kind = iota
	InvalidTurn
	InvalidState
	InsufficientFunds
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case InvalidTurn:
		return "invalid-turn"
	case InvalidState:
		return "invalid-state"
	case InsufficientFunds:
		return "insufficient-funds"
	case InvalidArgument:
		return "invalid-argument"
	}
	return "unknown"
}

type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func errNotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Reason: fmt.Sprintf(format, args...)}
}

func errInvalidTurn(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidTurn, Reason: fmt.Sprintf(format, args...)}
}

func errInvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidState, Reason: fmt.Sprintf(format, args...)}
}

func errInsufficientFunds(format string, args ...interface{}) *Error {
	return &Error{Kind: InsufficientFunds, Reason: fmt.Sprintf(format, args...)}
}

func errInvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidArgument, Reason: fmt.Sprintf(format, args...)}
}
