package inequality

import (
	"errors"
	"fmt"
)

// Kind classifies validation failures.
type Kind int

const (
	// KindNone is reported for errors that did not come from this package.
	KindNone Kind = iota
	// KindType means the input is not a supported numeric sequence.
	KindType
	// KindValue means the input is a sequence but holds an unusable value.
	KindValue
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type error"
	case KindValue:
		return "value error"
	default:
		return "none"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrType  = errors.New("inequality: unsupported input type")
	ErrValue = errors.New("inequality: invalid input value")
)

// Error is returned by every operation in this package when the input is
// rejected.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("inequality: %s: %s", e.Kind, e.Msg)
}

// Unwrap maps the error onto ErrType or ErrValue.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindType:
		return ErrType
	case KindValue:
		return ErrValue
	}
	return nil
}

// KindOf returns the Kind carried by err, or KindNone.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func typeError(format string, args ...any) error {
	return &Error{Kind: KindType, Msg: fmt.Sprintf(format, args...)}
}

func valueError(format string, args ...any) error {
	return &Error{Kind: KindValue, Msg: fmt.Sprintf(format, args...)}
}
