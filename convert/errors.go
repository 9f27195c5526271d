package convert

import (
	"errors"
	"fmt"

	"github.com/cybornft/cyborstate/scale"
)

var (
	// ErrInvalidHexInput is matched by every *InvalidHexError.
	ErrInvalidHexInput = errors.New("invalid hex input")
	// ErrDecode wraps every structural failure of the binary stage. The
	// underlying *scale.DecodeError stays reachable with errors.As.
	ErrDecode = errors.New("decode failed")
)

// InvalidHexError describes why a hex string was rejected.
type InvalidHexError struct {
	// Pos is the index of the offending character, or -1 when the problem is
	// not tied to one character.
	Pos    int
	Char   byte
	Length int
	Reason string
}

func (e *InvalidHexError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v: %s %q at position %d", ErrInvalidHexInput, e.Reason, e.Char, e.Pos)
	}
	return fmt.Sprintf("%v: %s (length %d)", ErrInvalidHexInput, e.Reason, e.Length)
}

func (e *InvalidHexError) Is(target error) bool { return target == ErrInvalidHexInput }

// NullInputError is returned at the C boundary when the input pointer is
// NULL.
func NullInputError() error {
	return &InvalidHexError{Pos: -1, Reason: "null input pointer"}
}

// SerializeError reports a failure to render a decoded value as JSON.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string { return "serialize failed: " + e.Err.Error() }

func (e *SerializeError) Unwrap() error { return e.Err }

func decodeFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrDecode, err)
}

// Kind classifies a conversion error. The numeric values are the status
// codes of the C boundary and the exit codes of the command line tool.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidHexInput
	KindDecode
	KindSerialize
	// KindInternal covers failures outside the conversion pipeline such as
	// unreadable input files or bad configuration.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindInvalidHexInput:
		return "invalid_hex_input"
	case KindDecode:
		return "decode"
	case KindSerialize:
		return "serialize"
	default:
		return "internal"
	}
}

// KindOf returns the Kind of err. A nil error is KindNone.
func KindOf(err error) Kind {
	var serr *SerializeError
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidHexInput):
		return KindInvalidHexInput
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.As(err, &serr):
		return KindSerialize
	}
	if _, ok := scale.AsDecodeError(err); ok {
		return KindDecode
	}
	return KindInternal
}
