package scale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTruncated           = errors.New("scale: truncated input")
	ErrInvalidLength       = errors.New("scale: invalid length prefix")
	ErrNonCanonicalCompact = errors.New("scale: non-canonical compact integer")
	ErrInvalidBool         = errors.New("scale: invalid bool byte")
	ErrInvalidOption       = errors.New("scale: invalid option presence byte")
	ErrInvalidDiscriminant = errors.New("scale: invalid enum discriminant")
	ErrInvalidUTF8         = errors.New("scale: string is not valid utf-8")
	ErrTrailingBytes       = errors.New("scale: trailing bytes after value")
)

// DecodeError reports a structural mismatch between the input bytes and the
// schema being decoded.
type DecodeError struct {
	// Offset is the byte offset at which the failing read started.
	Offset int
	// Path locates the failing field, e.g. "token_metadata_by_id[1].value.race".
	Path     string
	Expected string
	Found    string
	Err      error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString("scale: decode failed")
	}
	fmt.Fprintf(&sb, " at offset %d", e.Offset)
	if e.Path != "" {
		fmt.Fprintf(&sb, " (%s)", e.Path)
	}
	if e.Expected != "" || e.Found != "" {
		fmt.Fprintf(&sb, ": expected %s, found %s", e.Expected, e.Found)
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsDecodeError checks whether err is (or wraps) a DecodeError and returns it.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// WithPath prepends a field path segment to err if it is a DecodeError.
// Segments starting with "[" are treated as indexes and are not dot-joined.
// Any other error is returned unchanged.
func WithPath(err error, segment string) error {
	de, ok := AsDecodeError(err)
	if !ok || segment == "" {
		return err
	}
	switch {
	case de.Path == "":
		de.Path = segment
	case strings.HasPrefix(de.Path, "["):
		de.Path = segment + de.Path
	default:
		de.Path = segment + "." + de.Path
	}
	return err
}

// IndexPath returns the path segment for the i-th element of a sequence.
func IndexPath(i int) string {
	return fmt.Sprintf("[%d]", i)
}
