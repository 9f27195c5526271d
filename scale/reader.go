package scale

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"lukechampine.com/uint128"
)

// Reader is a cursor over a SCALE encoded byte slice. Every read either
// consumes exactly the bytes of one value or returns a *DecodeError and
// leaves the cursor where the failing read started.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of bz.
func NewReader(bz []byte) *Reader {
	return &Reader{buf: bz}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) fail(at int, sentinel error, expected, found string) error {
	return &DecodeError{Offset: at, Expected: expected, Found: found, Err: sentinel}
}

// next consumes n bytes and returns them without copying.
func (r *Reader) next(n int, what string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, r.fail(r.off, ErrTruncated,
			fmt.Sprintf("%d bytes (%s)", n, what),
			fmt.Sprintf("%d bytes remaining", r.Remaining()))
	}
	bz := r.buf[r.off : r.off+n]
	r.off += n
	return bz, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	bz, err := r.next(1, "u8")
	if err != nil {
		return 0, err
	}
	return bz[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	bz, err := r.next(2, "u16")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bz), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	bz, err := r.next(4, "u32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bz), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	bz, err := r.next(8, "u64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bz), nil
}

// ReadU128 reads a fixed-width little-endian 128-bit integer.
func (r *Reader) ReadU128() (uint128.Uint128, error) {
	bz, err := r.next(16, "u128")
	if err != nil {
		return uint128.Zero, err
	}
	return uint128.FromBytes(bz), nil
}

// ReadBool reads a single byte that must be 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	start := r.off
	b, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	r.off = start
	return false, r.fail(start, ErrInvalidBool, "0x00 or 0x01", fmt.Sprintf("0x%02x", b))
}

// ReadOption reads the presence byte of an optional value and reports
// whether a payload follows.
func (r *Reader) ReadOption() (bool, error) {
	start := r.off
	b, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	r.off = start
	return false, r.fail(start, ErrInvalidOption, "0x00 (none) or 0x01 (some)", fmt.Sprintf("0x%02x", b))
}

// ReadVariant reads an enum discriminant byte. names lists the variants in
// declaration order; the returned index is always a valid index into names.
func (r *Reader) ReadVariant(typeName string, names []string) (uint8, error) {
	start := r.off
	d, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if int(d) >= len(names) {
		r.off = start
		return 0, r.fail(start, ErrInvalidDiscriminant,
			fmt.Sprintf("%s variant 0..%d", typeName, len(names)-1),
			fmt.Sprintf("0x%02x", d))
	}
	return d, nil
}

// ReadFixed reads exactly n raw bytes with no length prefix. The returned
// slice aliases the input.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	return r.next(n, fmt.Sprintf("[%d]byte", n))
}

// ReadLength reads the compact length prefix of a sequence or string. The
// prefix must fit a u32 and the sequence must be able to fit in the
// remaining input given the smallest encoding of one element.
func (r *Reader) ReadLength(minElemSize int) (int, error) {
	start := r.off
	n, err := r.ReadCompact()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		r.off = start
		return 0, r.fail(start, ErrInvalidLength, "length that fits u32", fmt.Sprintf("%d", n))
	}
	if minElemSize < 1 {
		minElemSize = 1
	}
	if n > uint64(r.Remaining()/minElemSize) {
		r.off = start
		return 0, r.fail(start, ErrInvalidLength,
			fmt.Sprintf("at most %d elements of >= %d bytes", r.Remaining()/minElemSize, minElemSize),
			fmt.Sprintf("length prefix %d", n))
	}
	return int(n), nil
}

// ReadString reads a compact length prefix followed by that many bytes of
// UTF-8 text.
func (r *Reader) ReadString() (string, error) {
	start := r.off
	n, err := r.ReadLength(1)
	if err != nil {
		return "", err
	}
	bz, err := r.next(n, "string body")
	if err != nil {
		r.off = start
		return "", err
	}
	if !utf8.Valid(bz) {
		r.off = start
		return "", r.fail(start, ErrInvalidUTF8, "utf-8 text", fmt.Sprintf("%d invalid bytes", n))
	}
	return string(bz), nil
}

// Finish returns ErrTrailingBytes if any input is left unread.
func (r *Reader) Finish() error {
	if rem := r.Remaining(); rem > 0 {
		return r.fail(r.off, ErrTrailingBytes, "end of input", fmt.Sprintf("%d trailing bytes", rem))
	}
	return nil
}
