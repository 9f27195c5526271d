package scale

import (
	"encoding/binary"
	"fmt"
)

// Compact integer modes, selected by the two low bits of the first byte.
const (
	compactSingleByte = 0b00 // 6-bit value in the upper bits
	compactTwoByte    = 0b01 // 14-bit value, u16 LE
	compactFourByte   = 0b10 // 30-bit value, u32 LE
	compactBigInteger = 0b11 // (upper 6 bits + 4) LE bytes follow

	maxSingleByte = 1<<6 - 1
	maxTwoByte    = 1<<14 - 1
	maxFourByte   = 1<<30 - 1
)

// ReadCompact reads a compact (variable-width) unsigned integer. Encodings
// that are not the shortest possible for their value are rejected, as are
// big-integer encodings wider than 64 bits.
func (r *Reader) ReadCompact() (uint64, error) {
	start := r.off
	if r.Remaining() < 1 {
		return 0, r.fail(start, ErrTruncated, "compact prefix", "0 bytes remaining")
	}
	prefix := r.buf[r.off]

	var (
		v     uint64
		width int
		floor uint64
	)
	switch prefix & 0b11 {
	case compactSingleByte:
		r.off++
		return uint64(prefix >> 2), nil
	case compactTwoByte:
		bz, err := r.next(2, "compact u16")
		if err != nil {
			return 0, err
		}
		v, width, floor = uint64(binary.LittleEndian.Uint16(bz)>>2), 2, maxSingleByte+1
	case compactFourByte:
		bz, err := r.next(4, "compact u32")
		if err != nil {
			return 0, err
		}
		v, width, floor = uint64(binary.LittleEndian.Uint32(bz)>>2), 4, maxTwoByte+1
	default:
		n := int(prefix>>2) + 4
		if n > 8 {
			return 0, r.fail(start, ErrInvalidLength, "compact integer of at most 8 bytes", fmt.Sprintf("%d bytes", n))
		}
		if r.Remaining() < 1+n {
			return 0, r.fail(start, ErrTruncated,
				fmt.Sprintf("%d bytes (compact big integer)", 1+n),
				fmt.Sprintf("%d bytes remaining", r.Remaining()))
		}
		r.off++
		var word [8]byte
		copy(word[:], r.buf[r.off:r.off+n])
		r.off += n
		v, width = binary.LittleEndian.Uint64(word[:]), 1+n
		if n == 4 {
			floor = maxFourByte + 1
		} else {
			floor = 1 << (8 * uint(n-1))
		}
	}
	if v < floor {
		r.off = start
		return 0, r.fail(start, ErrNonCanonicalCompact,
			fmt.Sprintf("value >= %d for a %d byte encoding", floor, width),
			fmt.Sprintf("%d", v))
	}
	return v, nil
}

// CompactSize returns the number of bytes WriteCompact uses for v.
func CompactSize(v uint64) int {
	switch {
	case v <= maxSingleByte:
		return 1
	case v <= maxTwoByte:
		return 2
	case v <= maxFourByte:
		return 4
	}
	n := 4
	for n < 8 && v>>(8*uint(n)) != 0 {
		n++
	}
	return 1 + n
}
