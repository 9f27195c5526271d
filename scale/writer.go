package scale

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

// Writer builds a SCALE encoding. It mirrors Reader and exists so that
// fixtures and round-trip tests can produce valid input; writes never fail.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoding written so far.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) WriteU8(v uint8) { w.buf = append(w.buf, v) }

func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteU128(v uint128.Uint128) {
	var bz [16]byte
	v.PutBytes(bz[:])
	w.buf = append(w.buf, bz[:]...)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
		return
	}
	w.WriteU8(0)
}

// WriteOption writes the presence byte of an optional value.
func (w *Writer) WriteOption(present bool) { w.WriteBool(present) }

// WriteFixed appends raw bytes with no length prefix.
func (w *Writer) WriteFixed(bz []byte) { w.buf = append(w.buf, bz...) }

// WriteCompact appends v in its shortest compact encoding.
func (w *Writer) WriteCompact(v uint64) {
	switch n := CompactSize(v); n {
	case 1:
		w.WriteU8(uint8(v << 2))
	case 2:
		w.WriteU16(uint16(v<<2) | compactTwoByte)
	case 4:
		w.WriteU32(uint32(v<<2) | compactFourByte)
	default:
		w.WriteU8(uint8((n-1-4)<<2) | compactBigInteger)
		var word [8]byte
		binary.LittleEndian.PutUint64(word[:], v)
		w.buf = append(w.buf, word[:n-1]...)
	}
}

// WriteString appends a compact length prefix and the bytes of s.
func (w *Writer) WriteString(s string) {
	w.WriteCompact(uint64(len(s)))
	w.buf = append(w.buf, s...)
}
