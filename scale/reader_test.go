package scale

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestReaderFixedWidthLittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xab)
	w.WriteU16(0x0102)
	w.WriteU32(0x01020304)
	w.WriteU64(0x0102030405060708)
	w.WriteU128(uint128.New(0x1122334455667788, 0x99))

	bz := w.Bytes()
	require.Len(t, bz, 1+2+4+8+16)
	assert.Equal(t, []byte{0x02, 0x01}, bz[1:3])
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, bz[3:7])

	r := NewReader(bz)
	u8, err := r.ReadU8()
	require.NoError(t, err)
	assert.EqualValues(t, 0xab, u8)
	u16, err := r.ReadU16()
	require.NoError(t, err)
	assert.EqualValues(t, 0x0102, u16)
	u32, err := r.ReadU32()
	require.NoError(t, err)
	assert.EqualValues(t, 0x01020304, u32)
	u64, err := r.ReadU64()
	require.NoError(t, err)
	assert.EqualValues(t, uint64(0x0102030405060708), u64)
	u128, err := r.ReadU128()
	require.NoError(t, err)
	assert.True(t, u128.Equals(uint128.New(0x1122334455667788, 0x99)))
	require.NoError(t, r.Finish())
}

func TestReaderTruncatedReportsOffset(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	_, err := r.ReadU32()
	require.NoError(t, err)

	_, err = r.ReadU128()
	require.True(t, errors.Is(err, ErrTruncated))
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, 4, de.Offset)
	assert.Equal(t, "16 bytes (u128)", de.Expected)
	assert.Equal(t, "1 bytes remaining", de.Found)
	assert.Equal(t, 4, r.Offset())
}

func TestReaderBoolOptionVariant(t *testing.T) {
	r := NewReader([]byte{0, 1, 2})
	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.False(t, b)
	b, err = r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	_, err = r.ReadBool()
	assert.True(t, errors.Is(err, ErrInvalidBool))
	assert.Equal(t, 2, r.Offset())

	r = NewReader([]byte{1, 7})
	present, err := r.ReadOption()
	require.NoError(t, err)
	assert.True(t, present)
	_, err = r.ReadOption()
	assert.True(t, errors.Is(err, ErrInvalidOption))

	names := []string{"A", "B"}
	r = NewReader([]byte{1, 2})
	d, err := r.ReadVariant("Kind", names)
	require.NoError(t, err)
	assert.EqualValues(t, 1, d)
	_, err = r.ReadVariant("Kind", names)
	require.True(t, errors.Is(err, ErrInvalidDiscriminant))
	de, _ := AsDecodeError(err)
	assert.Equal(t, "Kind variant 0..1", de.Expected)
	assert.Equal(t, "0x02", de.Found)
	assert.Equal(t, 1, de.Offset)
}

func TestReaderString(t *testing.T) {
	long := strings.Repeat("x", 112)
	w := NewWriter()
	w.WriteString("Cybor-332")
	w.WriteString("")
	w.WriteString(long)

	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "Cybor-332", s)
	s, err = r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	s, err = r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, long, s)
	require.NoError(t, r.Finish())
}

func TestReaderStringRejectsBadInput(t *testing.T) {
	// length 3, only 2 bytes follow
	_, err := NewReader([]byte{0x0c, 'a', 'b'}).ReadString()
	assert.True(t, errors.Is(err, ErrInvalidLength), "got %v", err)

	// length 2, invalid utf-8
	r := NewReader([]byte{0x08, 0xff, 0xfe})
	_, err = r.ReadString()
	assert.True(t, errors.Is(err, ErrInvalidUTF8), "got %v", err)
	assert.Zero(t, r.Offset())
}

func TestReaderLengthBoundedByRemaining(t *testing.T) {
	w := NewWriter()
	w.WriteCompact(3)
	w.WriteFixed(make([]byte, 40))

	_, err := NewReader(w.Bytes()).ReadLength(16)
	assert.True(t, errors.Is(err, ErrInvalidLength), "3 x 16 bytes cannot fit in 40")

	n, err := NewReader(w.Bytes()).ReadLength(8)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	w = NewWriter()
	w.WriteCompact(1 << 32)
	_, err = NewReader(w.Bytes()).ReadLength(1)
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestReaderFinish(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := r.ReadU8()
	require.NoError(t, err)
	err = r.Finish()
	require.True(t, errors.Is(err, ErrTrailingBytes))
	de, _ := AsDecodeError(err)
	assert.Equal(t, 1, de.Offset)
	assert.Equal(t, "2 trailing bytes", de.Found)
}
