// Package scale implements the positional binary encoding used by the
// on-chain NFT contract state: fields in declaration order with no tags,
// fixed-width little-endian integers, compact length prefixes for strings
// and sequences, a presence byte for optional values and a discriminant
// byte for enums.
//
// The format carries no self-description. Producer and consumer must agree
// on field order and widths bit for bit; any drift corrupts every field that
// follows, which is why decode errors report the byte offset and field path.
package scale

// Decodable is implemented by types that can read themselves from a Reader.
type Decodable interface {
	DecodeSCALE(r *Reader) error
}

// Encodable is implemented by types that can write themselves to a Writer.
type Encodable interface {
	EncodeSCALE(w *Writer)
}

// Unmarshal decodes bz into v and requires that every byte is consumed.
func Unmarshal(bz []byte, v Decodable) error {
	r := NewReader(bz)
	if err := v.DecodeSCALE(r); err != nil {
		return err
	}
	return r.Finish()
}

// UnmarshalPrefix decodes one value from the start of bz and returns the
// number of bytes consumed. Bytes after the value are ignored.
func UnmarshalPrefix(bz []byte, v Decodable) (int, error) {
	r := NewReader(bz)
	if err := v.DecodeSCALE(r); err != nil {
		return r.Offset(), err
	}
	return r.Offset(), nil
}

// Marshal encodes v.
func Marshal(v Encodable) []byte {
	w := NewWriter()
	v.EncodeSCALE(w)
	return w.Bytes()
}
