package types

import (
	"github.com/cybornft/cyborstate/scale"
)

// Smallest encodings of the sequence elements, used to bound length
// prefixes against the remaining input.
const (
	minTokenIDSize       = 16
	minOwnerEntrySize    = minTokenIDSize + ActorIDSize
	minApprovalEntrySize = minTokenIDSize + ActorIDSize
	minMetadataSize      = 4 + 2 + 4 + 4 + 4 + 2 + 1 + 1
	minMetadataEntrySize = minTokenIDSize + minMetadataSize
	minHoldingsEntrySize = ActorIDSize + 1
	minGamingEntrySize   = minTokenIDSize + 1
)

type field struct {
	name   string
	decode func(r *scale.Reader) error
}

// decodeFields decodes the fields of a record in declaration order and
// annotates a failure with the name of the field that failed.
func decodeFields(r *scale.Reader, fields ...field) error {
	for _, f := range fields {
		if err := f.decode(r); err != nil {
			return scale.WithPath(err, f.name)
		}
	}
	return nil
}

// decodeSeq reads a compact length prefix followed by that many elements.
// An empty sequence decodes to a non-nil empty slice.
func decodeSeq[T any, P interface {
	*T
	scale.Decodable
}](r *scale.Reader, minElemSize int, dst *[]T) error {
	n, err := r.ReadLength(minElemSize)
	if err != nil {
		return err
	}
	out := make([]T, n)
	for i := range out {
		if err := P(&out[i]).DecodeSCALE(r); err != nil {
			return scale.WithPath(err, scale.IndexPath(i))
		}
	}
	*dst = out
	return nil
}

func encodeSeq[T scale.Encodable](w *scale.Writer, items []T) {
	w.WriteCompact(uint64(len(items)))
	for _, item := range items {
		item.EncodeSCALE(w)
	}
}

func readString(dst *string) func(*scale.Reader) error {
	return func(r *scale.Reader) error {
		v, err := r.ReadString()
		*dst = v
		return err
	}
}

func readU8(dst *uint8) func(*scale.Reader) error {
	return func(r *scale.Reader) error {
		v, err := r.ReadU8()
		*dst = v
		return err
	}
}

func readU16(dst *uint16) func(*scale.Reader) error {
	return func(r *scale.Reader) error {
		v, err := r.ReadU16()
		*dst = v
		return err
	}
}

func readU32(dst *uint32) func(*scale.Reader) error {
	return func(r *scale.Reader) error {
		v, err := r.ReadU32()
		*dst = v
		return err
	}
}

func readBool(dst *bool) func(*scale.Reader) error {
	return func(r *scale.Reader) error {
		v, err := r.ReadBool()
		*dst = v
		return err
	}
}
