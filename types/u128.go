package types

import (
	"strconv"

	"lukechampine.com/uint128"

	"github.com/cybornft/cyborstate/scale"
)

// U128 is an unsigned 128-bit integer. It renders in JSON as a decimal
// string because most JSON consumers parse numbers as 64-bit floats.
type U128 struct {
	uint128.Uint128
}

// TokenID names one token instance.
type TokenID = U128

func NewU128(v uint64) U128 { return U128{uint128.From64(v)} }

// ParseU128 parses a base 10 string.
func ParseU128(s string) (U128, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return U128{}, err
	}
	return U128{v}, nil
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(input []byte) error {
	v, err := ParseU128(string(input))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(u.String())), nil
}

func (u *U128) DecodeSCALE(r *scale.Reader) error {
	v, err := r.ReadU128()
	if err != nil {
		return err
	}
	u.Uint128 = v
	return nil
}

func (u U128) EncodeSCALE(w *scale.Writer) { w.WriteU128(u.Uint128) }
