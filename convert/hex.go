package convert

import (
	"encoding/hex"

	pool "github.com/libp2p/go-buffer-pool"
)

// DecodeHex decodes s, which must hold an even number of hex digits and no
// "0x" prefix. Upper and lower case digits are accepted.
func DecodeHex(s string) ([]byte, error) {
	if err := validateHex(s); err != nil {
		return nil, err
	}
	bz := make([]byte, len(s)/2)
	if _, err := hex.Decode(bz, []byte(s)); err != nil {
		return nil, &InvalidHexError{Pos: -1, Length: len(s), Reason: err.Error()}
	}
	return bz, nil
}

// decodeHexPooled is DecodeHex with the output taken from the shared buffer
// pool. The caller returns it with pool.Put once nothing aliases it.
func decodeHexPooled(s string) ([]byte, error) {
	if err := validateHex(s); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return []byte{}, nil
	}
	bz := pool.Get(len(s) / 2)
	if _, err := hex.Decode(bz, []byte(s)); err != nil {
		pool.Put(bz)
		return nil, &InvalidHexError{Pos: -1, Length: len(s), Reason: err.Error()}
	}
	return bz, nil
}

func validateHex(s string) error {
	if len(s)%2 != 0 {
		return &InvalidHexError{Pos: -1, Length: len(s), Reason: "odd number of digits"}
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return &InvalidHexError{Pos: i, Char: s[i], Length: len(s), Reason: "invalid character"}
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
