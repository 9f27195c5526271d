package types

import (
	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/scale"
)

// TokenHoldings is the optional token list returned for a single owner. When
// Present is false the owner is unknown and the JSON form is null.
type TokenHoldings struct {
	Tokens  []TokenID
	Present bool
}

// SomeTokens returns present holdings containing ids.
func SomeTokens(ids ...TokenID) TokenHoldings {
	if ids == nil {
		ids = []TokenID{}
	}
	return TokenHoldings{Tokens: ids, Present: true}
}

func (h TokenHoldings) MarshalJSON() ([]byte, error) {
	if !h.Present {
		return []byte("null"), nil
	}
	tokens := h.Tokens
	if tokens == nil {
		tokens = []TokenID{}
	}
	return json.Marshal(tokens)
}

func (h *TokenHoldings) DecodeSCALE(r *scale.Reader) error {
	present, err := r.ReadOption()
	if err != nil {
		return err
	}
	if !present {
		*h = TokenHoldings{}
		return nil
	}
	h.Present = true
	return decodeSeq(r, minTokenIDSize, &h.Tokens)
}

func (h TokenHoldings) EncodeSCALE(w *scale.Writer) {
	w.WriteOption(h.Present)
	if h.Present {
		encodeSeq(w, h.Tokens)
	}
}
