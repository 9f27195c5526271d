package types

import (
	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/scale"
)

// The entries below are the pairs of the association lists in State. Each
// renders in JSON as a two element array [key, value].

type OwnerEntry struct {
	TokenID TokenID
	Owner   ActorID
}

func (e OwnerEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.TokenID, e.Owner})
}

func (e *OwnerEntry) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"key", e.TokenID.DecodeSCALE},
		field{"value", e.Owner.DecodeSCALE},
	)
}

func (e OwnerEntry) EncodeSCALE(w *scale.Writer) {
	e.TokenID.EncodeSCALE(w)
	e.Owner.EncodeSCALE(w)
}

type ApprovalEntry struct {
	TokenID  TokenID
	Approved ActorID
}

func (e ApprovalEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.TokenID, e.Approved})
}

func (e *ApprovalEntry) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"key", e.TokenID.DecodeSCALE},
		field{"value", e.Approved.DecodeSCALE},
	)
}

func (e ApprovalEntry) EncodeSCALE(w *scale.Writer) {
	e.TokenID.EncodeSCALE(w)
	e.Approved.EncodeSCALE(w)
}

type MetadataEntry struct {
	TokenID  TokenID
	Metadata TokenMetadata
}

func (e MetadataEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.TokenID, e.Metadata})
}

func (e *MetadataEntry) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"key", e.TokenID.DecodeSCALE},
		field{"value", e.Metadata.DecodeSCALE},
	)
}

func (e MetadataEntry) EncodeSCALE(w *scale.Writer) {
	e.TokenID.EncodeSCALE(w)
	e.Metadata.EncodeSCALE(w)
}

// HoldingsEntry lists the tokens held by one owner, in contract order.
type HoldingsEntry struct {
	Owner  ActorID
	Tokens []TokenID
}

func (e HoldingsEntry) MarshalJSON() ([]byte, error) {
	tokens := e.Tokens
	if tokens == nil {
		tokens = []TokenID{}
	}
	return json.Marshal([2]interface{}{e.Owner, tokens})
}

func (e *HoldingsEntry) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"key", e.Owner.DecodeSCALE},
		field{"value", func(r *scale.Reader) error {
			return decodeSeq(r, minTokenIDSize, &e.Tokens)
		}},
	)
}

func (e HoldingsEntry) EncodeSCALE(w *scale.Writer) {
	e.Owner.EncodeSCALE(w)
	encodeSeq(w, e.Tokens)
}

type GamingEntry struct {
	TokenID TokenID
	Gaming  bool
}

func (e GamingEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.TokenID, e.Gaming})
}

func (e *GamingEntry) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"key", e.TokenID.DecodeSCALE},
		field{"value", readBool(&e.Gaming)},
	)
}

func (e GamingEntry) EncodeSCALE(w *scale.Writer) {
	e.TokenID.EncodeSCALE(w)
	w.WriteBool(e.Gaming)
}
