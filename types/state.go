package types

import (
	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/scale"
)

// State is the full contract state. The association lists keep the order in
// which the contract emitted them; duplicate keys are kept as they are.
type State struct {
	OwnerByID         []OwnerEntry    `json:"owner_by_id"`
	TokenApprovals    []ApprovalEntry `json:"token_approvals"`
	TokenMetadataByID []MetadataEntry `json:"token_metadata_by_id"`
	TokensForOwner    []HoldingsEntry `json:"tokens_for_owner"`
	IsGaming          []GamingEntry   `json:"is_gaming"`

	TokenID    TokenID    `json:"token_id"`
	Owner      ActorID    `json:"owner"`
	Collection Collection `json:"collection"`
	Config     Config     `json:"config"`
	Level      uint8      `json:"level"`
	Grade      uint8      `json:"grade"`
}

// MarshalJSON renders nil association lists as [] rather than null.
func (s State) MarshalJSON() ([]byte, error) {
	type state State
	v := state(s)
	if v.OwnerByID == nil {
		v.OwnerByID = []OwnerEntry{}
	}
	if v.TokenApprovals == nil {
		v.TokenApprovals = []ApprovalEntry{}
	}
	if v.TokenMetadataByID == nil {
		v.TokenMetadataByID = []MetadataEntry{}
	}
	if v.TokensForOwner == nil {
		v.TokensForOwner = []HoldingsEntry{}
	}
	if v.IsGaming == nil {
		v.IsGaming = []GamingEntry{}
	}
	return json.Marshal(v)
}

func (s *State) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"owner_by_id", func(r *scale.Reader) error {
			return decodeSeq(r, minOwnerEntrySize, &s.OwnerByID)
		}},
		field{"token_approvals", func(r *scale.Reader) error {
			return decodeSeq(r, minApprovalEntrySize, &s.TokenApprovals)
		}},
		field{"token_metadata_by_id", func(r *scale.Reader) error {
			return decodeSeq(r, minMetadataEntrySize, &s.TokenMetadataByID)
		}},
		field{"tokens_for_owner", func(r *scale.Reader) error {
			return decodeSeq(r, minHoldingsEntrySize, &s.TokensForOwner)
		}},
		field{"is_gaming", func(r *scale.Reader) error {
			return decodeSeq(r, minGamingEntrySize, &s.IsGaming)
		}},
		field{"token_id", s.TokenID.DecodeSCALE},
		field{"owner", s.Owner.DecodeSCALE},
		field{"collection", s.Collection.DecodeSCALE},
		field{"config", s.Config.DecodeSCALE},
		field{"level", readU8(&s.Level)},
		field{"grade", readU8(&s.Grade)},
	)
}

func (s State) EncodeSCALE(w *scale.Writer) {
	encodeSeq(w, s.OwnerByID)
	encodeSeq(w, s.TokenApprovals)
	encodeSeq(w, s.TokenMetadataByID)
	encodeSeq(w, s.TokensForOwner)
	encodeSeq(w, s.IsGaming)
	s.TokenID.EncodeSCALE(w)
	s.Owner.EncodeSCALE(w)
	s.Collection.EncodeSCALE(w)
	s.Config.EncodeSCALE(w)
	w.WriteU8(s.Level)
	w.WriteU8(s.Grade)
}

// OwnerOf returns the owner recorded for id. If the list names the token
// more than once the last entry wins.
func (s *State) OwnerOf(id TokenID) (ActorID, bool) {
	var (
		owner ActorID
		found bool
	)
	for _, e := range s.OwnerByID {
		if e.TokenID == id {
			owner, found = e.Owner, true
		}
	}
	return owner, found
}

// TokensOf returns the holdings recorded for owner, or absent holdings if the
// owner has no entry. If the list names the owner more than once the last
// entry wins.
func (s *State) TokensOf(owner ActorID) TokenHoldings {
	var h TokenHoldings
	for _, e := range s.TokensForOwner {
		if e.Owner == owner {
			h = SomeTokens(e.Tokens...)
		}
	}
	return h
}

// MetadataOf returns the metadata recorded for id, last entry winning.
func (s *State) MetadataOf(id TokenID) (TokenMetadata, bool) {
	var (
		md    TokenMetadata
		found bool
	)
	for _, e := range s.TokenMetadataByID {
		if e.TokenID == id {
			md, found = e.Metadata, true
		}
	}
	return md, found
}
