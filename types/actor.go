package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/cybornft/cyborstate/scale"
)

// ActorIDSize is the length of an ActorID in bytes.
const ActorIDSize = 32

// ActorID is the opaque 32 byte handle of an account or program. Its text
// form is "0x" followed by 64 lowercase hex digits.
type ActorID [ActorIDSize]byte

// ParseActorID parses the text form of an ActorID.
func ParseActorID(s string) (ActorID, error) {
	var id ActorID
	err := id.UnmarshalText([]byte(s))
	return id, err
}

func (a ActorID) String() string { return hexutil.Encode(a[:]) }

func (a ActorID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *ActorID) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("ActorID", input, a[:])
}

func (a *ActorID) DecodeSCALE(r *scale.Reader) error {
	bz, err := r.ReadFixed(ActorIDSize)
	if err != nil {
		return err
	}
	copy(a[:], bz)
	return nil
}

func (a ActorID) EncodeSCALE(w *scale.Writer) { w.WriteFixed(a[:]) }
