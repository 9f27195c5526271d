package types

import (
	"fmt"

	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/scale"
)

// RaceKind selects the variant of a Race.
type RaceKind uint8

const (
	RaceMalikAhmed RaceKind = iota
	RaceIsabellaRodriguez
)

var raceNames = []string{
	RaceMalikAhmed:        "MalikAhmed",
	RaceIsabellaRodriguez: "IsabellaRodriguez",
}

func (k RaceKind) String() string {
	if int(k) < len(raceNames) {
		return raceNames[k]
	}
	return fmt.Sprintf("RaceKind(%d)", uint8(k))
}

// Race is a tagged choice between the cybor races, each carrying an 8-bit
// payload. The zero value is MalikAhmed(0).
type Race struct {
	Kind  RaceKind
	Value uint8
}

// MarshalJSON renders the externally tagged form, e.g. {"MalikAhmed":10}.
func (r Race) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]uint8{r.Kind.String(): r.Value})
}

func (r *Race) DecodeSCALE(rd *scale.Reader) error {
	d, err := rd.ReadVariant("Race", raceNames)
	if err != nil {
		return err
	}
	v, err := rd.ReadU8()
	if err != nil {
		return scale.WithPath(err, raceNames[d])
	}
	r.Kind, r.Value = RaceKind(d), v
	return nil
}

func (r Race) EncodeSCALE(w *scale.Writer) {
	w.WriteU8(uint8(r.Kind))
	w.WriteU8(r.Value)
}
