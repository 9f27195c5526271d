package types

import (
	"github.com/cybornft/cyborstate/scale"
)

// TokenMetadata describes one cybor: display data, race and the initial
// game attributes.
type TokenMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Media       string `json:"media"`
	Reference   string `json:"reference"`
	Race        Race   `json:"race"`

	InitAttack       uint32 `json:"init_attack"`
	InitDefence      uint32 `json:"init_defence"`
	InitIntelligence uint32 `json:"init_intelligence"`
	InitMinersLimit  uint16 `json:"init_miners_limit"`

	LevelLimit uint8 `json:"level_limit"`
	GradeLimit uint8 `json:"grade_limit"`
}

func (m *TokenMetadata) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"name", readString(&m.Name)},
		field{"description", readString(&m.Description)},
		field{"media", readString(&m.Media)},
		field{"reference", readString(&m.Reference)},
		field{"race", m.Race.DecodeSCALE},
		field{"init_attack", readU32(&m.InitAttack)},
		field{"init_defence", readU32(&m.InitDefence)},
		field{"init_intelligence", readU32(&m.InitIntelligence)},
		field{"init_miners_limit", readU16(&m.InitMinersLimit)},
		field{"level_limit", readU8(&m.LevelLimit)},
		field{"grade_limit", readU8(&m.GradeLimit)},
	)
}

func (m TokenMetadata) EncodeSCALE(w *scale.Writer) {
	w.WriteString(m.Name)
	w.WriteString(m.Description)
	w.WriteString(m.Media)
	w.WriteString(m.Reference)
	m.Race.EncodeSCALE(w)
	w.WriteU32(m.InitAttack)
	w.WriteU32(m.InitDefence)
	w.WriteU32(m.InitIntelligence)
	w.WriteU16(m.InitMinersLimit)
	w.WriteU8(m.LevelLimit)
	w.WriteU8(m.GradeLimit)
}

// Collection names the NFT collection.
type Collection struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Collection) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"name", readString(&c.Name)},
		field{"description", readString(&c.Description)},
	)
}

func (c Collection) EncodeSCALE(w *scale.Writer) {
	w.WriteString(c.Name)
	w.WriteString(c.Description)
}

// Config holds the contract settings. A nil MaxMintCount means minting is
// unlimited.
type Config struct {
	MaxMintCount *U128   `json:"max_mint_count"`
	GameActor    ActorID `json:"game_actor"`
}

func (c *Config) DecodeSCALE(r *scale.Reader) error {
	return decodeFields(r,
		field{"max_mint_count", func(r *scale.Reader) error {
			present, err := r.ReadOption()
			if err != nil || !present {
				c.MaxMintCount = nil
				return err
			}
			v := new(U128)
			if err := v.DecodeSCALE(r); err != nil {
				return err
			}
			c.MaxMintCount = v
			return nil
		}},
		field{"game_actor", c.GameActor.DecodeSCALE},
	)
}

func (c Config) EncodeSCALE(w *scale.Writer) {
	w.WriteOption(c.MaxMintCount != nil)
	if c.MaxMintCount != nil {
		c.MaxMintCount.EncodeSCALE(w)
	}
	c.GameActor.EncodeSCALE(w)
}
