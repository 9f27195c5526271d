package types

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
	"pgregory.net/rapid"

	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/scale"
)

func TestActorIDText(t *testing.T) {
	id := ActorID{0xAB, 0x01}
	id[31] = 0xff
	s := id.String()
	assert.Len(t, s, 66)
	assert.Equal(t, "0xab01", s[:6])
	assert.Equal(t, "ff", s[64:])

	back, err := ParseActorID(s)
	require.NoError(t, err)
	assert.Equal(t, id, back)

	testCases := map[string]string{
		"missing prefix": s[2:],
		"too short":      "0x00",
		"not hex":        "0x" + string(make([]byte, 64)),
		"empty":          "",
	}
	for name, input := range testCases {
		input := input
		t.Run(name, func(t *testing.T) {
			_, err := ParseActorID(input)
			assert.Error(t, err)
		})
	}
}

func TestU128(t *testing.T) {
	v := U128{uint128.New(0, 1)}
	assert.Equal(t, "18446744073709551616", v.String())

	bz, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"18446744073709551616"`, string(bz))

	parsed, err := ParseU128("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.Equal(t, U128{uint128.Max}, parsed)

	_, err = ParseU128("-1")
	assert.Error(t, err)

	w := scale.NewWriter()
	NewU128(1).EncodeSCALE(w)
	assert.Equal(t, append([]byte{1}, make([]byte, 15)...), w.Bytes())
}

func TestRaceJSON(t *testing.T) {
	testCases := []struct {
		race Race
		want string
	}{
		{Race{}, `{"MalikAhmed":0}`},
		{Race{Kind: RaceMalikAhmed, Value: 10}, `{"MalikAhmed":10}`},
		{Race{Kind: RaceIsabellaRodriguez, Value: 255}, `{"IsabellaRodriguez":255}`},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			bz, err := json.Marshal(tc.race)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(bz))
		})
	}
	assert.Equal(t, "RaceKind(9)", RaceKind(9).String())
}

func TestTokenHoldings(t *testing.T) {
	testCases := map[string]struct {
		encoded  []byte
		want     TokenHoldings
		wantJSON string
	}{
		"none": {
			encoded:  []byte{0},
			want:     TokenHoldings{},
			wantJSON: `null`,
		},
		"some empty": {
			encoded:  []byte{1, 0},
			want:     SomeTokens(),
			wantJSON: `[]`,
		},
		"some three": {
			encoded:  scale.Marshal(SomeTokens(NewU128(1), NewU128(2), NewU128(3))),
			want:     SomeTokens(NewU128(1), NewU128(2), NewU128(3)),
			wantJSON: `["1","2","3"]`,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			var got TokenHoldings
			require.NoError(t, scale.Unmarshal(tc.encoded, &got))
			assert.Equal(t, tc.want, got)

			bz, err := json.Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, tc.wantJSON, string(bz))
		})
	}
}

func TestTokenHoldingsRejectsBadInput(t *testing.T) {
	var h TokenHoldings
	err := scale.Unmarshal([]byte{2}, &h)
	assert.True(t, errors.Is(err, scale.ErrInvalidOption))

	// claims 3 tokens but carries one
	w := scale.NewWriter()
	w.WriteOption(true)
	w.WriteCompact(3)
	NewU128(1).EncodeSCALE(w)
	err = scale.Unmarshal(w.Bytes(), &h)
	assert.True(t, errors.Is(err, scale.ErrInvalidLength))

	err = scale.Unmarshal([]byte{0, 0}, &h)
	assert.True(t, errors.Is(err, scale.ErrTrailingBytes))
}

func drawU128(t *rapid.T, label string) U128 {
	lo := rapid.Uint64().Draw(t, label+".lo").(uint64)
	hi := rapid.Uint64().Draw(t, label+".hi").(uint64)
	return U128{uint128.New(lo, hi)}
}

func drawActor(t *rapid.T, label string) ActorID {
	var id ActorID
	copy(id[:], rapid.SliceOfN(rapid.Byte(), ActorIDSize, ActorIDSize).Draw(t, label).([]byte))
	return id
}

func drawString(t *rapid.T, label string) string {
	return rapid.String().Draw(t, label).(string)
}

func drawLen(t *rapid.T, label string) int {
	return rapid.IntRange(0, 4).Draw(t, label).(int)
}

func drawMetadata(t *rapid.T) TokenMetadata {
	return TokenMetadata{
		Name:        drawString(t, "name"),
		Description: drawString(t, "description"),
		Media:       drawString(t, "media"),
		Reference:   drawString(t, "reference"),
		Race: Race{
			Kind:  RaceKind(rapid.IntRange(0, 1).Draw(t, "race").(int)),
			Value: rapid.Uint8().Draw(t, "race.value").(uint8),
		},
		InitAttack:       rapid.Uint32().Draw(t, "attack").(uint32),
		InitDefence:      rapid.Uint32().Draw(t, "defence").(uint32),
		InitIntelligence: rapid.Uint32().Draw(t, "intelligence").(uint32),
		InitMinersLimit:  rapid.Uint16().Draw(t, "miners").(uint16),
		LevelLimit:       rapid.Uint8().Draw(t, "level_limit").(uint8),
		GradeLimit:       rapid.Uint8().Draw(t, "grade_limit").(uint8),
	}
}

func drawState(t *rapid.T) State {
	var s State
	for i, n := 0, drawLen(t, "owners"); i < n; i++ {
		s.OwnerByID = append(s.OwnerByID, OwnerEntry{drawU128(t, "owner.key"), drawActor(t, "owner.value")})
	}
	for i, n := 0, drawLen(t, "approvals"); i < n; i++ {
		s.TokenApprovals = append(s.TokenApprovals, ApprovalEntry{drawU128(t, "approval.key"), drawActor(t, "approval.value")})
	}
	for i, n := 0, drawLen(t, "metadata"); i < n; i++ {
		s.TokenMetadataByID = append(s.TokenMetadataByID, MetadataEntry{drawU128(t, "metadata.key"), drawMetadata(t)})
	}
	for i, n := 0, drawLen(t, "holdings"); i < n; i++ {
		e := HoldingsEntry{Owner: drawActor(t, "holdings.key")}
		for j, m := 0, drawLen(t, "holdings.len"); j < m; j++ {
			e.Tokens = append(e.Tokens, drawU128(t, "holdings.token"))
		}
		s.TokensForOwner = append(s.TokensForOwner, e)
	}
	for i, n := 0, drawLen(t, "gaming"); i < n; i++ {
		s.IsGaming = append(s.IsGaming, GamingEntry{drawU128(t, "gaming.key"), rapid.Bool().Draw(t, "gaming.value").(bool)})
	}
	s.TokenID = drawU128(t, "token_id")
	s.Owner = drawActor(t, "owner")
	s.Collection = Collection{Name: drawString(t, "collection.name"), Description: drawString(t, "collection.description")}
	if rapid.Bool().Draw(t, "max_mint_count.present").(bool) {
		v := drawU128(t, "max_mint_count")
		s.Config.MaxMintCount = &v
	}
	s.Config.GameActor = drawActor(t, "game_actor")
	s.Level = rapid.Uint8().Draw(t, "level").(uint8)
	s.Grade = rapid.Uint8().Draw(t, "grade").(uint8)
	return s
}

func TestStateRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		want := drawState(t)
		bz := scale.Marshal(want)

		var got State
		if err := scale.Unmarshal(bz, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("state mismatch (-want, +got):\n%s", diff)
		}

		wantJSON, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		gotJSON, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(wantJSON) != string(gotJSON) {
			t.Fatalf("json mismatch:\n%s\n%s", wantJSON, gotJSON)
		}

		if len(bz) > 0 {
			cut := rapid.IntRange(0, len(bz)-1).Draw(t, "cut").(int)
			if err := scale.Unmarshal(bz[:cut], &State{}); err == nil {
				t.Fatalf("decoding %d of %d bytes succeeded", cut, len(bz))
			}
		}
	})
}
