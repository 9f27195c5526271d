package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybornft/cyborstate/libs/json"
)

type pair [2]interface{}

type custom struct{}

func (custom) MarshalJSON() ([]byte, error) { return []byte(`{"custom":true}`), nil }

func TestMarshal(t *testing.T) {
	var u64Nil *uint64
	var customNil *custom
	u64 := uint64(64)

	testcases := map[string]struct {
		value  interface{}
		output string
	}{
		"nil":            {nil, `null`},
		"bool":           {true, `true`},
		"uint8":          {uint8(8), `8`},
		"uint32":         {uint32(32), `32`},
		"int64":          {int64(-64), `"-64"`},
		"uint64":         {uint64(64), `"64"`},
		"uint64 ptr":     {&u64, `"64"`},
		"uint64 ptr nil": {u64Nil, `null`},
		"string":         {"foo", `"foo"`},
		"html unescaped": {"<a&b>", `"<a&b>"`},
		"url":            {"https://x.io/ipfs/Q?a=1&b=2", `"https://x.io/ipfs/Q?a=1&b=2"`},
		"marshaler":      {custom{}, `{"custom":true}`},
		"marshaler ptr":  {&custom{}, `{"custom":true}`},
		"marshaler nil":  {customNil, `null`},
		"pair":           {pair{"0x00", true}, `["0x00",true]`},
		"empty slice":    {[]string{}, `[]`},
		"nil slice":      {[]string(nil), `null`},
		"nested uint64":  {[]uint64{64}, `[64]`},
		"struct": {struct {
			A string `json:"a"`
		}{"<"}, `{"a":"<"}`},
		"unicode": {"héllo", `"héllo"`},
	}
	for name, tc := range testcases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			bz, err := json.Marshal(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.output, string(bz))
		})
	}
}

func TestMarshalIndent(t *testing.T) {
	v := struct {
		A []int32 `json:"a"`
	}{A: []int32{1}}

	bz, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", string(bz))

	bz, err = json.MarshalIndent(v, "", "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1]}`, string(bz))
}
