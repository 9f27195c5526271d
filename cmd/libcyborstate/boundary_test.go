package main

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybornft/cyborstate/convert"
)

func TestInvoke(t *testing.T) {
	c := convert.NewConverter()

	testCases := map[string]struct {
		conv     conversion
		hex      string
		null     bool
		wantKind convert.Kind
		wantText string
	}{
		"tokens absent": {c.TokensByOwnerFromHex, "00", false, convert.KindNone, "null"},
		"tokens": {
			c.TokensByOwnerFromHex, "0104" + "2a000000000000000000000000000000", false,
			convert.KindNone, `["42"]`,
		},
		"null input":  {c.StateFromHex, "", true, convert.KindInvalidHexInput, "null input pointer"},
		"bad digit":   {c.StateFromHex, "zz", false, convert.KindInvalidHexInput, "invalid character 'z'"},
		"odd length":  {c.TokensByOwnerFromHex, "0", false, convert.KindInvalidHexInput, "odd number of digits"},
		"empty state": {c.StateFromHex, "", false, convert.KindDecode, "decode"},
		"bad option":  {c.TokensByOwnerFromHex, "05", false, convert.KindDecode, "option"},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			res := invoke(tc.conv, tc.hex, tc.null)
			assert.Equal(t, tc.wantKind, res.kind)
			assert.Contains(t, res.text, tc.wantText)
		})
	}
}

func TestInvokeRecoversPanic(t *testing.T) {
	res := invoke(func(string) (string, error) { panic("boom") }, "00", false)
	assert.Equal(t, convert.KindInternal, res.kind)
	assert.Equal(t, "internal error: boom", res.text)
}

func TestNewBoundaryConverter(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}
	trailing := "00" + "ff"

	c := newBoundaryConverter(env(nil))
	_, err := c.TokensByOwnerFromHex(trailing)
	require.Error(t, err)

	c = newBoundaryConverter(env(map[string]string{envTrailing: "permissive"}))
	out, err := c.TokensByOwnerFromHex(trailing)
	require.NoError(t, err)
	assert.Equal(t, "null", out)

	// unusable settings fall back to the defaults
	c = newBoundaryConverter(env(map[string]string{
		envTrailing:  "lenient",
		envLogLevel:  "loud",
		envLogFormat: "xml",
	}))
	_, err = c.TokensByOwnerFromHex(trailing)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "trailing"), err.Error())
}

func TestReleaseNullIsNoop(t *testing.T) {
	var freed []unsafe.Pointer
	free := func(p unsafe.Pointer) { freed = append(freed, p) }

	release(nil, free)
	assert.Empty(t, freed)

	var b byte
	release(unsafe.Pointer(&b), free)
	require.Len(t, freed, 1)
	assert.Equal(t, unsafe.Pointer(&b), freed[0])
}
