// Package convert turns hex encoded contract state into JSON.
//
// A conversion runs three stages: the hex string is decoded into bytes, the
// bytes are decoded into a typed value from package types, and the value is
// rendered as JSON. Each stage has its own error class (see Kind). Nothing
// in the pipeline panics on malformed input.
package convert

import (
	"fmt"
	"strings"

	pool "github.com/libp2p/go-buffer-pool"

	"github.com/cybornft/cyborstate/libs/json"
	"github.com/cybornft/cyborstate/libs/log"
	"github.com/cybornft/cyborstate/scale"
	"github.com/cybornft/cyborstate/types"
)

// Conversion targets, used as a metrics label and in log lines.
const (
	TargetState  = "state"
	TargetTokens = "tokens"
)

// TrailingPolicy decides what happens to bytes left over after the top level
// value has been decoded.
type TrailingPolicy string

const (
	// TrailingStrict rejects leftover bytes with scale.ErrTrailingBytes.
	TrailingStrict TrailingPolicy = "strict"
	// TrailingPermissive ignores leftover bytes, logging and counting them.
	TrailingPermissive TrailingPolicy = "permissive"
)

// ParseTrailingPolicy parses "strict" or "permissive".
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch p := TrailingPolicy(strings.ToLower(s)); p {
	case TrailingStrict, TrailingPermissive:
		return p, nil
	}
	return "", fmt.Errorf("unknown trailing bytes policy %q (want %q or %q)", s, TrailingStrict, TrailingPermissive)
}

// Converter runs conversions. The zero value is not usable; create one with
// NewConverter. A Converter holds no per-call state and is safe for
// concurrent use.
type Converter struct {
	logger   log.Logger
	metrics  *Metrics
	trailing TrailingPolicy
	indent   string
}

// Option sets an optional parameter on the Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Converter) { c.logger = logger }
}

// WithMetrics sets the metrics. The default is NopMetrics.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Converter) { c.metrics = metrics }
}

// WithTrailingBytes sets the trailing bytes policy. The default is
// TrailingStrict.
func WithTrailingBytes(p TrailingPolicy) Option {
	return func(c *Converter) { c.trailing = p }
}

// WithIndent pretty prints the JSON output with the given indent string.
func WithIndent(indent string) Option {
	return func(c *Converter) { c.indent = indent }
}

// NewConverter returns a strict converter with a nop logger and nop metrics,
// modified by opts.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:   log.NewNopLogger(),
		metrics:  NopMetrics(),
		trailing: TrailingStrict,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StateFromHex decodes a hex encoded State and returns its JSON form.
func (c *Converter) StateFromHex(s string) (string, error) {
	var st types.State
	return c.convert(TargetState, s, &st, func() interface{} { return &st })
}

// OwnerTokensFromHex decodes a hex encoded State and returns the JSON form of
// the token list recorded for owner, in the same shape as
// TokensByOwnerFromHex: null when the owner has no entry.
func (c *Converter) OwnerTokensFromHex(s string, owner types.ActorID) (string, error) {
	var st types.State
	return c.convert(TargetState, s, &st, func() interface{} { return st.TokensOf(owner) })
}

// TokensByOwnerFromHex decodes a hex encoded optional token list and returns
// its JSON form: null when absent, otherwise an array of decimal strings.
func (c *Converter) TokensByOwnerFromHex(s string) (string, error) {
	var h types.TokenHoldings
	return c.convert(TargetTokens, s, &h, func() interface{} { return &h })
}

// DecodeState decodes a binary State under the converter's trailing bytes
// policy.
func (c *Converter) DecodeState(bz []byte) (*types.State, error) {
	st := new(types.State)
	if err := c.decode(bz, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DecodeTokenHoldings decodes a binary optional token list under the
// converter's trailing bytes policy.
func (c *Converter) DecodeTokenHoldings(bz []byte) (types.TokenHoldings, error) {
	var h types.TokenHoldings
	if err := c.decode(bz, &h); err != nil {
		return types.TokenHoldings{}, err
	}
	return h, nil
}

// Render returns the JSON form of v using the converter's indent.
func (c *Converter) Render(v interface{}) (string, error) {
	bz, err := json.MarshalIndent(v, "", c.indent)
	if err != nil {
		return "", &SerializeError{Err: err}
	}
	return string(bz), nil
}

// convert decodes s into v and renders the value returned by view.
func (c *Converter) convert(target, s string, v scale.Decodable, view func() interface{}) (string, error) {
	out, n, err := c.run(target, s, v, view)
	kind := KindOf(err)
	c.metrics.Conversions.With("target", target, "result", kind.String()).Add(1)
	if err != nil {
		keyVals := []interface{}{"target", target, "kind", kind.String(), "err", err}
		if de, ok := scale.AsDecodeError(err); ok {
			keyVals = append(keyVals, "offset", de.Offset, "path", de.Path)
		}
		c.logger.Error("conversion failed", keyVals...)
		return "", err
	}
	c.logger.Debug("converted", "target", target, "input_bytes", n, "output_bytes", len(out))
	return out, nil
}

func (c *Converter) run(target, s string, v scale.Decodable, view func() interface{}) (string, int, error) {
	bz, err := decodeHexPooled(s)
	if err != nil {
		return "", 0, err
	}
	n := len(bz)
	c.metrics.InputBytes.With("target", target).Observe(float64(n))

	// decoded values copy what they keep, so the buffer can go back now
	err = c.decode(bz, v)
	pool.Put(bz)
	if err != nil {
		return "", n, err
	}

	out, err := c.Render(view())
	return out, n, err
}

func (c *Converter) decode(bz []byte, v scale.Decodable) error {
	if c.trailing != TrailingPermissive {
		if err := scale.Unmarshal(bz, v); err != nil {
			return decodeFailed(err)
		}
		return nil
	}

	n, err := scale.UnmarshalPrefix(bz, v)
	if err != nil {
		return decodeFailed(err)
	}
	if extra := len(bz) - n; extra > 0 {
		c.logger.Info("ignoring trailing bytes", "offset", n, "count", extra)
		c.metrics.TrailingBytes.Add(float64(extra))
	}
	return nil
}

var defaultConverter = NewConverter()

// StateFromHex converts with a strict converter and no logging.
func StateFromHex(s string) (string, error) {
	return defaultConverter.StateFromHex(s)
}

// TokensByOwnerFromHex converts with a strict converter and no logging.
func TokensByOwnerFromHex(s string) (string, error) {
	return defaultConverter.TokensByOwnerFromHex(s)
}
