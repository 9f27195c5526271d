// Package json renders values as deterministic JSON.
//
// HTML characters (<, >, &) are written verbatim and output never carries a
// trailing newline. A top-level 64-bit integer, or a pointer to one, is
// emitted as a string. Structs, slices and maps are handed to encoding/json
// as a whole, so wide integers nested inside them must quote themselves
// through MarshalJSON, the way the 128-bit token ids in package types do.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
)

var jsonMarshalerType = reflect.TypeOf(new(json.Marshaler)).Elem()

// Marshal returns the JSON encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but indents the output with json.Indent.
// An empty prefix and indent yield the compact form.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	bz, err := Marshal(v)
	if err != nil || (prefix == "" && indent == "") {
		return bz, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, bz, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func encodeJSON(w io.Writer, v interface{}) error {
	if v == nil {
		return writeStr(w, "null")
	}
	return encodeReflectJSON(w, reflect.ValueOf(v))
}

// encodeReflectJSON dereferences pointers, quotes a bare 64-bit integer and
// passes everything else to encoding/json.
func encodeReflectJSON(w io.Writer, rv reflect.Value) error {
	if !rv.IsValid() {
		return errors.New("invalid reflect value")
	}

	// Recursively dereference value if pointer.
	for rv.Kind() == reflect.Ptr {
		// If the value implements json.Marshaler, defer to stdlib directly. Dereferencing it will
		// break json.Marshaler implementations that take a pointer receiver.
		if rv.Type().Implements(jsonMarshalerType) && !rv.IsNil() {
			return encodeJSONStdlib(w, rv.Interface())
		}
		// If nil, we can't dereference by definition.
		if rv.IsNil() {
			return writeStr(w, `null`)
		}
		rv = rv.Elem()
	}

	if rv.Type().Implements(jsonMarshalerType) {
		return encodeJSONStdlib(w, rv.Interface())
	}

	switch rv.Type().Kind() {
	case reflect.Int64, reflect.Int:
		return writeStr(w, `"`+strconv.FormatInt(rv.Int(), 10)+`"`)

	case reflect.Uint64, reflect.Uint:
		return writeStr(w, `"`+strconv.FormatUint(rv.Uint(), 10)+`"`)

	// For everything else, defer to the stdlib encoding/json encoder
	default:
		return encodeJSONStdlib(w, rv.Interface())
	}
}

func encodeJSONStdlib(w io.Writer, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encoder.Encode terminates every value with a newline.
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

func writeStr(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
