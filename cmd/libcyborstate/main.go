// Command libcyborstate builds the C shared library exposing the state
// converter:
//
//	go build -buildmode=c-shared -o libcyborstate.so ./cmd/libcyborstate
//
// Every string handed to the caller must be released with release_string.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"
)

// state_from_hex converts a hex encoded contract state. It returns the
// error kind (0 on success) and stores the JSON, or the error message, in
// *out.
//
//export state_from_hex
func state_from_hex(hex *C.char, out **C.char) C.int {
	return call(hex, out, boundaryConverter().StateFromHex)
}

// tokens_by_owner_from_hex converts a hex encoded optional token list.
//
//export tokens_by_owner_from_hex
func tokens_by_owner_from_hex(hex *C.char, out **C.char) C.int {
	return call(hex, out, boundaryConverter().TokensByOwnerFromHex)
}

//export release_string
func release_string(s *C.char) {
	release(unsafe.Pointer(s), cFree)
}

func cFree(p unsafe.Pointer) { C.free(p) }

// hex_to_state_json returns the state JSON, or NULL on any failure.
//
//export hex_to_state_json
func hex_to_state_json(hex *C.char) *C.char {
	return callLegacy(hex, boundaryConverter().StateFromHex)
}

// hex_to_tokens_by_owner_json returns the token list JSON, or NULL on any
// failure.
//
//export hex_to_tokens_by_owner_json
func hex_to_tokens_by_owner_json(hex *C.char) *C.char {
	return callLegacy(hex, boundaryConverter().TokensByOwnerFromHex)
}

//export free_c_string
func free_c_string(s *C.char) {
	release_string(s)
}

func call(hex *C.char, out **C.char, conv conversion) C.int {
	res := invoke(conv, goString(hex), hex == nil)
	if out != nil {
		*out = C.CString(res.text)
	}
	return C.int(res.kind)
}

func callLegacy(hex *C.char, conv conversion) *C.char {
	res := invoke(conv, goString(hex), hex == nil)
	if res.kind != 0 {
		return nil
	}
	return C.CString(res.text)
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func main() {}
