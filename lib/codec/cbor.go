// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	// encMode sorts map keys and uses the shortest integer and float
	// forms, so a resolution always encodes to the same bytes.
	encMode cbor.EncMode

	// decMode yields map[string]any for untyped maps, matching what
	// literal.Value.Interface produces on the way out.
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any(nil))}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder writes a stream of CBOR items.
type Encoder = cbor.Encoder

// NewEncoder returns a deterministic [Encoder] writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// Diagnose renders data in CBOR diagnostic notation, which is what
// rubycom prints instead of raw CBOR on a terminal.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
