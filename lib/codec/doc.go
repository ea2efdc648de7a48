// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding used for machine-readable
// resolution output ("rubycom resolve --format cbor").
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same resolution always produces identical bytes, so output can be
// hashed or compared byte-for-byte.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types that serialize as both JSON and CBOR carry only `json` tags;
// fxamacker/cbor reads them as a fallback. Decoded maps with `any`
// targets come back as map[string]any, matching encoding/json.
package codec
