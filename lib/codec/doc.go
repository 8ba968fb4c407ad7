// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds switchboard's CBOR configuration.
//
// Compiled command tables are stored as CBOR so that loading a large
// table skips YAML and JSONC parsing. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. The same table always
// compiles to the same bytes, which keeps cache entries stable and
// lets tests compare compiled output directly.
//
// Types serialized here use `json` struct tags; fxamacker/cbor falls
// back to them when `cbor` tags are absent, so one tag set serves the
// table file formats and the compiled form.
package codec
