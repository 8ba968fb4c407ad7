// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/switchboard/lib/codec"
)

// CompiledExtension is the file extension of compiled tables.
const CompiledExtension = ".swb"

// Compiled layout: magic, compression tag (1 byte), uncompressed
// payload length (uint32, big-endian), source digest (32 bytes), then
// the possibly compressed CBOR payload.
const (
	compiledMagic = "SWB1"

	headerSize = len(compiledMagic) + 1 + 4 + DigestSize

	// maxPayloadSize bounds the allocation made for a corrupted
	// length field.
	maxPayloadSize = 64 << 20
)

var (
	// ErrNotCompiled is returned when data lacks the compiled magic.
	ErrNotCompiled = errors.New("not a compiled table")

	// ErrDigestMismatch is returned when a compiled table was built
	// from different source bytes than the ones supplied.
	ErrDigestMismatch = errors.New("compiled table does not match source")
)

// DigestSize is the length of a [Digest] in bytes.
const DigestSize = 32

// Digest is the BLAKE3 keyed hash of a table's source bytes.
type Digest [DigestSize]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// sourceDomainKey is the BLAKE3 key for source digests: the ASCII
// domain name zero-padded to 32 bytes.
var sourceDomainKey = [32]byte{
	's', 'w', 'i', 't', 'c', 'h', 'b', 'o', 'a', 'r', 'd', '.', 't', 'a', 'b', 'l',
	'e', '.', 's', 'o', 'u', 'r', 'c', 'e', 0, 0, 0, 0, 0, 0, 0, 0,
}

// SourceDigest computes the digest of table source bytes.
func SourceDigest(source []byte) Digest {
	hasher, err := blake3.NewKeyed(sourceDomainKey[:])
	if err != nil {
		panic("table: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(source)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// Compiled is a decoded compiled table.
type Compiled struct {
	Table *Table

	// Digest is the digest of the source the table was compiled from.
	Digest Digest

	// Compression is the algorithm the payload was stored with. It
	// can be CompressionNone even when another was requested, if
	// compression did not shrink the payload.
	Compression Compression
}

// Verify returns ErrDigestMismatch unless the table was compiled
// from source.
func (c *Compiled) Verify(source []byte) error {
	if SourceDigest(source) != c.Digest {
		return ErrDigestMismatch
	}
	return nil
}

// IsCompiled reports whether data starts with the compiled magic.
func IsCompiled(data []byte) bool {
	return bytes.HasPrefix(data, []byte(compiledMagic))
}

// Compile encodes table as CBOR, compresses the payload, and prefixes
// the header carrying the digest of source.
func Compile(table *Table, source []byte, compression Compression) ([]byte, error) {
	payload, err := codec.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	if len(payload) > maxPayloadSize {
		return nil, fmt.Errorf("encoding table: payload of %d bytes exceeds %d", len(payload), maxPayloadSize)
	}

	stored, actual, err := compress(payload, compression)
	if err != nil {
		return nil, fmt.Errorf("compressing table: %w", err)
	}

	digest := SourceDigest(source)
	output := make([]byte, 0, headerSize+len(stored))
	output = append(output, compiledMagic...)
	output = append(output, byte(actual))
	output = binary.BigEndian.AppendUint32(output, uint32(len(payload)))
	output = append(output, digest[:]...)
	output = append(output, stored...)
	return output, nil
}

// Decode parses data produced by [Compile].
func Decode(data []byte) (*Compiled, error) {
	if !IsCompiled(data) {
		return nil, ErrNotCompiled
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("compiled table: header truncated at %d bytes", len(data))
	}

	offset := len(compiledMagic)
	compression := Compression(data[offset])
	offset++
	size := binary.BigEndian.Uint32(data[offset:])
	offset += 4
	if size > maxPayloadSize {
		return nil, fmt.Errorf("compiled table: payload length %d exceeds %d", size, maxPayloadSize)
	}
	var digest Digest
	copy(digest[:], data[offset:offset+DigestSize])
	offset += DigestSize

	payload, err := decompress(data[offset:], compression, int(size))
	if err != nil {
		return nil, fmt.Errorf("compiled table: %w", err)
	}

	var table Table
	if err := codec.Unmarshal(payload, &table); err != nil {
		return nil, fmt.Errorf("compiled table: decoding payload: %w", err)
	}

	return &Compiled{
		Table:       &table,
		Digest:      digest,
		Compression: compression,
	}, nil
}
