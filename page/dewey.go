// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package page

import (
	"bytes"
	"fmt"
	"io"
)

// DeweyID is a hierarchical byte-string label addressing a node's position
// in the tree (ancestor prefix plus sibling index). DeweyIDs compare with
// their natural (lexicographic) byte ordering.
type DeweyID []byte

// Compare returns -1, 0 or 1 following the natural ordering of Dewey-IDs.
func (d DeweyID) Compare(o DeweyID) int {
	return bytes.Compare(d, o)
}

// Equal reports whether two Dewey-IDs address the same position.
func (d DeweyID) Equal(o DeweyID) bool {
	return bytes.Equal(d, o)
}

// Len returns the serialized byte length of the Dewey-ID.
func (d DeweyID) Len() int {
	return len(d)
}

// commonPrefixLen returns the number of leading bytes shared by d and o.
func commonPrefixLen(d, o DeweyID) int {
	n := len(d)
	if len(o) < n {
		n = len(o)
	}
	i := 0
	for i < n && d[i] == o[i] {
		i++
	}
	return i
}

// EncodeDeweyDelta is the exported form of encodeDeweyDelta, available to
// RecordCodec implementations that want to reuse the page layer's
// canonical Dewey-ID delta encoding for their SerializeDeweyID method
// rather than hand-rolling an equivalent one.
func EncodeDeweyDelta(out *bytes.Buffer, current, previous DeweyID) error {
	return encodeDeweyDelta(out, current, previous)
}

// DecodeDeweyDelta is the exported form of decodeDeweyDelta, the
// DeserializeDeweyID counterpart to EncodeDeweyDelta.
func DecodeDeweyDelta(in *bytes.Reader, previous DeweyID) (DeweyID, error) {
	return decodeDeweyDelta(in, previous)
}

// encodeDeweyDelta writes a Dewey-ID to out, delta-encoded against the
// previous emitted Dewey-ID: a byte giving the shared-prefix length with
// previous, followed by a 16-bit suffix length, followed by the suffix
// bytes. previous is nil for the first element in a chain.
func encodeDeweyDelta(out *bytes.Buffer, current, previous DeweyID) error {
	prefixLen := 0
	if previous != nil {
		prefixLen = commonPrefixLen(current, previous)
	}
	if prefixLen > 255 {
		prefixLen = 255
	}
	suffix := current[prefixLen:]
	if len(suffix) > 0xFFFF {
		return fmt.Errorf("dewey-id suffix too long: %d bytes", len(suffix))
	}
	if err := out.WriteByte(byte(prefixLen)); err != nil {
		return err
	}
	var lenBuf [2]byte
	lenBuf[0] = byte(len(suffix) >> 8)
	lenBuf[1] = byte(len(suffix))
	if _, err := out.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := out.Write(suffix)
	return err
}

// decodeDeweyDelta reads a Dewey-ID previously written by encodeDeweyDelta,
// reconstructing it against previous (nil for the first element).
func decodeDeweyDelta(in io.Reader, previous DeweyID) (DeweyID, error) {
	var header [3]byte
	if _, err := io.ReadFull(in, header[:]); err != nil {
		return nil, fmt.Errorf("reading dewey-id header: %w", err)
	}
	prefixLen := int(header[0])
	suffixLen := int(header[1])<<8 | int(header[2])
	if prefixLen > len(previous) {
		return nil, fmt.Errorf("dewey-id prefix length %d exceeds previous length %d", prefixLen, len(previous))
	}
	result := make(DeweyID, prefixLen+suffixLen)
	copy(result, previous[:prefixLen])
	if _, err := io.ReadFull(in, result[prefixLen:]); err != nil {
		return nil, fmt.Errorf("reading dewey-id suffix: %w", err)
	}
	return result, nil
}
