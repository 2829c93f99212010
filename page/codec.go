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

import "bytes"

// RecordCodec is a pluggable serializer/deserializer for a single record.
// A codec advertises Dewey support as a static capability bit (spec §9's
// "Dewey-capability dispatch" design note) rather than via a runtime type
// test; a non-supporting codec is treated identically to a resource that
// does not store Dewey-IDs at all (spec §4.1).
type RecordCodec interface {
	// Serialize writes rec's body to out. Implementations may consult ctx
	// for collaborator lookups (e.g. name-dictionary resolution).
	Serialize(out *bytes.Buffer, rec Record, ctx ReadContext) error

	// Deserialize reads a record body previously written by Serialize.
	// nodeKey and deweyID are supplied by the page frame and MUST be
	// treated as authoritative.
	Deserialize(in []byte, nodeKey uint64, deweyID DeweyID, ctx ReadContext) (Record, error)

	// SerializeDeweyID writes a Dewey-ID chain entry, delta-encoded
	// against previous (nil for the first element in the chain).
	SerializeDeweyID(out *bytes.Buffer, kind NodeKind, current, previous DeweyID, cfg *ResourceConfig) error

	// DeserializeDeweyID reads a Dewey-ID chain entry written by
	// SerializeDeweyID, reconstructed against previous.
	DeserializeDeweyID(in *bytes.Reader, previous DeweyID, cfg *ResourceConfig) (DeweyID, error)

	// SupportsDewey reports whether this codec variant is capable of
	// encoding/decoding Dewey-ID chains at all.
	SupportsDewey() bool
}
