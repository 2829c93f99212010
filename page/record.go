// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package page implements the record-page layer of the Sirix storage
// engine: the fixed-slot, copy-on-write page that groups node records on
// disk, together with its overflow escape hatch and Dewey-ID indexing.
package page

// NodeKind tags the closed set of record variants a codec may encode.
// Records are polymorphic over a fixed capability set rather than an open
// inheritance hierarchy; NodeKind is the discriminator for that variant.
type NodeKind int8

const (
	KindUnknown NodeKind = iota
	KindObject
	KindArray
	KindElement
	KindText
	KindAttribute
	KindNamespace
	KindComment
	KindProcessingInstruction
)

func (k NodeKind) String() string {
	switch k {
	case KindObject:
		return "OBJECT"
	case KindArray:
		return "ARRAY"
	case KindElement:
		return "ELEMENT"
	case KindText:
		return "TEXT"
	case KindAttribute:
		return "ATTRIBUTE"
	case KindNamespace:
		return "NAMESPACE"
	case KindComment:
		return "COMMENT"
	case KindProcessingInstruction:
		return "PROCESSING_INSTRUCTION"
	default:
		return "UNKNOWN"
	}
}

// Record is an opaque unit of user data stored on a KeyValuePage. The
// page treats a record as a capability set: a stable key, an optional
// Dewey-ID, and whatever a RecordCodec needs to serialize it. The record
// itself is never interpreted by the page.
type Record interface {
	// NodeKey returns the record's globally unique, non-negative key.
	NodeKey() uint64

	// DeweyID returns the record's hierarchical position, or nil if the
	// record does not carry one.
	DeweyID() DeweyID

	// Kind returns the record's variant tag. The page itself does not
	// read it: Dewey-ID chain entries are always written with the
	// KindElement tag, whatever the record's own kind.
	Kind() NodeKind
}
