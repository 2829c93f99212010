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

// NodePageSlotCount is N: the fixed number of records a key-value page may
// carry. It is part of the persistence format contract (spec §6) and is
// fixed per build, versioned with the storage format as a whole.
const NodePageSlotCount = 512

// MaxRecordSize is the inline size limit in bytes. A serialized record
// whose length exceeds this is flushed to an OverflowPage instead of
// being stored inline (spec §4.4 step 3).
const MaxRecordSize = 1 << 16 // 64 KiB

// NullID denotes the absence of a persistent key, e.g. an unset
// previous-page reference.
const NullID uint64 = ^uint64(0)

// Reference addresses a persisted page (an overflow page or a previous
// key-value page revision) by its persistent key.
type Reference struct {
	key uint64
}

// NewReference wraps a persistent key as a Reference.
func NewReference(key uint64) Reference {
	return Reference{key: key}
}

// NullReference is the Reference equivalent of NullID.
func NullReference() Reference {
	return Reference{key: NullID}
}

// Key returns the persistent key addressed by this reference.
func (r Reference) Key() uint64 {
	return r.key
}

// IsNull reports whether the reference addresses no page.
func (r Reference) IsNull() bool {
	return r.key == NullID
}
