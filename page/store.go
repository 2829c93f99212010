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

import "github.com/sirix-db/sirix-go/common"

// OverflowStore is the durable backing store a WriteContext/ReadContext
// pair delegates overflow-page persistence to. It is the "surrounding
// page-write machinery" spec §4.2 leaves out of scope for the overflow
// page type itself, factored out as its own pluggable collaborator so
// different resources can choose an in-memory, single-file, or
// key-value-database-backed implementation (package pagestore).
type OverflowStore interface {
	// Store durably persists data under ref, allocated by the caller.
	Store(ref Reference, data []byte) error

	// Load resolves ref to the bytes previously passed to Store.
	Load(ref Reference) ([]byte, error)

	// Remove deletes the entry for ref, if any.
	Remove(ref Reference) error

	// GetMemoryFootprint reports the store's approximate in-memory
	// footprint, satisfying common.MemoryFootprintProvider like every
	// backend in the teacher repo.
	GetMemoryFootprint() *common.MemoryFootprint
}
