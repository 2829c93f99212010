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

//go:generate mockgen -source context.go -destination page_mocks.go -package page

// ResourceHandle exposes the immutable, resource-level collaborators a
// page needs: its Dewey/codec configuration. Grounded on
// backend/pagepool.PageStorage's role as the pool's single collaborator
// for configuration-adjacent concerns.
type ResourceHandle interface {
	// Config returns the resource's immutable configuration.
	Config() *ResourceConfig

	// Codec returns the record codec bound to this resource.
	Codec() RecordCodec
}

// ReadContext is the thin interface a KeyValuePage consumes to resolve
// overflow references and compute per-page offsets (spec §6).
type ReadContext interface {
	// ResourceManager returns the resource handle backing this context.
	ResourceManager() ResourceHandle

	// ReadOverflow resolves an overflow reference to its page, following
	// the general read(reference, self) contract of spec §6 specialized
	// to the one page type this layer creates overflow references for.
	ReadOverflow(ref Reference) (*OverflowPage, error)

	// RecordPageOffset is the deterministic function mapping a node key
	// to its offset within its page, used during serialization to compute
	// bitmap positions (spec §6).
	RecordPageOffset(key uint64) int

	// GetRecord is consumed only by layers above the record-page layer;
	// KeyValuePage itself never calls it. Declared here for interface
	// fidelity with spec §6.
	GetRecord(key uint64, kind Kind, indexNumber int) (Record, bool)
}

// WriteContext is the thin interface a KeyValuePage consumes to
// participate in commit (spec §6). Commit takes the overflow page's bytes
// alongside its reference since, unlike a higher-level page-write
// transaction, a WriteContext implementation has no other way to learn an
// overflow page's content: the key-value page is the sole owner of
// newly-created overflow pages until they are durably persisted.
type WriteContext interface {
	// Commit durably persists data under reference. Called once per
	// overflow reference that still owns an unpersisted page.
	Commit(ref Reference, data []byte) error
}

// IndexedPage is the indexed-reference-array sibling of KeyValuePage in
// the wider page hierarchy (e.g. indirect/UberPages). KeyValuePage
// deliberately does NOT implement this interface: spec §7 declares
// GetReferences, GetReference and SetReference unsupported on a keyed
// page. Modeling them as a disjoint interface means a caller holding a
// *KeyValuePage and attempting these operations gets a compile-time
// error, per the design note in spec §9 ("model as a
// separate variant of the page hierarchy... rather than throwing at
// runtime").
type IndexedPage interface {
	GetReferences() []Reference
	GetReference(index int) Reference
	SetReference(index int, ref Reference)
}

// AsIndexedPage type-asserts p to IndexedPage for the few interop points
// that still hold a value through a common Page-shaped interface and
// need the indexed-page operations. It panics with ErrContractViolation
// if p does not implement IndexedPage, preserving spec §7's documented
// fatal behavior for callers that bypass the compile-time guard above.
func AsIndexedPage(p any) IndexedPage {
	ip, ok := p.(IndexedPage)
	if !ok {
		contractViolation("page does not support indexed reference access: %T", p)
	}
	return ip
}
