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
	"unsafe"

	"github.com/sirix-db/sirix-go/common"
)

// orderedRecordMap is an insertion-order-preserving key -> Record map.
// Grounded on backend/pagepool.KVPage's own list-plus-index bookkeeping,
// adapted from a fixed sorted slot array (Carmen's page has a bounded,
// sorted slot count) to an open insertion-ordered map, since spec §4.3
// requires Entries() to iterate in insertion order rather than key order.
type orderedRecordMap struct {
	values map[uint64]Record
	order  []uint64
}

func newOrderedRecordMap() *orderedRecordMap {
	return &orderedRecordMap{values: make(map[uint64]Record)}
}

func (m *orderedRecordMap) get(key uint64) (Record, bool) {
	r, ok := m.values[key]
	return r, ok
}

func (m *orderedRecordMap) set(key uint64, rec Record) {
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = rec
}

func (m *orderedRecordMap) len() int {
	return len(m.values)
}

func (m *orderedRecordMap) forEach(callback func(uint64, Record)) {
	for _, key := range m.order {
		callback(key, m.values[key])
	}
}

// clone returns a shallow copy sharing the underlying Record values but
// with independent order/membership bookkeeping, so a clone can mutate
// its own map (add/overwrite keys) without perturbing the origin and
// vice versa -- matching spec §3's copy-on-write lifecycle (the clone
// "may then be mutated independently by the writer").
func (m *orderedRecordMap) clone() *orderedRecordMap {
	c := &orderedRecordMap{
		values: make(map[uint64]Record, len(m.values)),
		order:  append([]uint64(nil), m.order...),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// overflowEntry tracks one overflow-refs entry. pageData and persisted
// distinguish a reference whose page was created in this in-memory
// session and still needs Commit from one that was loaded from disk (or
// already committed) and only needs to be read through ReadContext.
type overflowEntry struct {
	ref       Reference
	pageData  []byte
	persisted bool
}

// KeyValuePage is the central record-page-layer component: an ordered
// collection of up to NodePageSlotCount records sharing a common page
// key, plus references to overflow pages for oversized entries, plus
// optional Dewey-ID metadata (spec §3, §4.3).
//
// KeyValuePage is not internally thread-safe (spec §5); concurrency is
// the caller's responsibility.
type KeyValuePage struct {
	pageKey uint64
	kind    Kind

	records      *orderedRecordMap
	inlineSlots  map[uint64][]byte
	overflowRefs map[uint64]overflowEntry
	deweyIndex   map[string]uint64 // string(DeweyID) -> node key

	hasPreviousPageRef bool
	previousPageRef    Reference

	resourceConfig *ResourceConfig
	codec          RecordCodec

	// ctx is the page-read context this page currently sees. Held
	// internally (rather than threaded through every call) because
	// Clone(ctx) re-points it to a possibly newer view while leaving the
	// origin's view untouched (spec §4.3's Clone contract).
	ctx ReadContext

	prepared bool
}

// NewKeyValuePage creates a fresh key-value page for pageKey, allocated
// by a node transaction (spec §3's "fresh" lifecycle case).
func NewKeyValuePage(pageKey uint64, kind Kind, cfg *ResourceConfig, codec RecordCodec, ctx ReadContext) *KeyValuePage {
	return &KeyValuePage{
		pageKey:         pageKey,
		kind:            kind,
		records:         newOrderedRecordMap(),
		inlineSlots:     make(map[uint64][]byte),
		overflowRefs:    make(map[uint64]overflowEntry),
		deweyIndex:      make(map[string]uint64),
		previousPageRef: NullReference(),
		resourceConfig:  cfg,
		codec:           codec,
		ctx:             ctx,
	}
}

// PageKey returns the page's identity.
func (p *KeyValuePage) PageKey() uint64 {
	return p.pageKey
}

// Kind returns the page's subtree discriminator.
func (p *KeyValuePage) Kind() Kind {
	return p.kind
}

// PreviousPageRef returns the reference to the immediately preceding
// version of this page in the revision chain, or a null reference.
func (p *KeyValuePage) PreviousPageRef() Reference {
	if !p.hasPreviousPageRef {
		return NullReference()
	}
	return p.previousPageRef
}

// SetPreviousPageRef records the preceding revision of this page, used
// when a writer clones a page forward into a new revision.
func (p *KeyValuePage) SetPreviousPageRef(ref Reference) {
	p.hasPreviousPageRef = !ref.IsNull()
	p.previousPageRef = ref
}

// offsetOf validates and extracts a record key's offset within this page,
// enforcing spec §8 invariant 1 (k/N == page-key, 0 <= k mod N < N).
func (p *KeyValuePage) offsetOf(key uint64) int {
	if key/NodePageSlotCount != p.pageKey {
		contractViolation("node key %d does not belong to page %d", key, p.pageKey)
	}
	return int(key % NodePageSlotCount)
}

// GetMemoryFootprint reports the page's approximate in-memory footprint,
// satisfying common.MemoryFootprintProvider like every page type in the
// teacher repo.
func (p *KeyValuePage) GetMemoryFootprint() *common.MemoryFootprint {
	size := unsafe.Sizeof(*p)
	var inline, overflow uintptr
	for _, b := range p.inlineSlots {
		inline += uintptr(len(b))
	}
	for _, e := range p.overflowRefs {
		overflow += uintptr(len(e.pageData))
	}
	mf := common.NewMemoryFootprint(size)
	mf.AddChild("inlineSlots", common.NewMemoryFootprint(inline))
	mf.AddChild("overflowRefs", common.NewMemoryFootprint(overflow))
	return mf
}
