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

import "fmt"

// GetValue returns the record stored at key, faulting it in from overflow
// storage if necessary (spec §4.3). Overflow read failures are swallowed
// and reported as absence (spec §4.7, §7) -- the caller cannot distinguish
// "never existed" from "overflow page lost".
func (p *KeyValuePage) GetValue(key uint64) (Record, bool) {
	if rec, ok := p.records.get(key); ok {
		return rec, true
	}

	entry, ok := p.overflowRefs[key]
	if !ok {
		return nil, false
	}

	data, err := p.resolveOverflow(entry)
	if err != nil {
		logf("masking overflow resolution error for key %d on page %d: %v", key, p.pageKey, err)
		return nil, false
	}

	// Overflow records are never Dewey-indexed (spec §4.4 step 3 only
	// populates dewey-index on the inline-storage branch), so there is no
	// Dewey-ID to recover here.
	rec, err := p.codec.Deserialize(data, key, nil, p.ctx)
	if err != nil {
		logf("masking codec error while faulting in key %d on page %d: %v", key, p.pageKey, err)
		return nil, false
	}

	// Memoize: NOT safe with concurrent readers (spec §5).
	p.records.set(key, rec)
	return rec, true
}

func (p *KeyValuePage) resolveOverflow(entry overflowEntry) ([]byte, error) {
	if entry.pageData != nil {
		return entry.pageData, nil
	}
	overflow, err := p.ctx.ReadOverflow(entry.ref)
	if err != nil {
		return nil, fmt.Errorf("reading overflow page %d: %w", entry.ref.Key(), err)
	}
	return overflow.Data(), nil
}

// SetEntry writes record at key, overwriting any prior entry, and clears
// the commit-prepared flag so a subsequent Commit/Serialize re-derives
// inline-slots and overflow-refs (spec §4.3).
func (p *KeyValuePage) SetEntry(key uint64, rec Record) {
	p.offsetOf(key) // validates key belongs to this page; panics otherwise
	p.records.set(key, rec)
	delete(p.inlineSlots, key)
	delete(p.overflowRefs, key)
	p.prepared = false
}

// Size returns |records| + |overflow-refs|, which may exceed |records|
// until an overflow record has been faulted in by GetValue (spec §4.3).
func (p *KeyValuePage) Size() int {
	return p.records.len() + len(p.overflowRefs)
}

// Entries iterates the live in-memory record map in insertion order.
// Overflow-only records not yet faulted in are not included (spec §4.3).
func (p *KeyValuePage) Entries(callback func(key uint64, rec Record)) {
	p.records.forEach(callback)
}

// Clone produces a shallow copy: every map is copied into a new map that
// holds the same Record values and byte slices, so the clone can be
// mutated without changing the origin's maps. The clone adopts ctx as its
// read context so it sees a possibly newer view. Used for copy-on-write:
// once taken, the origin must be treated as immutable until the clone is
// committed or discarded (spec §3, §4.3, §5).
func (p *KeyValuePage) Clone(ctx ReadContext) *KeyValuePage {
	clone := &KeyValuePage{
		pageKey:            p.pageKey,
		kind:               p.kind,
		records:            p.records.clone(),
		inlineSlots:        cloneByteMap(p.inlineSlots),
		overflowRefs:       cloneOverflowMap(p.overflowRefs),
		deweyIndex:         cloneDeweyIndex(p.deweyIndex),
		hasPreviousPageRef: p.hasPreviousPageRef,
		previousPageRef:    p.previousPageRef,
		resourceConfig:     p.resourceConfig,
		codec:              p.codec,
		ctx:                ctx,
		prepared:           p.prepared,
	}
	return clone
}

func cloneByteMap(m map[uint64][]byte) map[uint64][]byte {
	c := make(map[uint64][]byte, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneOverflowMap(m map[uint64]overflowEntry) map[uint64]overflowEntry {
	c := make(map[uint64]overflowEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneDeweyIndex(m map[string]uint64) map[string]uint64 {
	c := make(map[string]uint64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Commit invokes prepare if needed, then asks ctx to durably persist
// every overflow page that is not yet persisted. Commit of a key-value
// page commits each of its referenced overflow pages before the
// key-value page itself is considered durable (spec §5's ordering
// guarantee) -- this method IS that ordering point: callers must persist
// the key-value page's own serialized bytes only after Commit returns.
func (p *KeyValuePage) Commit(ctx WriteContext) error {
	p.prepare()

	for key, entry := range p.overflowRefs {
		if entry.persisted {
			continue
		}
		if err := ctx.Commit(entry.ref, entry.pageData); err != nil {
			return fmt.Errorf("committing overflow page for key %d: %w", key, err)
		}
		logCommit(p.pageKey, key, entry.pageData)
		entry.persisted = true
		p.overflowRefs[key] = entry
	}
	return nil
}
