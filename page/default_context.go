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

// DefaultContext is the in-process ReadContext/WriteContext/ResourceHandle
// implementation a resource wires together from an OverflowStore and the
// resource's configuration and codec. It fronts the store with an
// LruCache, matching the teacher's general pattern of layering
// common.LruCache in front of an expensive backing store rather than
// hitting it on every access (common/lru_cache.go's own doc comment:
// "implements a memory overlay for the key-value pair").
type DefaultContext struct {
	config *ResourceConfig
	codec  RecordCodec
	store  OverflowStore

	overflowCache *common.LruCache[uint64, []byte]

	// lookup resolves GetRecord calls, which originate one layer above
	// the key-value page (spec §6); nil means "no such collaborator
	// wired", and GetRecord reports absence.
	lookup func(key uint64, kind Kind, indexNumber int) (Record, bool)
}

var (
	_ ReadContext    = (*DefaultContext)(nil)
	_ WriteContext   = (*DefaultContext)(nil)
	_ ResourceHandle = (*DefaultContext)(nil)
)

// NewDefaultContext wires cfg, codec and store together behind an overflow
// page cache of cacheCapacity entries.
func NewDefaultContext(cfg *ResourceConfig, codec RecordCodec, store OverflowStore, cacheCapacity int) *DefaultContext {
	return &DefaultContext{
		config:        cfg,
		codec:         codec,
		store:         store,
		overflowCache: common.NewLruCache[uint64, []byte](cacheCapacity),
	}
}

// SetLookup installs the collaborator GetRecord delegates to. Resources
// that never call GetRecord from within this layer's scope may leave it
// unset.
func (c *DefaultContext) SetLookup(lookup func(key uint64, kind Kind, indexNumber int) (Record, bool)) {
	c.lookup = lookup
}

func (c *DefaultContext) Config() *ResourceConfig { return c.config }

func (c *DefaultContext) Codec() RecordCodec { return c.codec }

func (c *DefaultContext) ResourceManager() ResourceHandle { return c }

// ReadOverflow resolves ref through the cache, falling back to the
// backing store and populating the cache on a miss.
func (c *DefaultContext) ReadOverflow(ref Reference) (*OverflowPage, error) {
	if data, ok := c.overflowCache.Get(ref.Key()); ok {
		return NewOverflowPage(data), nil
	}
	data, err := c.store.Load(ref)
	if err != nil {
		return nil, err
	}
	c.overflowCache.Set(ref.Key(), data)
	return NewOverflowPage(data), nil
}

// RecordPageOffset computes the deterministic offset function key mod N
// (spec §6); N is fixed per build as NodePageSlotCount.
func (c *DefaultContext) RecordPageOffset(key uint64) int {
	return int(key % NodePageSlotCount)
}

// GetRecord delegates to the installed lookup collaborator, or reports
// absence if none was wired.
func (c *DefaultContext) GetRecord(key uint64, kind Kind, indexNumber int) (Record, bool) {
	if c.lookup == nil {
		return nil, false
	}
	return c.lookup(key, kind, indexNumber)
}

// Commit persists data under ref through the backing store and refreshes
// the overflow cache, so a page committed and immediately re-read through
// the same context does not pay for a redundant store round trip.
func (c *DefaultContext) Commit(ref Reference, data []byte) error {
	if err := c.store.Store(ref, data); err != nil {
		return err
	}
	c.overflowCache.Set(ref.Key(), data)
	return nil
}

func (c *DefaultContext) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*c))
	mf.AddChild("store", c.store.GetMemoryFootprint())
	mf.AddChild("overflowCache", c.overflowCache.GetDynamicMemoryFootprint(func(data []byte) uintptr {
		return uintptr(len(data))
	}))
	return mf
}
