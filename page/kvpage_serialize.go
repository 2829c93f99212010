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
	"encoding/binary"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Serialize produces the canonical byte layout of spec §4.5. It is
// idempotent across calls provided the page is not mutated in between;
// the first call after a mutation implicitly invokes prepare.
func (p *KeyValuePage) Serialize(out *bytes.Buffer) error {
	if err := p.prepare(); err != nil {
		return err
	}

	if err := writeVarLong(out, p.pageKey); err != nil {
		return fmt.Errorf("writing page key: %w", err)
	}

	// remainingInline is a working copy of inline-slots: the Dewey section
	// below removes its claimed keys from this copy only, so that a
	// repeated Serialize call on an unmutated page still finds every
	// inline-slot entry (spec §4.3's idempotency guarantee) even though
	// each call re-derives the same "removed for this pass" bookkeeping
	// spec §4.5 step 2 describes.
	remainingInline := cloneByteMap(p.inlineSlots)

	deweyActive := p.resourceConfig.DeweyActive(p.codec)
	if deweyActive {
		if err := p.writeDeweySection(out, remainingInline); err != nil {
			return err
		}
	}

	inlineBitmap := newBitset(NodePageSlotCount)
	for key := range remainingInline {
		inlineBitmap.set(p.ctx.RecordPageOffset(key))
	}
	overflowBitmap := newBitset(NodePageSlotCount)
	for key := range p.overflowRefs {
		overflowBitmap.set(p.ctx.RecordPageOffset(key))
	}
	if err := inlineBitmap.writeTo(out); err != nil {
		return fmt.Errorf("writing inline bitmap: %w", err)
	}
	if err := overflowBitmap.writeTo(out); err != nil {
		return fmt.Errorf("writing overflow bitmap: %w", err)
	}

	if err := p.writeInlineEntries(out, remainingInline); err != nil {
		return err
	}
	if err := p.writeOverflowEntries(out); err != nil {
		return err
	}

	if err := writeBool(out, p.hasPreviousPageRef); err != nil {
		return fmt.Errorf("writing previous-page-ref presence: %w", err)
	}
	if p.hasPreviousPageRef {
		if err := binary.Write(out, binary.BigEndian, p.previousPageRef.Key()); err != nil {
			return fmt.Errorf("writing previous-page-ref key: %w", err)
		}
	}

	if err := out.WriteByte(byte(p.kind)); err != nil {
		return fmt.Errorf("writing page kind: %w", err)
	}
	return nil
}

// writeDeweySection emits spec §4.5 step 2: dewey-count, then for each
// dewey-id ordered by increasing serialized byte length, the delta-encoded
// dewey-id followed by its node-key/length/body triple. Each consumed key
// is removed from remainingInline so the subsequent inline pass (step 5)
// does not re-emit it.
func (p *KeyValuePage) writeDeweySection(out *bytes.Buffer, remainingInline map[uint64][]byte) error {
	deweyIDs := make([]DeweyID, 0, len(p.deweyIndex))
	for raw := range p.deweyIndex {
		deweyIDs = append(deweyIDs, DeweyID(raw))
	}
	sort.SliceStable(deweyIDs, func(i, j int) bool {
		if len(deweyIDs[i]) != len(deweyIDs[j]) {
			return len(deweyIDs[i]) < len(deweyIDs[j])
		}
		return deweyIDs[i].Compare(deweyIDs[j]) < 0
	})

	if err := binary.Write(out, binary.BigEndian, uint32(len(deweyIDs))); err != nil {
		return fmt.Errorf("writing dewey count: %w", err)
	}

	var previous DeweyID
	for _, current := range deweyIDs {
		nodeKey := p.deweyIndex[string(current)]
		if err := p.codec.SerializeDeweyID(out, KindElement, current, previous, p.resourceConfig); err != nil {
			return fmt.Errorf("encoding dewey-id for key %d: %w", nodeKey, err)
		}
		previous = current

		if err := writeVarLong(out, nodeKey); err != nil {
			return fmt.Errorf("writing dewey node key: %w", err)
		}
		body, ok := remainingInline[nodeKey]
		if !ok {
			return fmt.Errorf("%w: dewey-index references key %d with no inline slot", ErrFormat, nodeKey)
		}
		if err := binary.Write(out, binary.BigEndian, uint32(len(body))); err != nil {
			return fmt.Errorf("writing dewey body length: %w", err)
		}
		if _, err := out.Write(body); err != nil {
			return fmt.Errorf("writing dewey body: %w", err)
		}
		delete(remainingInline, nodeKey)
	}
	return nil
}

// writeInlineEntries emits spec §4.5 step 5: the remaining inline-slots
// (after the Dewey section has claimed its share) in ascending key order.
func (p *KeyValuePage) writeInlineEntries(out *bytes.Buffer, remainingInline map[uint64][]byte) error {
	keys := maps.Keys(remainingInline)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if err := binary.Write(out, binary.BigEndian, uint32(len(keys))); err != nil {
		return fmt.Errorf("writing inline count: %w", err)
	}
	for _, key := range keys {
		body := remainingInline[key]
		if err := binary.Write(out, binary.BigEndian, uint32(len(body))); err != nil {
			return fmt.Errorf("writing inline length for key %d: %w", key, err)
		}
		if _, err := out.Write(body); err != nil {
			return fmt.Errorf("writing inline body for key %d: %w", key, err)
		}
	}
	return nil
}

// writeOverflowEntries emits spec §4.5 step 6: overflow-refs in ascending
// key order, each as a bare 64-bit persistent reference key.
func (p *KeyValuePage) writeOverflowEntries(out *bytes.Buffer) error {
	keys := maps.Keys(p.overflowRefs)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if err := binary.Write(out, binary.BigEndian, uint32(len(keys))); err != nil {
		return fmt.Errorf("writing overflow count: %w", err)
	}
	for _, key := range keys {
		if err := binary.Write(out, binary.BigEndian, p.overflowRefs[key].ref.Key()); err != nil {
			return fmt.Errorf("writing overflow reference for key %d: %w", key, err)
		}
	}
	return nil
}

func writeBool(out *bytes.Buffer, b bool) error {
	if b {
		return out.WriteByte(1)
	}
	return out.WriteByte(0)
}
