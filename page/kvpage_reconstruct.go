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
	"io"
)

// ReconstructKeyValuePage rebuilds a KeyValuePage from bytes previously
// produced by (*KeyValuePage).Serialize, following spec §4.6 exactly. I/O
// and format errors abort reconstruction and are wrapped in ErrFormat
// (spec §4.7); codec deserialization failures are wrapped in ErrCodec.
// Every abort is logged, matching the masked-overflow-error logging this
// package already does in kvpage_ops.go (spec §1.1, §4.6, §7).
func ReconstructKeyValuePage(data []byte, ctx ReadContext) (*KeyValuePage, error) {
	in := bytes.NewReader(data)

	pageKey, err := readVarLong(in)
	if err != nil {
		logf("aborting page reconstruction: reading page key: %v", err)
		return nil, fmt.Errorf("%w: reading page key: %v", ErrFormat, err)
	}

	handle := ctx.ResourceManager()
	cfg := handle.Config()
	codec := handle.Codec()

	var kind Kind // provisional; overwritten by step 7 below
	p := NewKeyValuePage(pageKey, kind, cfg, codec, ctx)
	p.prepared = false // inline-slots stay empty here; prepare re-derives them from the record map

	deweyActive := cfg.DeweyActive(codec)
	if deweyActive {
		if err := p.readDeweySection(in, cfg); err != nil {
			return nil, err
		}
	}

	inlineBitmap, err := readBitset(in, NodePageSlotCount)
	if err != nil {
		logf("aborting reconstruction of page %d: reading inline bitmap: %v", pageKey, err)
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	overflowBitmap, err := readBitset(in, NodePageSlotCount)
	if err != nil {
		logf("aborting reconstruction of page %d: reading overflow bitmap: %v", pageKey, err)
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if err := p.readInlineEntries(in, inlineBitmap); err != nil {
		return nil, err
	}
	if err := p.readOverflowEntries(in, overflowBitmap); err != nil {
		return nil, err
	}

	hasPrevious, err := readBool(in)
	if err != nil {
		logf("aborting reconstruction of page %d: reading previous-page-ref presence: %v", pageKey, err)
		return nil, fmt.Errorf("%w: reading previous-page-ref presence: %v", ErrFormat, err)
	}
	if hasPrevious {
		var key uint64
		if err := binary.Read(in, binary.BigEndian, &key); err != nil {
			logf("aborting reconstruction of page %d: reading previous-page-ref key: %v", pageKey, err)
			return nil, fmt.Errorf("%w: reading previous-page-ref key: %v", ErrFormat, err)
		}
		p.SetPreviousPageRef(NewReference(key))
	}

	kindByte, err := in.ReadByte()
	if err != nil {
		logf("aborting reconstruction of page %d: reading page kind: %v", pageKey, err)
		return nil, fmt.Errorf("%w: reading page kind: %v", ErrFormat, err)
	}
	p.kind = Kind(kindByte)

	return p, nil
}

// readDeweySection implements spec §4.6 step 2: decode the dewey-count,
// then for each entry decode the delta-encoded dewey-id, the node-key,
// the length and the body, deserialize the record via the codec, and
// insert it into the live record map.
func (p *KeyValuePage) readDeweySection(in *bytes.Reader, cfg *ResourceConfig) error {
	var count uint32
	if err := binary.Read(in, binary.BigEndian, &count); err != nil {
		logf("aborting reconstruction of page %d: reading dewey count: %v", p.pageKey, err)
		return fmt.Errorf("%w: reading dewey count: %v", ErrFormat, err)
	}

	var previous DeweyID
	for i := uint32(0); i < count; i++ {
		current, err := p.codec.DeserializeDeweyID(in, previous, cfg)
		if err != nil {
			logf("aborting reconstruction of page %d: decoding dewey-id %d: %v", p.pageKey, i, err)
			return fmt.Errorf("%w: decoding dewey-id %d: %v", ErrFormat, i, err)
		}
		previous = current

		nodeKey, err := readVarLong(in)
		if err != nil {
			logf("aborting reconstruction of page %d: reading dewey node key: %v", p.pageKey, err)
			return fmt.Errorf("%w: reading dewey node key: %v", ErrFormat, err)
		}
		var length uint32
		if err := binary.Read(in, binary.BigEndian, &length); err != nil {
			logf("aborting reconstruction of page %d: reading dewey body length for key %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: reading dewey body length for key %d: %v", ErrFormat, nodeKey, err)
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(in, body); err != nil {
			logf("aborting reconstruction of page %d: reading dewey body for key %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: reading dewey body for key %d: %v", ErrFormat, nodeKey, err)
		}

		rec, err := p.codec.Deserialize(body, nodeKey, current, p.ctx)
		if err != nil {
			logf("aborting reconstruction of page %d: deserializing dewey record %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: deserializing dewey record %d: %v", ErrCodec, nodeKey, err)
		}
		p.records.set(nodeKey, rec)
	}
	return nil
}

// readInlineEntries implements spec §4.6 step 4: read the inline count,
// then for each entry advance the inline bitmap's cursor to its offset,
// compute the node key, read length and body, deserialize, and insert.
func (p *KeyValuePage) readInlineEntries(in *bytes.Reader, inlineBitmap bitset) error {
	var count uint32
	if err := binary.Read(in, binary.BigEndian, &count); err != nil {
		logf("aborting reconstruction of page %d: reading inline count: %v", p.pageKey, err)
		return fmt.Errorf("%w: reading inline count: %v", ErrFormat, err)
	}

	cursor := inlineBitmap.cursor()
	for i := uint32(0); i < count; i++ {
		offset, ok := cursor.next()
		if !ok {
			logf("aborting reconstruction of page %d: inline count %d exceeds bitmap popcount", p.pageKey, count)
			return fmt.Errorf("%w: inline count %d exceeds bitmap popcount", ErrFormat, count)
		}
		nodeKey := p.pageKey*NodePageSlotCount + uint64(offset)

		var length uint32
		if err := binary.Read(in, binary.BigEndian, &length); err != nil {
			logf("aborting reconstruction of page %d: reading inline length for key %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: reading inline length for key %d: %v", ErrFormat, nodeKey, err)
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(in, body); err != nil {
			logf("aborting reconstruction of page %d: reading inline body for key %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: reading inline body for key %d: %v", ErrFormat, nodeKey, err)
		}

		rec, err := p.codec.Deserialize(body, nodeKey, nil, p.ctx)
		if err != nil {
			logf("aborting reconstruction of page %d: deserializing inline record %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: deserializing inline record %d: %v", ErrCodec, nodeKey, err)
		}
		p.records.set(nodeKey, rec)
	}
	return nil
}

// readOverflowEntries implements spec §4.6 step 5: read the overflow
// count, then for each entry advance the overflow bitmap's cursor to its
// offset, compute the node key, read the 64-bit reference key, and record
// it in overflow-refs as an unresolved (not-yet-faulted-in) reference.
func (p *KeyValuePage) readOverflowEntries(in *bytes.Reader, overflowBitmap bitset) error {
	var count uint32
	if err := binary.Read(in, binary.BigEndian, &count); err != nil {
		logf("aborting reconstruction of page %d: reading overflow count: %v", p.pageKey, err)
		return fmt.Errorf("%w: reading overflow count: %v", ErrFormat, err)
	}

	cursor := overflowBitmap.cursor()
	for i := uint32(0); i < count; i++ {
		offset, ok := cursor.next()
		if !ok {
			logf("aborting reconstruction of page %d: overflow count %d exceeds bitmap popcount", p.pageKey, count)
			return fmt.Errorf("%w: overflow count %d exceeds bitmap popcount", ErrFormat, count)
		}
		nodeKey := p.pageKey*NodePageSlotCount + uint64(offset)

		var refKey uint64
		if err := binary.Read(in, binary.BigEndian, &refKey); err != nil {
			logf("aborting reconstruction of page %d: reading overflow reference for key %d: %v", p.pageKey, nodeKey, err)
			return fmt.Errorf("%w: reading overflow reference for key %d: %v", ErrFormat, nodeKey, err)
		}
		p.overflowRefs[nodeKey] = overflowEntry{ref: NewReference(refKey), persisted: true}
	}
	return nil
}

func readBool(in io.ByteReader) (bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}
