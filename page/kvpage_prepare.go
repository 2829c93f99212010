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
	"fmt"
	"sort"
)

type workItem struct {
	key    uint64
	record Record
}

// hasDeweyID reports whether item should be treated as Dewey-bearing for
// the purposes of prepare's sort step. The document root (node key 0) is
// always treated as having no Dewey-ID (spec §4.4 step 2).
func (w workItem) hasDeweyID() bool {
	return w.key != 0 && w.record.DeweyID() != nil
}

// prepare moves every live record in records into exactly one of
// inline-slots or overflow-refs, and populates dewey-index when
// applicable (spec §4.4). It is invoked lazily by Serialize and Commit on
// the first call after a mutation.
func (p *KeyValuePage) prepare() error {
	if p.prepared {
		return nil
	}

	work := make([]workItem, 0, p.records.len())
	p.records.forEach(func(key uint64, rec Record) {
		work = append(work, workItem{key: key, record: rec})
	})

	deweyActive := p.resourceConfig.DeweyActive(p.codec)
	if deweyActive {
		sort.SliceStable(work, func(i, j int) bool {
			a, b := work[i], work[j]
			aHas, bHas := a.hasDeweyID(), b.hasDeweyID()
			if aHas != bHas {
				return aHas
			}
			if aHas && bHas {
				return a.record.DeweyID().Compare(b.record.DeweyID()) < 0
			}
			return false
		})
	}

	for _, item := range work {
		if _, done := p.inlineSlots[item.key]; done {
			continue // idempotent: already prepared in a prior pass
		}
		if _, done := p.overflowRefs[item.key]; done {
			continue
		}

		var buf bytes.Buffer
		if err := p.codec.Serialize(&buf, item.record, p.ctx); err != nil {
			return fmt.Errorf("%w: serializing record %d: %v", ErrCodec, item.key, err)
		}
		body := buf.Bytes()

		if len(body) > MaxRecordSize {
			// Allocate a reference to the overflow page by the record's
			// own node key: node keys are already globally unique within
			// the resource (spec §3), so no separate ID allocator is
			// needed for the 1:1 record -> overflow-page relationship.
			p.overflowRefs[item.key] = overflowEntry{
				ref:      NewReference(item.key),
				pageData: append([]byte(nil), body...),
			}
			continue
		}

		if deweyActive && item.hasDeweyID() {
			p.deweyIndex[string(item.record.DeweyID())] = item.key
		}
		p.inlineSlots[item.key] = append([]byte(nil), body...)
	}

	p.prepared = true
	return nil
}
