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

// OverflowPage is a flat byte container used when a single serialized
// record exceeds MaxRecordSize. It carries no metadata of its own; its
// identity is the Reference under which the surrounding page-write
// machinery persists it (spec §4.2).
type OverflowPage struct {
	data []byte
}

// NewOverflowPage wraps data as an OverflowPage. data is retained, not
// copied, matching the teacher's zero-copy page-buffer convention
// (backend/pagepool.KVPage.ToBytes/FromBytes write directly into caller
// buffers rather than defensively copying).
func NewOverflowPage(data []byte) *OverflowPage {
	return &OverflowPage{data: data}
}

// Data returns the overflow page's byte payload.
func (o *OverflowPage) Data() []byte {
	return o.data
}

// GetMemoryFootprint reports the page's in-memory footprint, satisfying
// common.MemoryFootprintProvider like every storage structure in the
// teacher repo.
func (o *OverflowPage) GetMemoryFootprint() *common.MemoryFootprint {
	return common.NewMemoryFootprint(unsafe.Sizeof(*o) + uintptr(len(o.data)))
}
