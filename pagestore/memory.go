// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package pagestore provides concrete page.OverflowStore backends:
// in-memory (mainly for testing), single-file, and LevelDB-backed.
package pagestore

import (
	"fmt"
	"unsafe"

	"github.com/sirix-db/sirix-go/common"
	"github.com/sirix-db/sirix-go/page"
)

// MemoryStore stores overflow pages in-memory only. Grounded on
// backend/pagepool.MemoryPageStore's role: its use is mainly for testing.
type MemoryStore struct {
	table map[uint64][]byte
}

var _ page.OverflowStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory overflow store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: make(map[uint64][]byte)}
}

func (m *MemoryStore) Store(ref page.Reference, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	m.table[ref.Key()] = stored
	return nil
}

func (m *MemoryStore) Load(ref page.Reference) ([]byte, error) {
	data, ok := m.table[ref.Key()]
	if !ok {
		return nil, fmt.Errorf("pagestore: no overflow page for reference %d", ref.Key())
	}
	return data, nil
}

func (m *MemoryStore) Remove(ref page.Reference) error {
	delete(m.table, ref.Key())
	return nil
}

func (m *MemoryStore) GetMemoryFootprint() *common.MemoryFootprint {
	size := unsafe.Sizeof(*m)
	for k, v := range m.table {
		size += unsafe.Sizeof(k) + uintptr(len(v))
	}
	return common.NewMemoryFootprint(size)
}
