// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pagestore

import (
	"encoding/binary"
	"unsafe"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/sirix-db/sirix-go/common"
	"github.com/sirix-db/sirix-go/page"
)

// LevelDBStore persists overflow pages as table-prefixed entries in a
// shared LevelDB database, grounded on
// backend/store/kvdb.KVStore.appendKey's table-prefixed key scheme (a
// byte-slice table namespace prepended to a big-endian numeric key),
// simplified from Carmen's fixed-page-within-table addressing to one
// key per overflow reference since overflow pages have no fixed size.
type LevelDBStore struct {
	db    *leveldb.DB
	table []byte
}

var _ page.OverflowStore = (*LevelDBStore)(nil)

// NewLevelDBStore wraps db, namespacing every key under table so several
// overflow stores (or other LevelDB-backed components) can share one
// database handle.
func NewLevelDBStore(db *leveldb.DB, table []byte) *LevelDBStore {
	return &LevelDBStore{db: db, table: table}
}

func (s *LevelDBStore) appendKey(key uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, key)
	return append(append([]byte{}, s.table...), buf...)
}

func (s *LevelDBStore) Store(ref page.Reference, data []byte) error {
	return s.db.Put(s.appendKey(ref.Key()), data, nil)
}

func (s *LevelDBStore) Load(ref page.Reference) ([]byte, error) {
	data, err := s.db.Get(s.appendKey(ref.Key()), nil)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *LevelDBStore) Remove(ref page.Reference) error {
	return s.db.Delete(s.appendKey(ref.Key()), nil)
}

// GetMemoryFootprint approximates the resident size of this store's
// portion of the table by iterating its key range, matching
// KVStore.GetPage's util.Range-bounded iteration idiom.
func (s *LevelDBStore) GetMemoryFootprint() *common.MemoryFootprint {
	size := unsafe.Sizeof(*s)
	r := util.BytesPrefix(s.table)
	iter := s.db.NewIterator(r, nil)
	defer iter.Release()
	for iter.Next() {
		size += uintptr(len(iter.Key())) + uintptr(len(iter.Value()))
	}
	return common.NewMemoryFootprint(size)
}
