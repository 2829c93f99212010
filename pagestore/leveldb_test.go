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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/sirix-db/sirix-go/page"
)

func openTestDB(t *testing.T) *leveldb.DB {
	db, err := leveldb.OpenFile(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLevelDBStore_StoreLoad(t *testing.T) {
	db := openTestDB(t)
	s := NewLevelDBStore(db, []byte("overflow/"))

	ref := page.NewReference(5)
	require.NoError(t, s.Store(ref, []byte("leveldb payload")))

	got, err := s.Load(ref)
	require.NoError(t, err)
	require.Equal(t, "leveldb payload", string(got))
}

func TestLevelDBStore_Remove(t *testing.T) {
	db := openTestDB(t)
	s := NewLevelDBStore(db, []byte("overflow/"))

	ref := page.NewReference(9)
	require.NoError(t, s.Store(ref, []byte("x")))
	require.NoError(t, s.Remove(ref))

	_, err := s.Load(ref)
	require.Error(t, err)
}

func TestLevelDBStore_TableNamespacing(t *testing.T) {
	db := openTestDB(t)
	a := NewLevelDBStore(db, []byte("a/"))
	b := NewLevelDBStore(db, []byte("b/"))

	ref := page.NewReference(1)
	require.NoError(t, a.Store(ref, []byte("belongs to a")))

	_, err := b.Load(ref)
	require.Error(t, err, "table b should not see table a's entry")
}

func TestLevelDBStore_GetMemoryFootprint(t *testing.T) {
	db := openTestDB(t)
	s := NewLevelDBStore(db, []byte("overflow/"))

	empty := s.GetMemoryFootprint().Total()
	require.NoError(t, s.Store(page.NewReference(1), []byte("some overflow bytes")))
	require.Greater(t, s.GetMemoryFootprint().Total(), empty)
}
