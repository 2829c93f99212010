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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirix-db/sirix-go/page"
)

func TestFileStore_StoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overflow.dat")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	ref := page.NewReference(42)
	require.NoError(t, s.Store(ref, []byte("overflow payload")))

	got, err := s.Load(ref)
	require.NoError(t, err)
	require.Equal(t, "overflow payload", string(got))
}

func TestFileStore_RemoveTombstones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overflow.dat")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	ref := page.NewReference(1)
	require.NoError(t, s.Store(ref, []byte("gone soon")))
	require.NoError(t, s.Remove(ref))

	_, err = s.Load(ref)
	require.Error(t, err)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overflow.dat")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	refA := page.NewReference(10)
	refB := page.NewReference(20)
	require.NoError(t, s.Store(refA, []byte("first")))
	require.NoError(t, s.Store(refB, []byte("second, a bit longer")))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	gotA, err := reopened.Load(refA)
	require.NoError(t, err)
	require.Equal(t, "first", string(gotA))

	gotB, err := reopened.Load(refB)
	require.NoError(t, err)
	require.Equal(t, "second, a bit longer", string(gotB))
}

func TestFileStore_OpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(page.NewReference(1))
	require.Error(t, err)
}
