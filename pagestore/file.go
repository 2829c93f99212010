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
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/sirix-db/sirix-go/common"
	"github.com/sirix-db/sirix-go/page"
)

// extent locates one stored overflow page within the data file.
type extent struct {
	offset int64
	length int64
}

// FileStore persists overflow pages, which are variable-length unlike
// Carmen's fixed-size node pages, as an append-only sequence of records
// in a single data file, with an in-memory offset/length index rebuilt
// from (and flushed to) a metadata trailer. Grounded on
// backend/pagepool.FilesPageStorage's "pages, then free-list, then
// trailing length" file layout and its single shared read/write buffer
// discipline, adapted from fixed-size slots to variable-length extents.
type FileStore struct {
	file   *os.File
	index  map[uint64]extent
	tombs  map[uint64]bool
	offset int64
}

var _ page.OverflowStore = (*FileStore)(nil)

// NewFileStore opens (or creates) the overflow data file at filePath,
// reading back its metadata trailer if present.
func NewFileStore(filePath string) (*FileStore, error) {
	index, offset, err := readFileStoreMetadata(filePath)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	return &FileStore{
		file:   file,
		index:  index,
		tombs:  make(map[uint64]bool),
		offset: offset,
	}, nil
}

// Store appends data to the file and records its extent, overwriting any
// prior extent recorded for ref (the previous bytes are left as
// unreachable padding in the file; overflow pages are not updated in
// place, matching the copy-on-write page above them).
func (s *FileStore) Store(ref page.Reference, data []byte) error {
	n, err := s.file.WriteAt(data, s.offset)
	if err != nil {
		return err
	}
	s.index[ref.Key()] = extent{offset: s.offset, length: int64(n)}
	delete(s.tombs, ref.Key())
	s.offset += int64(n)
	return nil
}

// Load reads the bytes previously stored for ref.
func (s *FileStore) Load(ref page.Reference) ([]byte, error) {
	if s.tombs[ref.Key()] {
		return nil, fmt.Errorf("pagestore: overflow page %d removed", ref.Key())
	}
	e, ok := s.index[ref.Key()]
	if !ok {
		return nil, fmt.Errorf("pagestore: no overflow page for reference %d", ref.Key())
	}
	data := make([]byte, e.length)
	if _, err := s.file.ReadAt(data, e.offset); err != nil {
		return nil, err
	}
	return data, nil
}

// Remove tombstones ref; its extent in the data file is not reclaimed.
func (s *FileStore) Remove(ref page.Reference) error {
	delete(s.index, ref.Key())
	s.tombs[ref.Key()] = true
	return nil
}

// Flush writes the metadata trailer and syncs the data file, matching
// FilesPageStorage.Flush.
func (s *FileStore) Flush() error {
	if err := s.writeMetadata(); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close flushes and closes the underlying file.
func (s *FileStore) Close() error {
	flushErr := s.Flush()
	closeErr := s.file.Close()
	if flushErr != nil || closeErr != nil {
		return fmt.Errorf("close error: flush: %v, file: %v", flushErr, closeErr)
	}
	return nil
}

func (s *FileStore) GetMemoryFootprint() *common.MemoryFootprint {
	size := unsafe.Sizeof(*s)
	var e extent
	for k := range s.index {
		size += unsafe.Sizeof(k) + unsafe.Sizeof(e)
	}
	for k := range s.tombs {
		size += unsafe.Sizeof(k) + 1
	}
	return common.NewMemoryFootprint(size)
}

// Metadata trailer layout: a 24-byte sentinel entry whose key equals
// page.NullID, marking the end of the data region, followed by one
// 24-byte entry per live extent (8-byte key + 8-byte offset + 8-byte
// length). readFileStoreMetadata scans these entries backward from the
// end of the file until it reaches the sentinel.
func (s *FileStore) writeMetadata() error {
	sentinel := make([]byte, 24)
	binary.BigEndian.PutUint64(sentinel[0:8], page.NullID)
	buf := sentinel
	for key, e := range s.index {
		entry := make([]byte, 24)
		binary.BigEndian.PutUint64(entry[0:8], key)
		binary.BigEndian.PutUint64(entry[8:16], uint64(e.offset))
		binary.BigEndian.PutUint64(entry[16:24], uint64(e.length))
		buf = append(buf, entry...)
	}

	_, err := s.file.WriteAt(buf, s.offset)
	return err
}

func readFileStoreMetadata(filePath string) (map[uint64]extent, int64, error) {
	index := make(map[uint64]extent)

	file, err := os.OpenFile(filePath, os.O_RDONLY, 0600)
	if err != nil {
		if os.IsNotExist(err) {
			return index, 0, nil
		}
		return nil, 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, 0, err
	}
	if info.Size() == 0 {
		return index, 0, nil
	}

	// Scan the trailer from the end: repeatedly read 24-byte entries
	// walking backward until the sentinel key is found; the sentinel's
	// position is the end of the data region.
	var entries [][3]uint64
	pos := info.Size()
	buf := make([]byte, 24)
	dataEnd := info.Size()
	for {
		pos -= 24
		if pos < 0 {
			return nil, 0, fmt.Errorf("pagestore: truncated overflow store metadata in %s", filePath)
		}
		if _, err := file.ReadAt(buf, pos); err != nil && err != io.EOF {
			return nil, 0, err
		}
		key := binary.BigEndian.Uint64(buf[0:8])
		if key == page.NullID {
			dataEnd = pos
			break
		}
		offset := binary.BigEndian.Uint64(buf[8:16])
		length := binary.BigEndian.Uint64(buf[16:24])
		entries = append(entries, [3]uint64{key, offset, length})
	}

	for _, e := range entries {
		index[e[0]] = extent{offset: int64(e[1]), length: int64(e[2])}
	}
	return index, dataEnd, nil
}
