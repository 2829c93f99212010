// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// Serializer allows to convert the type to a slice of bytes and back.
type Serializer[T any] interface {
	// ToBytes serialize the type to bytes
	ToBytes(T) []byte
	// CopyBytes serialize the type into a provided slice
	CopyBytes(T, []byte)
	// FromBytes deserialize the type from bytes
	FromBytes([]byte) T
	// Size provides the size of the type when serialized (bytes)
	Size() int // size in bytes when serialized
}

// PageSize of 4kB I/O efficient.
const PageSize = 1 << 12

// Comparator is an interface for comparing two items.
type Comparator[T any] interface {
	Compare(a, b *T) int
}

// HashProvider is implemented by components able to compute a
// cryptographic summary of their own content.
type HashProvider interface {
	GetStateHash() (Hash, error)
}

// Identifier is a type allowing to address an item in a store.
type Identifier interface {
	uint64 | uint32
}

// HashSize is the byte-size of the Hash type.
const HashSize = 32

// Hash is a fixed-size cryptographic digest, used by HashProvider
// implementations that report a content hash independent of the
// record-page layer's own wire format.
type Hash [HashSize]byte

func (h Hash) ToBytes() []byte {
	return h[:]
}

func (a *Hash) Compare(b *Hash) int {
	return compareBytes(a[:], b[:])
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// HashComparator compares two Hash values by byte content.
type HashComparator struct{}

func (c HashComparator) Compare(a, b *Hash) int {
	return a.Compare(b)
}

// Uint64Comparator compares two uint64 values.
type Uint64Comparator struct{}

func (c Uint64Comparator) Compare(a, b *uint64) int {
	if *a > *b {
		return 1
	}
	if *a < *b {
		return -1
	}
	return 0
}
