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

import "testing"

func TestHash_Compare(t *testing.T) {
	a := Hash{1, 2, 3}
	b := Hash{1, 2, 4}
	if got := a.Compare(&b); got != -1 {
		t.Errorf("a.Compare(b) = %d, want -1", got)
	}
	if got := b.Compare(&a); got != 1 {
		t.Errorf("b.Compare(a) = %d, want 1", got)
	}
	if got := a.Compare(&a); got != 0 {
		t.Errorf("a.Compare(a) = %d, want 0", got)
	}
}

func TestHash_ToBytes(t *testing.T) {
	h := Hash{0xAB, 0xCD}
	got := h.ToBytes()
	if len(got) != HashSize {
		t.Fatalf("len(ToBytes()) = %d, want %d", len(got), HashSize)
	}
	if got[0] != 0xAB || got[1] != 0xCD {
		t.Errorf("ToBytes() = %x, want leading AB CD", got)
	}
}

func TestHashComparator(t *testing.T) {
	var c HashComparator
	a := Hash{9}
	b := Hash{10}
	if got := c.Compare(&a, &b); got != -1 {
		t.Errorf("Compare(a, b) = %d, want -1", got)
	}
}

func TestUint64Comparator(t *testing.T) {
	var c Uint64Comparator
	a, b := uint64(5), uint64(7)
	if got := c.Compare(&a, &b); got != -1 {
		t.Errorf("Compare(5, 7) = %d, want -1", got)
	}
	if got := c.Compare(&b, &a); got != 1 {
		t.Errorf("Compare(7, 5) = %d, want 1", got)
	}
	if got := c.Compare(&a, &a); got != 0 {
		t.Errorf("Compare(5, 5) = %d, want 0", got)
	}
}

func TestCompareBytes(t *testing.T) {
	cases := []struct {
		a, b []byte
		want int
	}{
		{[]byte{1, 2}, []byte{1, 2}, 0},
		{[]byte{1, 2}, []byte{1, 3}, -1},
		{[]byte{1, 3}, []byte{1, 2}, 1},
		{[]byte{1}, []byte{1, 0}, -1},
		{[]byte{1, 0}, []byte{1}, 1},
	}
	for _, c := range cases {
		if got := compareBytes(c.a, c.b); got != c.want {
			t.Errorf("compareBytes(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

// stringSerializer is a trivial Serializer[string] fixture, exercising the
// interface shape rather than any concrete production implementation
// (the record-page layer serializes through RecordCodec, not Serializer).
type stringSerializer struct{}

func (stringSerializer) ToBytes(s string) []byte { return []byte(s) }
func (stringSerializer) CopyBytes(s string, dst []byte) { copy(dst, s) }
func (stringSerializer) FromBytes(b []byte) string { return string(b) }
func (stringSerializer) Size() int { return 0 }

func TestSerializer_RoundTrip(t *testing.T) {
	var s Serializer[string] = stringSerializer{}
	encoded := s.ToBytes("hello")
	if got := s.FromBytes(encoded); got != "hello" {
		t.Errorf("FromBytes(ToBytes(%q)) = %q", "hello", got)
	}
}
