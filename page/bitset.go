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
	"io"
	"math/bits"
)

// bitset is the canonical fixed-length bit-set codec used for the inline
// and overflow bitmaps (spec §4.5 steps 3-4). Bit i lives at byte i/8, bit
// i%8, most-significant-bit first within the byte.
type bitset struct {
	n    int
	data []byte
}

func newBitset(n int) bitset {
	return bitset{n: n, data: make([]byte, (n+7)/8)}
}

func (b bitset) set(i int) {
	b.data[i/8] |= 1 << (7 - uint(i%8))
}

func (b bitset) test(i int) bool {
	return b.data[i/8]&(1<<(7-uint(i%8))) != 0
}

func (b bitset) popcount() int {
	count := 0
	for _, by := range b.data {
		count += bits.OnesCount8(by)
	}
	return count
}

// writeTo writes the raw bitmap bytes to out.
func (b bitset) writeTo(out *bytes.Buffer) error {
	_, err := out.Write(b.data)
	return err
}

// readBitset reads a fixed-length bitmap of n bits from in.
func readBitset(in io.Reader, n int) (bitset, error) {
	b := newBitset(n)
	if _, err := io.ReadFull(in, b.data); err != nil {
		return bitset{}, fmt.Errorf("reading bitset: %w", err)
	}
	return b, nil
}

// bitsetCursor walks the set bits of a bitset in ascending order, used by
// reconstruction to recover the offset associated with the i-th stored
// entry without repeating keys on disk.
type bitsetCursor struct {
	b   bitset
	pos int
}

func (b bitset) cursor() *bitsetCursor {
	return &bitsetCursor{b: b}
}

// next advances to and returns the next set bit position. The second
// return value is false once the bitmap's set bits are exhausted; callers
// must check it rather than assume the count read alongside the bitmap
// agrees with its actual popcount -- a malformed page can claim more
// entries than it has bits set, which must surface as a format error
// rather than a crash (spec §4.7).
func (c *bitsetCursor) next() (int, bool) {
	for c.pos < c.b.n {
		if c.b.test(c.pos) {
			found := c.pos
			c.pos++
			return found, true
		}
		c.pos++
	}
	return 0, false
}
