// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pagehash

import "testing"

func TestOf_Deterministic(t *testing.T) {
	data := []byte("a page body")
	a := Of(data)
	b := Of(data)
	if a != b {
		t.Errorf("Of(data) not deterministic: %s != %s", a, b)
	}
}

func TestOf_DistinguishesContent(t *testing.T) {
	a := Of([]byte("one"))
	b := Of([]byte("two"))
	if a == b {
		t.Errorf("Of produced the same fingerprint for different content")
	}
}

func TestFingerprint_String(t *testing.T) {
	f := Of([]byte("x"))
	s := f.String()
	if len(s) != Size*2 {
		t.Errorf("String() length = %d, want %d", len(s), Size*2)
	}
}
