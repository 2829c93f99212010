// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package pagehash computes a diagnostic content digest for serialized
// pages. It has no bearing on the wire format (spec §4.5/§4.6 define the
// byte layout exhaustively); Fingerprint exists purely to let verbose
// logging and debugging tools compare two page bodies cheaply without
// printing them in full.
package pagehash

import (
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Size is the byte length of a Fingerprint.
const Size = 32

// Fingerprint is a Keccak-256 digest of a page body.
type Fingerprint [Size]byte

// String renders the fingerprint as a lowercase hex string.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// keccakHasherPool follows common.keccak.go's pooled-hasher pattern,
// avoiding a fresh sha3 state allocation per call; this package carries
// no cgo fast path since its only use is diagnostic.
var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// Of computes the Fingerprint of data.
func Of(data []byte) Fingerprint {
	hasher := keccakHasherPool.Get().(interface {
		Reset()
		Write([]byte) (int, error)
		Sum([]byte) []byte
	})
	hasher.Reset()
	hasher.Write(data)
	var res Fingerprint
	copy(res[:], hasher.Sum(nil))
	keccakHasherPool.Put(hasher)
	return res
}
