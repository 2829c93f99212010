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
	"encoding/binary"
	"fmt"
	"io"
)

// writeVarLong appends the VarLong (self-delimiting unsigned varint)
// encoding of v to out.
func writeVarLong(out *bytes.Buffer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := out.Write(buf[:n])
	return err
}

// readVarLong reads a VarLong from in.
func readVarLong(in io.ByteReader) (uint64, error) {
	v, err := binary.ReadUvarint(in)
	if err != nil {
		return 0, fmt.Errorf("reading varlong: %w", err)
	}
	return v, nil
}
