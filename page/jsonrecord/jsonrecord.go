// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package jsonrecord provides a concrete page.Record/page.RecordCodec pair
// for the JSON object/array/value node kinds, used both as a runnable
// example of the record-page layer's codec contract and as the fixture
// codec exercised by the page package's own tests.
package jsonrecord

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sirix-db/sirix-go/page"
)

// Node is a single JSON tree node: an object, array or scalar value,
// identified by nodeKey and optionally positioned by a Dewey-ID.
type Node struct {
	nodeKey uint64
	deweyID page.DeweyID
	kind    page.NodeKind
	value   string
}

// NewNode constructs a Node. deweyID may be nil for resources that do not
// track structural position.
func NewNode(nodeKey uint64, deweyID page.DeweyID, kind page.NodeKind, value string) *Node {
	return &Node{nodeKey: nodeKey, deweyID: deweyID, kind: kind, value: value}
}

func (n *Node) NodeKey() uint64        { return n.nodeKey }
func (n *Node) DeweyID() page.DeweyID  { return n.deweyID }
func (n *Node) Kind() page.NodeKind    { return n.kind }
func (n *Node) Value() string          { return n.value }

// Codec serializes Node values. SupportsDewey is true: Codec is the
// Dewey-capable variant a resource configured with
// page.ConfigDeweyEnabled is expected to pair with.
type Codec struct{}

var _ page.RecordCodec = Codec{}

// Serialize writes kind (1 byte), then the value string length-prefixed
// as a 32-bit integer followed by its bytes. ctx is unused: this codec
// has no external collaborators to resolve.
func (Codec) Serialize(out *bytes.Buffer, rec page.Record, ctx page.ReadContext) error {
	n, ok := rec.(*Node)
	if !ok {
		return fmt.Errorf("jsonrecord: cannot serialize %T", rec)
	}
	if err := out.WriteByte(byte(n.kind)); err != nil {
		return err
	}
	value := []byte(n.value)
	if err := binary.Write(out, binary.BigEndian, uint32(len(value))); err != nil {
		return err
	}
	_, err := out.Write(value)
	return err
}

// Deserialize reverses Serialize, attaching the node key and Dewey-ID the
// page frame supplies (they are never encoded in the record body itself).
func (Codec) Deserialize(in []byte, nodeKey uint64, deweyID page.DeweyID, ctx page.ReadContext) (page.Record, error) {
	r := bytes.NewReader(in)
	kindByte, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("jsonrecord: reading kind: %w", err)
	}
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, fmt.Errorf("jsonrecord: reading value length: %w", err)
	}
	value := make([]byte, length)
	if _, err := io.ReadFull(r, value); err != nil {
		return nil, fmt.Errorf("jsonrecord: reading value: %w", err)
	}
	return &Node{
		nodeKey: nodeKey,
		deweyID: deweyID,
		kind:    page.NodeKind(kindByte),
		value:   string(value),
	}, nil
}

// SerializeDeweyID delegates to the page package's own delta codec: this
// codec carries no Dewey-specific encoding beyond the generic chain
// format, since DeweyID is already a plain byte string.
func (Codec) SerializeDeweyID(out *bytes.Buffer, kind page.NodeKind, current, previous page.DeweyID, cfg *page.ResourceConfig) error {
	return page.EncodeDeweyDelta(out, current, previous)
}

// DeserializeDeweyID delegates to the page package's delta decoder.
func (Codec) DeserializeDeweyID(in *bytes.Reader, previous page.DeweyID, cfg *page.ResourceConfig) (page.DeweyID, error) {
	return page.DecodeDeweyDelta(in, previous)
}

// SupportsDewey reports true: Codec can encode and decode Dewey-ID chains.
func (Codec) SupportsDewey() bool { return true }
