// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package jsonrecord_test

import (
	"bytes"
	"testing"

	"github.com/sirix-db/sirix-go/page"
	"github.com/sirix-db/sirix-go/page/jsonrecord"
)

func TestCodec_SerializeDeserialize_RoundTrip(t *testing.T) {
	codec := jsonrecord.Codec{}
	node := jsonrecord.NewNode(1, nil, page.KindText, "hello world")

	var buf bytes.Buffer
	if err := codec.Serialize(&buf, node, nil); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	rec, err := codec.Deserialize(buf.Bytes(), 1, nil, nil)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	got, ok := rec.(*jsonrecord.Node)
	if !ok {
		t.Fatalf("unexpected record type %T", rec)
	}
	if got.Value() != "hello world" {
		t.Errorf("Value() = %q, want %q", got.Value(), "hello world")
	}
	if got.Kind() != page.KindText {
		t.Errorf("Kind() = %v, want %v", got.Kind(), page.KindText)
	}
	if got.NodeKey() != 1 {
		t.Errorf("NodeKey() = %d, want 1", got.NodeKey())
	}
}

func TestCodec_Serialize_WrongType(t *testing.T) {
	codec := jsonrecord.Codec{}
	var buf bytes.Buffer
	if err := codec.Serialize(&buf, notANode{}, nil); err == nil {
		t.Fatal("expected error serializing a non-Node record")
	}
}

func TestCodec_SupportsDewey(t *testing.T) {
	if !(jsonrecord.Codec{}).SupportsDewey() {
		t.Error("SupportsDewey() = false, want true")
	}
}

func TestCodec_DeweyDelta_RoundTrip(t *testing.T) {
	codec := jsonrecord.Codec{}
	cfg := &page.ConfigDeweyEnabled

	var buf bytes.Buffer
	root := page.DeweyID{1}
	child := page.DeweyID{1, 2}

	if err := codec.SerializeDeweyID(&buf, page.KindElement, root, nil, cfg); err != nil {
		t.Fatalf("SerializeDeweyID(root): %v", err)
	}
	if err := codec.SerializeDeweyID(&buf, page.KindElement, child, root, cfg); err != nil {
		t.Fatalf("SerializeDeweyID(child): %v", err)
	}

	reader := bytes.NewReader(buf.Bytes())
	gotRoot, err := codec.DeserializeDeweyID(reader, nil, cfg)
	if err != nil {
		t.Fatalf("DeserializeDeweyID(root): %v", err)
	}
	if !gotRoot.Equal(root) {
		t.Errorf("root = %v, want %v", gotRoot, root)
	}
	gotChild, err := codec.DeserializeDeweyID(reader, gotRoot, cfg)
	if err != nil {
		t.Fatalf("DeserializeDeweyID(child): %v", err)
	}
	if !gotChild.Equal(child) {
		t.Errorf("child = %v, want %v", gotChild, child)
	}
}

type notANode struct{}

func (notANode) NodeKey() uint64       { return 0 }
func (notANode) DeweyID() page.DeweyID { return nil }
func (notANode) Kind() page.NodeKind   { return page.KindUnknown }
