// Copyright (c) 2026 Sirix Authors
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at sirix.io/bsl11.
//
// Change Date: 2030-1-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package page_test

import (
	"testing"

	"github.com/sirix-db/sirix-go/page"
	"github.com/sirix-db/sirix-go/page/jsonrecord"
	"github.com/sirix-db/sirix-go/pagestore"
)

func TestDefaultContext_CommitThenReadOverflow(t *testing.T) {
	store := pagestore.NewMemoryStore()
	ctx := page.NewDefaultContext(&page.ConfigDeweyDisabled, jsonrecord.Codec{}, store, 16)

	ref := page.NewReference(1)
	if err := ctx.Commit(ref, []byte("payload")); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	overflow, err := ctx.ReadOverflow(ref)
	if err != nil {
		t.Fatalf("ReadOverflow: %v", err)
	}
	if string(overflow.Data()) != "payload" {
		t.Errorf("ReadOverflow data = %q, want %q", overflow.Data(), "payload")
	}
}

func TestDefaultContext_ReadOverflow_FallsBackToStore(t *testing.T) {
	store := pagestore.NewMemoryStore()
	if err := store.Store(page.NewReference(2), []byte("from store")); err != nil {
		t.Fatalf("store.Store: %v", err)
	}
	ctx := page.NewDefaultContext(&page.ConfigDeweyDisabled, jsonrecord.Codec{}, store, 16)

	overflow, err := ctx.ReadOverflow(page.NewReference(2))
	if err != nil {
		t.Fatalf("ReadOverflow: %v", err)
	}
	if string(overflow.Data()) != "from store" {
		t.Errorf("ReadOverflow data = %q, want %q", overflow.Data(), "from store")
	}
}

func TestDefaultContext_GetRecord_NoLookupWired(t *testing.T) {
	store := pagestore.NewMemoryStore()
	ctx := page.NewDefaultContext(&page.ConfigDeweyDisabled, jsonrecord.Codec{}, store, 16)

	if _, ok := ctx.GetRecord(1, page.NodePage, 0); ok {
		t.Error("GetRecord reported presence with no lookup collaborator wired")
	}
}

func TestDefaultContext_GetRecord_DelegatesToLookup(t *testing.T) {
	store := pagestore.NewMemoryStore()
	ctx := page.NewDefaultContext(&page.ConfigDeweyDisabled, jsonrecord.Codec{}, store, 16)

	want := jsonrecord.NewNode(7, nil, page.KindText, "found")
	ctx.SetLookup(func(key uint64, kind page.Kind, indexNumber int) (page.Record, bool) {
		if key == 7 {
			return want, true
		}
		return nil, false
	})

	rec, ok := ctx.GetRecord(7, page.NodePage, 0)
	if !ok {
		t.Fatal("expected lookup to report presence")
	}
	if rec != page.Record(want) {
		t.Errorf("GetRecord returned a different record than the lookup provided")
	}
}

func TestDefaultContext_Config_Codec_ResourceManager(t *testing.T) {
	store := pagestore.NewMemoryStore()
	cfg := &page.ConfigDeweyEnabled
	codec := jsonrecord.Codec{}
	ctx := page.NewDefaultContext(cfg, codec, store, 16)

	if ctx.Config() != cfg {
		t.Error("Config() did not return the wired configuration")
	}
	if ctx.Codec() != codec {
		t.Error("Codec() did not return the wired codec")
	}
	if ctx.ResourceManager() != page.ResourceHandle(ctx) {
		t.Error("ResourceManager() did not return the context itself")
	}
}

func TestDefaultContext_GetMemoryFootprint_GrowsWithCommits(t *testing.T) {
	store := pagestore.NewMemoryStore()
	ctx := page.NewDefaultContext(&page.ConfigDeweyDisabled, jsonrecord.Codec{}, store, 16)

	before := ctx.GetMemoryFootprint().Total()
	if err := ctx.Commit(page.NewReference(1), []byte("some overflow data")); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if after := ctx.GetMemoryFootprint().Total(); after <= before {
		t.Errorf("GetMemoryFootprint did not grow after Commit: before=%d after=%d", before, after)
	}
}
