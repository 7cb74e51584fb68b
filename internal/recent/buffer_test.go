// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package recent

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecord(t *testing.T) {
	tests := []struct {
		name   string
		max    int
		record []string
		want   []string
	}{
		{name: "single", max: 10, record: []string{"a"}, want: []string{"a"}},
		{name: "most recent first", max: 10, record: []string{"a", "b", "c"}, want: []string{"c", "b", "a"}},
		{name: "max two evicts oldest", max: 2, record: []string{"a", "b", "c"}, want: []string{"c", "b"}},
		{name: "re-record moves to front", max: 10, record: []string{"x", "a", "b", "x"}, want: []string{"x", "b", "a"}},
		{name: "re-record front is noop", max: 10, record: []string{"a", "b", "b"}, want: []string{"b", "a"}},
		{name: "re-record does not evict", max: 3, record: []string{"a", "b", "c", "a"}, want: []string{"a", "c", "b"}},
		{name: "max one", max: 1, record: []string{"a", "b"}, want: []string{"b"}},
		{name: "zero max uses default", max: 0, record: []string{"a"}, want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.max)
			for _, n := range tt.record {
				b.Record(n)
			}
			if diff := cmp.Diff(tt.want, b.Snapshot()); diff != "" {
				t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvictsOldestBeyondMax(t *testing.T) {
	const n = 5
	b := New(n)
	for i := 0; i <= n; i++ {
		b.Record(fmt.Sprintf("v%d", i))
	}

	want := []string{"v5", "v4", "v3", "v2", "v1"}
	if diff := cmp.Diff(want, b.Snapshot()); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultMax(t *testing.T) {
	b := New(0)
	if b.Max() != DefaultMax {
		t.Fatalf("Max() = %d, want %d", b.Max(), DefaultMax)
	}
	for i := 0; i < DefaultMax+3; i++ {
		b.Record(fmt.Sprintf("v%d", i))
	}
	if b.Len() != DefaultMax {
		t.Errorf("Len() = %d, want %d", b.Len(), DefaultMax)
	}
}

func TestIsEmpty(t *testing.T) {
	b := New(3)
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	b.Record("a")
	if b.IsEmpty() {
		t.Error("buffer with a name should not be empty")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := New(3)
	b.Record("a")
	snap := b.Snapshot()
	snap[0] = "mutated"

	if got := b.Snapshot()[0]; got != "a" {
		t.Errorf("buffer changed through snapshot: got %q", got)
	}
}

func TestSetMax(t *testing.T) {
	b := New(5)
	for _, n := range []string{"a", "b", "c", "d"} {
		b.Record(n)
	}

	b.SetMax(2)
	if diff := cmp.Diff([]string{"d", "c"}, b.Snapshot()); diff != "" {
		t.Errorf("after shrink (-want +got):\n%s", diff)
	}

	b.SetMax(4)
	b.Record("e")
	if diff := cmp.Diff([]string{"e", "d", "c"}, b.Snapshot()); diff != "" {
		t.Errorf("after grow (-want +got):\n%s", diff)
	}

	b.SetMax(-1)
	if b.Max() != DefaultMax {
		t.Errorf("Max() = %d, want %d", b.Max(), DefaultMax)
	}
}

func TestItems(t *testing.T) {
	b := New(3)
	b.Record("first")
	b.Record("second")

	want := []Item{
		{Name: "second", Description: "Variable #1"},
		{Name: "first", Description: "Variable #2"},
	}
	if diff := cmp.Diff(want, b.Items()); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestConcurrentRecord(t *testing.T) {
	b := New(4)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.Record(fmt.Sprintf("v%d", i%8))
			_ = b.Snapshot()
		}(i)
	}
	wg.Wait()

	snap := b.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("len = %d, want 4", len(snap))
	}
	seen := make(map[string]bool)
	for _, n := range snap {
		if seen[n] {
			t.Errorf("duplicate %q in %v", n, snap)
		}
		seen[n] = true
	}
}

func TestItemsOf(t *testing.T) {
	got := ItemsOf([]string{"b", "a"})
	want := []Item{
		{Name: "b", Description: "Variable #1"},
		{Name: "a", Description: "Variable #2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ItemsOf mismatch (-want +got):\n%s", diff)
	}
	if got := ItemsOf(nil); got == nil || len(got) != 0 {
		t.Errorf("ItemsOf(nil) = %#v, want empty non-nil slice", got)
	}
}
