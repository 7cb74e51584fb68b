// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package recent keeps the most recently copied identifiers.
package recent

import (
	"fmt"
	"slices"
	"sync"
)

// DefaultMax is the buffer capacity when none is configured.
const DefaultMax = 10

// Item is a buffer entry prepared for a picker.
type Item struct {
	// Name is the identifier.
	Name string `json:"name"`

	// Description gives the 1-based position, most recent first.
	Description string `json:"description"`
}

// Buffer is a bounded most-recently-used list of identifiers with no
// duplicates. The zero value is not usable; call New.
type Buffer struct {
	mu    sync.RWMutex
	names []string
	max   int
}

// New creates an empty buffer holding at most size names. A size below 1
// uses DefaultMax.
func New(size int) *Buffer {
	if size < 1 {
		size = DefaultMax
	}
	return &Buffer{max: size}
}

// Record moves name to the front, dropping the oldest names beyond the
// capacity.
func (b *Buffer) Record(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.names = slices.DeleteFunc(b.names, func(n string) bool { return n == name })
	b.names = slices.Insert(b.names, 0, name)
	b.truncate()
}

// Snapshot returns a copy of the names, most recent first.
func (b *Buffer) Snapshot() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.names)
}

// Items returns the names with their positional descriptions.
func (b *Buffer) Items() []Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ItemsOf(b.names)
}

// ItemsOf describes names, given most recent first, as picker items.
func ItemsOf(names []string) []Item {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Name: n, Description: fmt.Sprintf("Variable #%d", i+1)}
	}
	return items
}

// IsEmpty reports whether no names have been recorded.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Len returns the number of names held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.names)
}

// Max returns the current capacity.
func (b *Buffer) Max() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.max
}

// SetMax changes the capacity. Lowering it drops the oldest names at once.
// A size below 1 uses DefaultMax.
func (b *Buffer) SetMax(size int) {
	if size < 1 {
		size = DefaultMax
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.max = size
	b.truncate()
}

// truncate drops names beyond max. Callers hold mu.
func (b *Buffer) truncate() {
	if len(b.names) > b.max {
		b.names = b.names[:b.max]
	}
}
