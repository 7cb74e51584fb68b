// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[Family]Generator)
)

// Register adds a generator to the registry.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	meta := g.Metadata()
	if _, exists := registry[meta.Family]; exists {
		panic(fmt.Sprintf("generator for family %q already registered", meta.Family))
	}
	registry[meta.Family] = g
}

// Get returns the generator registered for a family.
func Get(f Family) (Generator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[f]
	return g, ok
}

// List returns all registered generator names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, g := range registry {
		names = append(names, g.Metadata().Name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered generators in family order.
func All() []Generator {
	mu.RLock()
	defer mu.RUnlock()
	gens := make([]Generator, 0, len(registry))
	for _, f := range Families {
		if g, ok := registry[f]; ok {
			gens = append(gens, g)
		}
	}
	return gens
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[Family]Generator)
}
