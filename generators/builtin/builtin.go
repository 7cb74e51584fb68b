// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package builtin registers the built-in generators for every family.
package builtin

import (
	"sync"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/generators/cpp"
	"github.com/albertocavalcante/dbgprint/generators/csharp"
	"github.com/albertocavalcante/dbgprint/generators/java"
	"github.com/albertocavalcante/dbgprint/generators/javascript"
	"github.com/albertocavalcante/dbgprint/generators/python"
)

var mu sync.Mutex

// Register adds every built-in generator whose family is not registered yet.
// Safe to call more than once, including after [generator.Reset].
func Register() {
	mu.Lock()
	defer mu.Unlock()
	for _, g := range Generators() {
		if _, ok := generator.Get(g.Metadata().Family); !ok {
			generator.Register(g)
		}
	}
}

// Generators returns a fresh instance of every built-in generator in family
// order, without touching the registry.
func Generators() []generator.Generator {
	return []generator.Generator{
		cpp.NewGenerator(),
		python.NewGenerator(),
		java.NewGenerator(),
		csharp.NewGenerator(),
		javascript.NewGenerator(),
	}
}
