// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "strings"

// Output collects rendered snippets in insertion order.
type Output struct {
	// Names lists the identifiers in the order their snippets were added.
	Names []string

	// Snippets holds the rendered text for each entry in Names.
	Snippets []string
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{}
}

// Add appends the snippet rendered for name.
func (o *Output) Add(name, snippet string) {
	o.Names = append(o.Names, name)
	o.Snippets = append(o.Snippets, snippet)
}

// String concatenates all snippets with no separator.
func (o *Output) String() string {
	return strings.Join(o.Snippets, "")
}
