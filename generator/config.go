// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Placeholder tokens recognized in override templates. Only these exact
// literals are substituted; there is no escaping and no other syntax.
const (
	VariablePlaceholder = "{variable}"
	ArrayPlaceholder    = "{array}"
)

// Config contains renderer configuration.
type Config struct {
	// VariableTemplate overrides built-in scalar snippets when non-empty.
	VariableTemplate string

	// ArrayTemplate overrides built-in collection snippets when non-empty.
	ArrayTemplate string
}

// Override returns the override template and its placeholder for kind.
// The template is empty when no override is configured.
func (c Config) Override(kind Kind) (tmpl, placeholder string) {
	switch kind {
	case KindCollection:
		return c.ArrayTemplate, ArrayPlaceholder
	default:
		return c.VariableTemplate, VariablePlaceholder
	}
}
