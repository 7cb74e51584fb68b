// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package python generates Python debug-print snippets.
package python

import (
	"fmt"

	"github.com/albertocavalcante/dbgprint/generator"
)

// Generator implements [generator.Generator] for the scripting family.
type Generator struct{}

// NewGenerator creates a new Python generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "python",
		Family:      generator.FamilyScripting,
		Description: "Print with f-strings; for-in loop for collections",
		LanguageIDs: generator.LanguageIDs(generator.FamilyScripting),
	}
}

// Scalar returns an f-string print of name.
func (g *Generator) Scalar(name, indent string) string {
	return fmt.Sprintf("print(f\"%s: {%s}\")\n%s", name, name, indent)
}

// Collection returns a for-in loop printing the elements on one line.
// The trailing bare print() ends that line.
func (g *Generator) Collection(name, indent string) string {
	return fmt.Sprintf("print(\"%s:\")\n", name) +
		fmt.Sprintf("%sfor item in %s:\n", indent, name) +
		indent + "\tprint(item, end=\" \")\n" +
		indent + "print()\n" +
		indent
}
