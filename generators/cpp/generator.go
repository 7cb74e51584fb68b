// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cpp generates C++ debug-print snippets.
//
// The generated code uses iostream:
//   - std::cout with a "name: " label for scalars
//   - an index-based for loop bounded by size() for collections
//   - std::endl to terminate and flush each printed line
//
// C++ is also the fallback family for editor languages outside the
// resolution table.
package cpp

import (
	"fmt"

	"github.com/albertocavalcante/dbgprint/generator"
)

// Generator implements [generator.Generator] for the C-like family.
type Generator struct{}

// NewGenerator creates a new C++ generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "cpp",
		Family:      generator.FamilyCLike,
		Description: "Print with std::cout; index-based loop for collections",
		LanguageIDs: generator.LanguageIDs(generator.FamilyCLike),
	}
}

// Scalar returns a std::cout statement printing name and its value.
func (g *Generator) Scalar(name, indent string) string {
	return fmt.Sprintf("std::cout << \"%s: \" << %s << std::endl;\n%s", name, name, indent)
}

// Collection returns a loop over name printing each element by index.
func (g *Generator) Collection(name, indent string) string {
	return fmt.Sprintf("std::cout << \"%s: \" << std::endl;\n", name) +
		fmt.Sprintf("%sfor (int i = 0; i < %s.size(); ++i) {\n", indent, name) +
		fmt.Sprintf("%s\tstd::cout << %s[i] << \" \";\n", indent, name) +
		indent + "}\n" +
		indent + "std::cout << std::endl;\n" +
		indent
}
