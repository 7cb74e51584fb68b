// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package csharp generates C# debug-print snippets.
package csharp

import (
	"fmt"

	"github.com/albertocavalcante/dbgprint/generator"
)

// Generator implements [generator.Generator] for C#.
type Generator struct{}

// NewGenerator creates a new C# generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "csharp",
		Family:      generator.FamilyCSharp,
		Description: "Print with Console.WriteLine; foreach loop for collections",
		LanguageIDs: generator.LanguageIDs(generator.FamilyCSharp),
	}
}

// Scalar returns a Console.WriteLine statement for name.
func (g *Generator) Scalar(name, indent string) string {
	return fmt.Sprintf("Console.WriteLine(\"%s: \" + %s);\n%s", name, name, indent)
}

// Collection returns a foreach loop writing each element of name.
func (g *Generator) Collection(name, indent string) string {
	return fmt.Sprintf("Console.WriteLine(\"%s: \");\n", name) +
		fmt.Sprintf("%sforeach (var item in %s) {\n", indent, name) +
		indent + "\tConsole.Write(item + \" \");\n" +
		indent + "}\n" +
		indent + "Console.WriteLine();\n" +
		indent
}
