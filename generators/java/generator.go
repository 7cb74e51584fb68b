// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package java generates Java debug-print snippets.
package java

import (
	"fmt"

	"github.com/albertocavalcante/dbgprint/generator"
)

// Generator implements [generator.Generator] for Java.
type Generator struct{}

// NewGenerator creates a new Java generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "java",
		Family:      generator.FamilyJava,
		Description: "Print with System.out; enhanced for loop for collections",
		LanguageIDs: generator.LanguageIDs(generator.FamilyJava),
	}
}

// Scalar returns a System.out.println statement concatenating the label and
// the value of name.
func (g *Generator) Scalar(name, indent string) string {
	return fmt.Sprintf("System.out.println(\"%s: \" + %s);\n%s", name, name, indent)
}

// Collection returns an enhanced for loop printing the elements of name on
// one line, followed by a newline.
func (g *Generator) Collection(name, indent string) string {
	return fmt.Sprintf("System.out.println(\"%s: \");\n", name) +
		fmt.Sprintf("%sfor (var item : %s) {\n", indent, name) +
		indent + "\tSystem.out.print(item + \" \");\n" +
		indent + "}\n" +
		indent + "System.out.println();\n" +
		indent
}
