// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package javascript generates JavaScript and TypeScript debug-print snippets.
package javascript

import (
	"fmt"

	"github.com/albertocavalcante/dbgprint/generator"
)

// Generator implements [generator.Generator] for the JavaScript family.
type Generator struct{}

// NewGenerator creates a new JavaScript generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "javascript",
		Family:      generator.FamilyJavaScript,
		Description: "Print with console.log; for-of loop for collections",
		LanguageIDs: generator.LanguageIDs(generator.FamilyJavaScript),
	}
}

// Scalar returns a console.log call. console.log separates its arguments
// with a space, so the label ends with the colon only.
func (g *Generator) Scalar(name, indent string) string {
	return fmt.Sprintf("console.log('%s:', %s);\n%s", name, name, indent)
}

// Collection accumulates the elements into one string and logs it once.
func (g *Generator) Collection(name, indent string) string {
	return fmt.Sprintf("console.log('%s:');\n", name) +
		indent + "let output = '';\n" +
		fmt.Sprintf("%sfor (const item of %s) {\n", indent, name) +
		indent + "\toutput += item + ' ';\n" +
		indent + "}\n" +
		indent + "console.log(output);\n" +
		indent
}
