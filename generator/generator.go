// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for debug-print snippet generators.
//
// A generator produces the print statements for one language family. The
// renderer picks a generator by [Family] and hands it an identifier plus the
// indentation of the line the snippet is inserted on.
package generator

// Kind selects whether a snippet prints a single value or iterates a collection.
type Kind int

const (
	// KindScalar prints one labelled value.
	KindScalar Kind = iota
	// KindCollection prints a header and every element of a collection.
	KindCollection
)

// String returns the kind name used in configuration and host requests.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name. "variable" and "array" are accepted as
// aliases because editor hosts name their commands that way.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "scalar", "variable", "":
		return KindScalar, true
	case "collection", "array":
		return KindCollection, true
	default:
		return KindScalar, false
	}
}

// Generator is the interface that all snippet generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Scalar returns a single print statement for name, terminated by a
	// newline followed by indent.
	Scalar(name, indent string) string

	// Collection returns a block printing a header and each element of
	// name. Every line after the first is prefixed with indent; loop bodies
	// get one extra tab. Like Scalar, the block ends with a newline followed
	// by indent rather than a bare newline, so the cursor lands on an
	// indented line ready for the next statement.
	Collection(name, indent string) string
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "cpp", "python").
	Name string

	// Family is the language family the generator serves.
	Family Family

	// Description is a human-readable description.
	Description string

	// LanguageIDs lists the editor language ids that resolve to Family.
	LanguageIDs []string
}
