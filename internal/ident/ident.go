// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ident extracts variable names from copied text.
//
// Extraction is a syntactic heuristic on raw text. It does not know the
// language the text came from.
package ident

import (
	"regexp"
	"strings"
)

// pattern matches a whole identifier: an ASCII letter, '_' or '$', then any
// number of ASCII letters, digits, '_' or '$'.
var pattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// stripper removes quotes and separators that tag along with a copied name.
var stripper = strings.NewReplacer(`'`, "", `"`, "", "`", "", ",", "", ";", "")

// Sanitize returns the identifier contained in text, or "" when text does not
// reduce to one.
//
// Quotes, backticks, commas and semicolons are dropped wherever they appear.
// An assignment such as "x = compute()" reduces to its left-hand side.
func Sanitize(text string) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return ""
	}

	cleaned = stripper.Replace(cleaned)

	if lhs, _, ok := strings.Cut(cleaned, "="); ok {
		cleaned = strings.TrimSpace(lhs)
	}

	if !Valid(cleaned) {
		return ""
	}
	return cleaned
}

// Valid reports whether s is already a complete identifier.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
