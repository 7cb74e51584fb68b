// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "strings"

// Family is a closed set of target language families. Adding a family means
// adding a constant here and an arm to every switch over Family.
type Family int

const (
	// FamilyCLike covers C and C++. It is also the fallback family.
	FamilyCLike Family = iota
	// FamilyScripting covers Python.
	FamilyScripting
	// FamilyJava covers Java.
	FamilyJava
	// FamilyCSharp covers C#.
	FamilyCSharp
	// FamilyJavaScript covers JavaScript and TypeScript.
	FamilyJavaScript
)

// Families lists every family in declaration order.
var Families = []Family{FamilyCLike, FamilyScripting, FamilyJava, FamilyCSharp, FamilyJavaScript}

// String returns the generator name for f.
func (f Family) String() string {
	switch f {
	case FamilyCLike:
		return "cpp"
	case FamilyScripting:
		return "python"
	case FamilyJava:
		return "java"
	case FamilyCSharp:
		return "csharp"
	case FamilyJavaScript:
		return "javascript"
	default:
		return "cpp"
	}
}

// ResolveFamily maps an editor language id to its family. Ids outside the
// fixed table fall back to [FamilyCLike]; known reports whether the id was
// in the table.
func ResolveFamily(languageID string) (f Family, known bool) {
	switch strings.ToLower(strings.TrimSpace(languageID)) {
	case "javascript", "typescript", "javascriptreact", "typescriptreact":
		return FamilyJavaScript, true
	case "python":
		return FamilyScripting, true
	case "java":
		return FamilyJava, true
	case "cpp", "c":
		return FamilyCLike, true
	case "csharp":
		return FamilyCSharp, true
	default:
		return FamilyCLike, false
	}
}

// LanguageIDs returns the editor language ids that resolve to f.
func LanguageIDs(f Family) []string {
	switch f {
	case FamilyJavaScript:
		return []string{"javascript", "typescript", "javascriptreact", "typescriptreact"}
	case FamilyScripting:
		return []string{"python"}
	case FamilyJava:
		return []string{"java"}
	case FamilyCSharp:
		return []string{"csharp"}
	case FamilyCLike:
		return []string{"cpp", "c"}
	default:
		return nil
	}
}

// KnownLanguageIDs returns every language id in the resolution table.
func KnownLanguageIDs() []string {
	var ids []string
	for _, f := range Families {
		ids = append(ids, LanguageIDs(f)...)
	}
	return ids
}
