// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package testutil provides testing utilities for dbgprint.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed render case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Directives holds the "key: value" lines found in the description.
	Directives map[string]string

	// Names lists the identifiers from the "names" file, one per line.
	Names []string

	// Want is the expected snippet from the "want" file.
	Want []byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment, optionally with "key: value" directives
//     (kind, language, indent, variable-template, array-template)
//   - A "names" file with one identifier per line
//   - A "want" file with the expected snippet
//
// Directive values may be Go-quoted strings so that tabs and trailing
// spaces survive, e.g. `indent: "\t"`.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Directives:  make(map[string]string),
	}

	if err := c.parseDirectives(); err != nil {
		return nil, err
	}

	var haveWant bool
	for _, f := range ar.Files {
		switch f.Name {
		case "names":
			for _, line := range strings.Split(string(f.Data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					c.Names = append(c.Names, line)
				}
			}
		case "want":
			c.Want = f.Data
			haveWant = true
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected names or want)", f.Name)
		}
	}

	if len(c.Names) == 0 {
		return nil, fmt.Errorf("missing names in archive")
	}
	if !haveWant {
		return nil, fmt.Errorf("missing want in archive")
	}

	return c, nil
}

// parseDirectives extracts "key: value" lines from the description.
func (c *Case) parseDirectives() error {
	for _, line := range strings.Split(c.Description, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok || strings.ContainsAny(key, " \t") || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, `"`) {
			unquoted, err := strconv.Unquote(value)
			if err != nil {
				return fmt.Errorf("directive %q: %w", key, err)
			}
			value = unquoted
		}
		c.Directives[key] = value
	}
	return nil
}

// Directive returns a directive value with default.
func (c *Case) Directive(key, defaultValue string) string {
	if v, ok := c.Directives[key]; ok {
		return v
	}
	return defaultValue
}

// RenderFunc renders the snippet for a case.
type RenderFunc func(c *Case) (string, error)

// Run executes the test case using the provided render function and
// compares the result against the expected snippet.
func (c *Case) Run(t *testing.T, render RenderFunc) {
	t.Helper()

	got, err := render(c)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if diff := cmp.Diff(normalizeContent(c.Want), normalizeContent([]byte(got))); diff != "" {
		t.Errorf("snippet mismatch (-want +got):\n%s", diff)
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive returns ar with its want file replaced by got.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got string) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}

	for _, f := range ar.Files {
		if f.Name == "names" {
			result.Files = append(result.Files, f)
		}
	}

	content := []byte(normalizeContent([]byte(got)) + "\n")
	result.Files = append(result.Files, txtar.File{Name: "want", Data: content})
	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}
