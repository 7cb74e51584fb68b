// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/albertocavalcante/dbgprint/internal/recent"
)

// TerminalPicker lists buffer entries and reads the choice from a line of
// input. The line may hold positions ("1 3"), "all", or text that is fuzzy
// matched against the names. An empty line cancels.
type TerminalPicker struct {
	In  *bufio.Reader
	Out io.Writer
}

// PickMany prompts for a selection.
func (p *TerminalPicker) PickMany(ctx context.Context, items []recent.Item) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, item := range items {
		fmt.Fprintf(p.Out, "  %2d) %-24s %s\n", i+1, item.Name, item.Description)
	}
	fmt.Fprint(p.Out, "Select variables to print (numbers, all, or filter text): ")

	line, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	return Choose(items, line), nil
}

// Choose interprets a selection line against items.
func Choose(items []recent.Item, line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	if strings.EqualFold(line, "all") {
		return names
	}

	if picked, ok := byPosition(names, line); ok {
		return picked
	}

	return fuzzy.FindFold(line, names)
}

// byPosition parses space or comma separated 1-based positions. ok is false
// when any field is not a number.
func byPosition(names []string, line string) (picked []string, ok bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
	seen := make(map[int]bool)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		if n < 1 || n > len(names) || seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, names[n-1])
	}
	return picked, true
}
