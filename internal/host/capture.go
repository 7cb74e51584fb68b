// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"context"
	"strings"
	"sync"
)

// Capture is an editor without a document. It reports a fixed language,
// indent and selection, and keeps inserted text for the caller to apply.
// The REPL, HTTP, MCP and Lua hosts use it.
type Capture struct {
	Language   string
	LineIndent string
	Selected   string

	mu       sync.Mutex
	inserted strings.Builder
}

func (c *Capture) LanguageID() string { return c.Language }
func (c *Capture) Indent() string     { return c.LineIndent }
func (c *Capture) Selection() string  { return c.Selected }

// Insert appends text to the captured output.
func (c *Capture) Insert(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inserted.WriteString(text)
	return nil
}

// Inserted returns everything inserted so far.
func (c *Capture) Inserted() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inserted.String()
}
