// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package host defines the editor-side collaborators of the print actions
// and provides implementations for the bundled hosts.
package host

import (
	"context"

	"github.com/albertocavalcante/dbgprint/internal/recent"
)

// Editor is the active editor context.
type Editor interface {
	// LanguageID returns the editor's language id for the document,
	// e.g. "python" or "typescript".
	LanguageID() string

	// Indent returns the leading whitespace of the cursor line, verbatim.
	Indent() string

	// Selection returns the selected text, or "" when nothing is selected.
	Selection() string

	// Insert places text at the cursor as a single edit.
	Insert(ctx context.Context, text string) error
}

// Clipboard supplies copied text.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
}

// Picker lets the user choose buffer entries. An empty result with a nil
// error means the user cancelled.
type Picker interface {
	PickMany(ctx context.Context, items []recent.Item) ([]string, error)
}

// StaticClipboard is a clipboard holding fixed text.
type StaticClipboard string

// ReadText returns the text.
func (c StaticClipboard) ReadText(context.Context) (string, error) {
	return string(c), nil
}

// StaticPicker is a picker whose choice was made up front, e.g. sent along
// with an HTTP request.
type StaticPicker []string

// PickMany returns the preselected names.
func (p StaticPicker) PickMany(context.Context, []recent.Item) ([]string, error) {
	return append([]string(nil), p...), nil
}
