// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard reads the operating system clipboard.
type SystemClipboard struct{}

// ReadText returns the clipboard contents.
func (SystemClipboard) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if clipboard.Unsupported {
		return "", fmt.Errorf("read clipboard: no clipboard utility available")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}
