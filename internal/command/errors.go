// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package command

import (
	"errors"

	"github.com/albertocavalcante/dbgprint/internal/notify"
)

// Soft failures. Each ends the current action without side effects.
var (
	ErrNoEditor       = errors.New("no active editor")
	ErrEmptyClipboard = errors.New("clipboard is empty")
	ErrNoIdentifier   = errors.New("could not extract variable name")
	ErrBufferEmpty    = errors.New("buffer is empty")
	ErrCancelled      = errors.New("selection cancelled")
)

// NoticeFor returns the notice the user sees for err. ok is false when the
// failure is silent (cancelled selection) or err is nil.
func NoticeFor(err error) (n notify.Notice, ok bool) {
	switch {
	case err == nil, errors.Is(err, ErrCancelled):
		return notify.Notice{}, false
	case errors.Is(err, ErrNoEditor):
		return notify.Notice{Level: notify.Error, Message: "No active editor"}, true
	case errors.Is(err, ErrEmptyClipboard):
		return notify.Notice{Level: notify.Warning, Message: "Clipboard is empty"}, true
	case errors.Is(err, ErrNoIdentifier):
		return notify.Notice{Level: notify.Warning, Message: "Could not extract variable name from clipboard"}, true
	case errors.Is(err, ErrBufferEmpty):
		return notify.Notice{Level: notify.Info, Message: "Copy variables to add them in buffer"}, true
	default:
		return notify.Notice{Level: notify.Error, Message: "Debug print failed: " + err.Error()}, true
	}
}

// IsSoft reports whether err is one of the expected, user-caused failures.
func IsSoft(err error) bool {
	return errors.Is(err, ErrNoEditor) ||
		errors.Is(err, ErrEmptyClipboard) ||
		errors.Is(err, ErrNoIdentifier) ||
		errors.Is(err, ErrBufferEmpty) ||
		errors.Is(err, ErrCancelled)
}
