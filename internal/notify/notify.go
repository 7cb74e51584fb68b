// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package notify delivers user-facing notices.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level represents the severity of a notice.
type Level string

const (
	// Info is an informational notice.
	Info Level = "info"
	// Warning reports input that could not be used.
	Warning Level = "warning"
	// Error reports a failed action.
	Error Level = "error"
)

// Notice is a single message shown to the user.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier shows notices to the user.
type Notifier interface {
	Notify(level Level, message string)
}

// Terminal writes notices as single lines, colored when the destination is
// a terminal.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	colors bool
}

// NewTerminal returns a Terminal notifier writing to stderr. Colors are used
// when stderr is a terminal.
func NewTerminal() *Terminal {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return &Terminal{w: colorable.NewColorableStderr(), colors: true}
	}
	return &Terminal{w: os.Stderr}
}

// NewWriter returns a Terminal notifier writing plain text to w.
func NewWriter(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

var colorCodes = map[Level]string{
	Info:    "\x1b[36m",
	Warning: "\x1b[33m",
	Error:   "\x1b[31m",
}

const resetCode = "\x1b[0m"

// Notify writes the notice.
func (t *Terminal) Notify(level Level, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.colors {
		fmt.Fprintf(t.w, "%s%s:%s %s\n", colorCodes[level], level, resetCode, message)
		return
	}
	fmt.Fprintf(t.w, "%s: %s\n", level, message)
}

// Recorder keeps notices in memory. Hosts that answer requests (HTTP, MCP)
// use it to return notices to the caller.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify records the notice.
func (r *Recorder) Notify(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: level, Message: message})
}

// Notices returns the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Discard drops every notice.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(Level, string) {}
