// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/notify"
)

func TestParseIndent(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "4", want: "    "},
		{in: "0", want: ""},
		{in: "tab", want: "\t"},
		{in: `\t\t`, want: "\t\t"},
		{in: "--", want: "--"},
		{in: "-1", wantErr: true},
		{in: "100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIndent(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseIndent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "    ", want: "    "},
		{in: `\t`, want: "\t"},
		{in: `  \t`, want: "  \t"},
		{in: `"\t`, want: "\"\t"},
	}
	for _, tt := range tests {
		got, err := unescape(tt.in)
		if err != nil {
			t.Errorf("unescape(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggestLanguage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "pyth", want: "python"},
		{in: "CSHARP", want: "csharp"},
		{in: "jav", want: "java"},
		{in: "haskell", want: ""},
	}
	for _, tt := range tests {
		if got := suggestLanguage(tt.in); got != tt.want {
			t.Errorf("suggestLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWarnUnknownLanguage(t *testing.T) {
	rec := &notify.Recorder{}
	warnUnknownLanguage(rec, "python")
	warnUnknownLanguage(rec, "")
	if n := len(rec.Notices()); n != 0 {
		t.Fatalf("got %d notices for known or empty ids, want 0", n)
	}

	warnUnknownLanguage(rec, "pyhton")
	got, _ := rec.Last()
	if got.Level != notify.Warning || !strings.Contains(got.Message, `using cpp`) {
		t.Errorf("notice = %+v", got)
	}
}

func TestReport(t *testing.T) {
	rec := &notify.Recorder{}

	if err := report(rec, command.ErrEmptyClipboard); !errors.Is(err, errFailed) {
		t.Errorf("soft error: got %v, want errFailed", err)
	}
	if got, _ := rec.Last(); got.Message != "Clipboard is empty" {
		t.Errorf("notice = %+v", got)
	}

	hard := errors.New("disk full")
	if err := report(rec, hard); err != hard {
		t.Errorf("hard error: got %v, want it unchanged", err)
	}
}

func newTestRepl(input string) (*repl, *bytes.Buffer, *notify.Recorder) {
	rec := &notify.Recorder{}
	var out bytes.Buffer
	r := &repl{
		svc:      command.New(command.Options{Notifier: rec}),
		in:       bufio.NewReader(strings.NewReader(input)),
		out:      &out,
		prompt:   &bytes.Buffer{},
		notifier: rec,
	}
	return r, &out, rec
}

func TestRepl(t *testing.T) {
	input := strings.Join([]string{
		"lang python",
		"indent 4",
		"track total",
		"track 'count',",
		"print x = 1",
		"multi",
		"2 1",
		"quit",
		"print never",
	}, "\n") + "\n"

	r, out, rec := newTestRepl(input)
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "print(f\"x: {x}\")\n    " +
		"print(f\"total: {total}\")\n    print(f\"count: {count}\")\n    "
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	wantNotices := []notify.Notice{
		{Level: notify.Info, Message: "Variable total is added in buffer"},
		{Level: notify.Info, Message: "Variable count is added in buffer"},
	}
	if diff := cmp.Diff(wantNotices, rec.Notices()); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}
}

func TestReplNotices(t *testing.T) {
	r, out, rec := newTestRepl("multi\narray\nfrobnicate\n")
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}

	want := []notify.Notice{
		{Level: notify.Info, Message: "Copy variables to add them in buffer"},
		{Level: notify.Warning, Message: "Clipboard is empty"},
		{Level: notify.Warning, Message: `Unknown command "frobnicate"; type "help"`},
	}
	if diff := cmp.Diff(want, rec.Notices()); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}
}
