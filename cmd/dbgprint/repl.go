// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/notify"
)

const replHelp = `Commands:
  track <text>     Add the variable in text to the buffer
  print [text]     Print statement (text defaults to the clipboard)
  array [text]     Collection loop (text defaults to the clipboard)
  multi            Pick buffered variables and print each
  buffer           Show the buffer
  lang [id]        Show or set the language id
  indent [n|tab]   Show or set the indentation
  help             Show this help
  quit             Leave
`

func cmdRepl(ctx context.Context, env *env, args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	lang := fs.String("lang", "", "Initial language id")
	indent := fs.String("indent", "", "Initial indentation")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	ind, err := parseIndent(*indent)
	if err != nil {
		return fmt.Errorf("invalid -indent: %w", err)
	}

	env.watchConfig(ctx)

	r := &repl{
		svc:      env.svc,
		in:       env.stdin,
		out:      env.stdout,
		prompt:   os.Stderr,
		notifier: env.notifier,
		language: *lang,
		indent:   ind,
	}
	return r.run(ctx)
}

// repl reads commands line by line. Snippets go to out; prompts, listings
// and the picker go to prompt.
type repl struct {
	svc      *command.Service
	in       *bufio.Reader
	out      io.Writer
	prompt   io.Writer
	notifier notify.Notifier

	language string
	indent   string
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.prompt, `dbgprint repl; type "help" for commands`)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(r.prompt, "> ")

		line, err := r.in.ReadString('\n')
		if line != "" {
			if quit := r.exec(ctx, strings.TrimSpace(line)); quit {
				return nil
			}
		}
		if err == io.EOF {
			fmt.Fprintln(r.prompt)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (r *repl) exec(ctx context.Context, line string) (quit bool) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
	case "track":
		r.dispatch(ctx, command.TrackCopy, command.Request{Editor: &host.Capture{Selected: rest}})
	case "print":
		r.insert(ctx, command.InsertPrint, rest)
	case "array":
		r.insert(ctx, command.InsertArrayPrint, rest)
	case "multi":
		ed := r.editor()
		r.dispatch(ctx, command.InsertMultiplePrints, command.Request{
			Editor: ed,
			Picker: &host.TerminalPicker{In: r.in, Out: r.prompt},
		})
		fmt.Fprint(r.out, ed.Inserted())
	case "buffer":
		items := r.svc.Items()
		if len(items) == 0 {
			fmt.Fprintln(r.prompt, "(empty)")
		}
		for i, item := range items {
			fmt.Fprintf(r.prompt, "  %2d) %s\n", i+1, item.Name)
		}
	case "lang":
		if rest != "" {
			r.language = rest
			warnUnknownLanguage(r.notifier, rest)
		}
		fmt.Fprintf(r.prompt, "language: %q\n", r.language)
	case "indent":
		if rest != "" {
			ind, err := parseIndent(rest)
			if err != nil {
				r.notifier.Notify(notify.Error, err.Error())
				return false
			}
			r.indent = ind
		}
		fmt.Fprintf(r.prompt, "indent: %q\n", r.indent)
	case "help", "?":
		fmt.Fprint(r.prompt, replHelp)
	case "quit", "exit":
		return true
	default:
		r.notifier.Notify(notify.Warning, fmt.Sprintf("Unknown command %q; type \"help\"", cmd))
	}
	return false
}

func (r *repl) editor() *host.Capture {
	return &host.Capture{Language: r.language, LineIndent: r.indent}
}

func (r *repl) insert(ctx context.Context, action command.Action, text string) {
	ed := r.editor()
	req := command.Request{Editor: ed}
	if text != "" {
		req.Clipboard = host.StaticClipboard(text)
	}
	r.dispatch(ctx, action, req)
	fmt.Fprint(r.out, ed.Inserted())
}

// dispatch runs the action; failures were already shown as notices.
func (r *repl) dispatch(ctx context.Context, action command.Action, req command.Request) {
	_ = r.svc.Dispatch(ctx, action, req)
}

// parseIndent accepts a number of spaces, "tab", or a literal with escapes.
func parseIndent(s string) (string, error) {
	if s == "tab" {
		return "\t", nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 64 {
			return "", fmt.Errorf("indent %d out of range", n)
		}
		return strings.Repeat(" ", n), nil
	}
	return unescape(s)
}
