// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/generators/builtin"
	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/config"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/ident"
	"github.com/albertocavalcante/dbgprint/internal/notify"
)

func cmdPrint(ctx context.Context, env *env, action command.Action, args []string) error {
	fs := flag.NewFlagSet(string(action), flag.ContinueOnError)
	lang := fs.String("lang", "", "Editor language id (default: from -file extension, else cpp)")
	indent := fs.String("indent", "", `Indentation of the insertion line: a number of spaces, "tab", or text with escapes such as \t`)
	file := fs.String("file", "", "Insert into this file instead of writing to stdout")
	line := fs.Int("line", 1, "1-based cursor line for -file")
	col := fs.Int("col", 1, "1-based cursor column for -file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	req := command.Request{}
	if fs.NArg() > 0 {
		req.Clipboard = host.StaticClipboard(strings.Join(fs.Args(), " "))
	}

	var capture *host.Capture
	if *file != "" {
		ed, err := host.OpenFile(*file, *line, *col, host.WithLanguage(*lang))
		if err != nil {
			return err
		}
		req.Editor = ed
	} else {
		ind, err := parseIndent(*indent)
		if err != nil {
			return fmt.Errorf("invalid -indent: %w", err)
		}
		capture = &host.Capture{Language: *lang, LineIndent: ind}
		req.Editor = capture
	}

	warnUnknownLanguage(env.notifier, req.Editor.LanguageID())

	insert := env.svc.InsertPrint
	if action == command.InsertArrayPrint {
		insert = env.svc.InsertArrayPrint
	}
	snippet, err := insert(ctx, req)
	if err != nil {
		return report(env.notifier, err)
	}

	if capture != nil {
		fmt.Fprint(env.stdout, snippet)
		return nil
	}
	env.notifier.Notify(notify.Info, fmt.Sprintf("Inserted %d line(s) into %s:%d", strings.Count(snippet, "\n"), *file, *line))
	return nil
}

// report shows the notice for a soft failure and turns it into errFailed.
// Other errors are returned unchanged for main to print.
func report(n notify.Notifier, err error) error {
	if !command.IsSoft(err) {
		return err
	}
	if notice, ok := command.NoticeFor(err); ok {
		n.Notify(notice.Level, notice.Message)
	}
	return errFailed
}

// warnUnknownLanguage tells the user when id falls back to the C++ family.
func warnUnknownLanguage(n notify.Notifier, id string) {
	if id == "" {
		return
	}
	if _, known := generator.ResolveFamily(id); known {
		return
	}
	msg := fmt.Sprintf("Unknown language %q, using %s", id, generator.FamilyCLike)
	if s := suggestLanguage(id); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	n.Notify(notify.Warning, msg)
}

// suggestLanguage returns the closest known language id, or "".
func suggestLanguage(id string) string {
	ranks := fuzzy.RankFindFold(strings.TrimSpace(id), generator.KnownLanguageIDs())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// unescape expands Go escape sequences so "\t" can be passed from a shell.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	return strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
}

func cmdSanitize(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: dbgprint sanitize <text>")
	}
	name := ident.Sanitize(strings.Join(args, " "))
	if name == "" {
		notify.NewTerminal().Notify(notify.Warning, "Could not extract variable name from clipboard")
		return errFailed
	}
	fmt.Println(name)
	return nil
}

func cmdLanguages(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("languages takes no arguments")
	}
	builtin.Register()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLANGUAGE IDS\tDESCRIPTION")
	for _, g := range generator.All() {
		meta := g.Metadata()
		fmt.Fprintf(w, "%s\t%s\t%s\n", meta.Name, strings.Join(meta.LanguageIDs, ", "), meta.Description)
	}
	fmt.Fprintf(w, "\nOther language ids use %s.\n", generator.FamilyCLike)
	return w.Flush()
}

func cmdInit(path string, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing configuration file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("no configuration path; pass -config")
	}

	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
