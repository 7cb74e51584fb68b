// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/generators/builtin"
	"github.com/albertocavalcante/dbgprint/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

func TestOverrideTemplate(t *testing.T) {
	r := New(generator.Config{VariableTemplate: "LOG({variable});"})

	got := r.Render(generator.KindScalar, generator.FamilyJava, []string{"total"}, "\t\t").String()
	want := "LOG(total);\n\t\t"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("override mismatch (-want +got):\n%s", diff)
	}
}

func TestOverrideReplacesEveryPlaceholder(t *testing.T) {
	r := New(generator.Config{
		VariableTemplate: `dbg("{variable}", {variable})`,
		ArrayTemplate:    "dump({array}, len({array}))",
	})

	if got, want := r.Render(generator.KindScalar, generator.FamilyCLike, []string{"x"}, "").String(), "dbg(\"x\", x)\n"; got != want {
		t.Errorf("scalar override = %q, want %q", got, want)
	}
	if got, want := r.Render(generator.KindCollection, generator.FamilyCLike, []string{"xs"}, "  ").String(), "dump(xs, len(xs))\n  "; got != want {
		t.Errorf("collection override = %q, want %q", got, want)
	}
}

func TestOverrideIsPerKind(t *testing.T) {
	r := New(generator.Config{VariableTemplate: "LOG({variable});"})

	got := r.Render(generator.KindCollection, generator.FamilyScripting, []string{"items"}, "").String()
	if strings.Contains(got, "LOG(") {
		t.Errorf("scalar override leaked into collection output:\n%s", got)
	}
	if !strings.HasPrefix(got, `print("items:")`) {
		t.Errorf("collection output should use the built-in template, got:\n%s", got)
	}
}

func TestOverrideWithoutPlaceholder(t *testing.T) {
	r := New(generator.Config{VariableTemplate: "breakpoint()"})
	if got, want := r.Render(generator.KindScalar, generator.FamilyScripting, []string{"x"}, "").String(), "breakpoint()\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetConfig(t *testing.T) {
	r := New(generator.Config{})
	before := r.Render(generator.KindScalar, generator.FamilyCLike, []string{"x"}, "").String()

	r.SetConfig(generator.Config{VariableTemplate: "P({variable})"})
	after := r.Render(generator.KindScalar, generator.FamilyCLike, []string{"x"}, "").String()

	if before == after {
		t.Fatal("SetConfig had no effect")
	}
	if after != "P(x)\n" {
		t.Errorf("after SetConfig got %q", after)
	}
	if r.Config().VariableTemplate != "P({variable})" {
		t.Errorf("Config() = %+v", r.Config())
	}
}

func TestUnknownLanguageFallsBackToCLike(t *testing.T) {
	r := New(generator.Config{})
	for _, kind := range []generator.Kind{generator.KindScalar, generator.KindCollection} {
		t.Run(kind.String(), func(t *testing.T) {
			got := r.RenderLanguage(kind, "haskell", []string{"items"}, "  ")
			want := r.Render(kind, generator.FamilyCLike, []string{"items"}, "  ")
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("fallback mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBatchConcatenatesInOrder(t *testing.T) {
	r := New(generator.Config{})
	names := []string{"b", "a", "c"}

	got := r.Render(generator.KindScalar, generator.FamilyJavaScript, names, "  ").String()

	var want strings.Builder
	for _, n := range names {
		want.WriteString(r.Render(generator.KindScalar, generator.FamilyJavaScript, []string{n}, "  ").String())
	}
	if diff := cmp.Diff(want.String(), got); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestBatchUsesOverride(t *testing.T) {
	r := New(generator.Config{VariableTemplate: "LOG({variable});"})
	got := r.Render(generator.KindScalar, generator.FamilyCLike, []string{"a", "b"}, "\t").String()
	if want := "LOG(a);\n\tLOG(b);\n\t"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderKeepsPerNameSnippets(t *testing.T) {
	r := New(generator.Config{})
	out := r.Render(generator.KindScalar, generator.FamilyScripting, []string{"x", "y"}, "")

	want := &generator.Output{
		Names:    []string{"x", "y"},
		Snippets: []string{"print(f\"x: {x}\")\n", "print(f\"y: {y}\")\n"},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderAfterRegistryReset(t *testing.T) {
	t.Cleanup(func() {
		generator.Reset()
		builtin.Register()
	})

	New(generator.Config{})
	generator.Reset()

	r := New(generator.Config{})
	if got, want := r.Render(generator.KindScalar, generator.FamilyJava, []string{"x"}, "").String(), "System.out.println(\"x: \" + x);\n"; got != want {
		t.Errorf("after re-register got %q, want %q", got, want)
	}

	generator.Reset()
	if got, want := r.Render(generator.KindScalar, generator.FamilyJava, []string{"x"}, "").String(), "std::cout << \"x: \" << x << std::endl;\n"; got != want {
		t.Errorf("empty registry got %q, want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	r := New(generator.Config{})
	if got := r.Render(generator.KindScalar, generator.FamilyCLike, nil, "  ").String(); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestScalarMentionsNameTwice(t *testing.T) {
	r := New(generator.Config{})
	for _, f := range generator.Families {
		t.Run(f.String(), func(t *testing.T) {
			out := r.Render(generator.KindScalar, f, []string{"velocity"}, "").String()
			if n := strings.Count(out, "velocity"); n != 2 {
				t.Errorf("got %d occurrences in %q, want 2", n, out)
			}
		})
	}
}

func TestCLikeCollectionUsesIndexLoop(t *testing.T) {
	r := New(generator.Config{})
	out := r.RenderLanguage(generator.KindCollection, "cpp", []string{"items"}, "    ").String()

	if !strings.Contains(out, "for (int i = 0; i < items.size(); ++i) {") {
		t.Errorf("missing index-based loop header:\n%s", out)
	}
	if !strings.Contains(out, "\n    \tstd::cout << items[i]") {
		t.Errorf("loop body does not reuse outer indent plus a tab:\n%s", out)
	}
}

// TestGolden runs txtar-based render cases from testdata/.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no txtar files found in testdata/")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}

			tc, err := testutil.ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			if *update {
				got, err := renderCase(tc)
				if err != nil {
					t.Fatalf("render: %v", err)
				}
				updated := testutil.UpdateArchive(ar, got)
				if err := os.WriteFile(file, testutil.FormatArchive(updated), 0o644); err != nil {
					t.Fatalf("write golden: %v", err)
				}
				return
			}

			tc.Run(t, renderCase)
		})
	}
}

// renderCase renders a golden case from its directives.
func renderCase(c *testutil.Case) (string, error) {
	kind, ok := generator.ParseKind(c.Directive("kind", "scalar"))
	if !ok {
		return "", fmt.Errorf("unknown kind %q", c.Directive("kind", ""))
	}

	r := New(generator.Config{
		VariableTemplate: c.Directive("variable-template", ""),
		ArrayTemplate:    c.Directive("array-template", ""),
	})
	return r.RenderLanguage(kind, c.Directive("language", ""), c.Names, c.Directive("indent", "")).String(), nil
}
