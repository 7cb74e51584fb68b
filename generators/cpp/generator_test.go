// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScalar(t *testing.T) {
	tests := []struct {
		name   string
		ident  string
		indent string
		want   string
	}{
		{
			name:   "no indent",
			ident:  "x",
			indent: "",
			want:   "std::cout << \"x: \" << x << std::endl;\n",
		},
		{
			name:   "tab indent",
			ident:  "count",
			indent: "\t",
			want:   "std::cout << \"count: \" << count << std::endl;\n\t",
		},
	}

	g := NewGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, g.Scalar(tt.ident, tt.indent)); diff != "" {
				t.Errorf("Scalar mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollection(t *testing.T) {
	want := "std::cout << \"items: \" << std::endl;\n" +
		"    for (int i = 0; i < items.size(); ++i) {\n" +
		"    \tstd::cout << items[i] << \" \";\n" +
		"    }\n" +
		"    std::cout << std::endl;\n" +
		"    "

	got := NewGenerator().Collection("items", "    ")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collection mismatch (-want +got):\n%s", diff)
	}
}
