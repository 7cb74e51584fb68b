// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render turns identifiers into debug-print snippets.
//
// A Renderer applies the user's override templates when they are set and
// otherwise delegates to the built-in generator of the requested family.
// Rendering never blocks and never fails; an empty identifier list renders
// to the empty string.
package render

import (
	"strings"
	"sync"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/generators/builtin"
	"github.com/albertocavalcante/dbgprint/generators/cpp"
)

// Renderer renders snippets using the configured override templates.
type Renderer struct {
	mu  sync.RWMutex
	cfg generator.Config
}

// New creates a Renderer. The built-in generators are registered on first use.
func New(cfg generator.Config) *Renderer {
	builtin.Register()
	return &Renderer{cfg: cfg}
}

// Config returns the current configuration.
func (r *Renderer) Config() generator.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// SetConfig replaces the override templates, e.g. after a config reload.
func (r *Renderer) SetConfig(cfg generator.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

// Render renders every name with the given kind and family. The snippets keep
// the order of names; Output.String joins them for insertion.
func (r *Renderer) Render(kind generator.Kind, family generator.Family, names []string, indent string) *generator.Output {
	cfg := r.Config()
	out := generator.NewOutput()
	for _, name := range names {
		out.Add(name, renderOne(cfg, kind, family, name, indent))
	}
	return out
}

// RenderLanguage resolves an editor language id and renders names.
// Unknown ids render exactly like the C-like family.
func (r *Renderer) RenderLanguage(kind generator.Kind, languageID string, names []string, indent string) *generator.Output {
	family, _ := generator.ResolveFamily(languageID)
	return r.Render(kind, family, names, indent)
}

func renderOne(cfg generator.Config, kind generator.Kind, family generator.Family, name, indent string) string {
	if tmpl, placeholder := cfg.Override(kind); tmpl != "" {
		return strings.ReplaceAll(tmpl, placeholder, name) + "\n" + indent
	}

	g := generatorFor(family)
	switch kind {
	case generator.KindCollection:
		return g.Collection(name, indent)
	default:
		return g.Scalar(name, indent)
	}
}

// generatorFor returns the registered generator for family. A registry that
// lacks the family falls back to the registered C-like generator, and an
// empty one to a fresh C-like generator.
func generatorFor(family generator.Family) generator.Generator {
	if g, ok := generator.Get(family); ok {
		return g
	}
	if g, ok := generator.Get(generator.FamilyCLike); ok {
		return g
	}
	return cpp.NewGenerator()
}
