// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package luamod provides the dbgprint module for Lua hosts.
//
//	local d = require("dbgprint")
//	d.record(d.sanitize('"total",'))
//	print(d.render(d.SCALAR, "python", d.snapshot(), "    "))
package luamod

import (
	"context"
	"fmt"
	"io"

	lua "github.com/yuin/gopher-lua"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/ident"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "dbgprint"

// Module implements the dbgprint Lua module on top of a Service.
type Module struct {
	svc *command.Service
}

// NewModule creates a module backed by svc.
func NewModule(svc *command.Service) *Module {
	return &Module{svc: svc}
}

// Preload makes the module available to require in L.
func (m *Module) Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, m.Loader)
}

// Loader builds the module table.
func (m *Module) Loader(L *lua.LState) int {
	mod := L.NewTable()

	L.SetField(mod, "sanitize", L.NewFunction(m.sanitize))
	L.SetField(mod, "record", L.NewFunction(m.record))
	L.SetField(mod, "snapshot", L.NewFunction(m.snapshot))
	L.SetField(mod, "render", L.NewFunction(m.render))

	L.SetField(mod, "SCALAR", lua.LString(generator.KindScalar.String()))
	L.SetField(mod, "COLLECTION", lua.LString(generator.KindCollection.String()))

	L.Push(mod)
	return 1
}

// sanitize(text) -> string|nil
func (m *Module) sanitize(L *lua.LState) int {
	name := ident.Sanitize(L.CheckString(1))
	if name == "" {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(name))
	return 1
}

// record(text) -> name|nil, err
// Sanitizes text and records the result in the buffer.
func (m *Module) record(L *lua.LState) int {
	text := L.CheckString(1)
	name, err := m.svc.TrackCopy(contextOf(L), command.Request{Editor: &host.Capture{Selected: text}})
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(name))
	return 1
}

// snapshot() -> table
// Returns the buffered names as an array, most recent first.
func (m *Module) snapshot(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range m.svc.Snapshot() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// render(kind, language, name_or_table, indent?) -> string
func (m *Module) render(L *lua.LState) int {
	kind, ok := generator.ParseKind(L.CheckString(1))
	if !ok {
		L.ArgError(1, "kind must be dbgprint.SCALAR or dbgprint.COLLECTION")
		return 0
	}
	language := L.CheckString(2)
	indent := L.OptString(4, "")

	var names []string
	switch v := L.CheckAny(3).(type) {
	case lua.LString:
		names = []string{string(v)}
	case *lua.LTable:
		v.ForEach(func(_, value lua.LValue) {
			names = append(names, value.String())
		})
	default:
		L.ArgError(3, "name must be a string or an array of strings")
		return 0
	}
	for _, n := range names {
		if !ident.Valid(n) {
			L.ArgError(3, fmt.Sprintf("%q is not an identifier", n))
			return 0
		}
	}

	L.Push(lua.LString(m.svc.Renderer().RenderLanguage(kind, language, names, indent).String()))
	return 1
}

func contextOf(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.LoadLibName, lua.OpenPackage},
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// fileLoaders are base functions that read scripts from disk.
var fileLoaders = []string{"dofile", "loadfile"}

// NewState creates a Lua state with the safe standard libraries and the
// module preloaded. io, os and debug are left closed, and scripts cannot
// load other files.
func NewState(ctx context.Context, svc *command.Service) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range fileLoaders {
		L.SetGlobal(name, lua.LNil)
	}
	// require only resolves preloaded modules.
	if loaders, ok := L.GetField(L.Get(lua.RegistryIndex), "_LOADERS").(*lua.LTable); ok {
		for i := loaders.Len(); i > 1; i-- {
			loaders.RawSetInt(i, lua.LNil)
		}
	}
	L.SetContext(ctx)
	NewModule(svc).Preload(L)
	return L
}

// Run executes a script read from r. name labels the chunk in errors.
func Run(ctx context.Context, svc *command.Service, name string, r io.Reader) error {
	L := NewState(ctx, svc)
	defer L.Close()

	fn, err := L.Load(r, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}
