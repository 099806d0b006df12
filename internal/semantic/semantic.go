// Copyright 2018 The Jadep Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package semantic is the four-pass driver of spec §5: type headers,
// then member headers (capture/accessor scaffolding), then the
// symbol-table closures of internal/members, then executable bodies. It
// owns the cross-file state spec §9 calls out as "global mutable
// state" -- the name interner, the classpath, the diagnostics sink, and
// the stack of compilation units currently being processed -- the way
// jadeplib.Config bundles a single run's shared dependencies and
// jadeplib.MissingDeps threads a context.Context through every stage
// that might block on I/O.
package semantic

import (
	"context"

	"github.com/jikesgo/jikesgo/internal/accessors"
	"github.com/jikesgo/jikesgo/internal/classreader"
	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/members"
	"github.com/jikesgo/jikesgo/internal/overload"
	"github.com/jikesgo/jikesgo/internal/resolve"
	"github.com/jikesgo/jikesgo/internal/semlog"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

// Config is the set of inputs a single compilation run is configured
// with, mirroring jadeplib.Config's role as the one struct every stage
// of a run is handed.
type Config struct {
	Classpath []string // directories and jars, in search order
}

// Context bundles the state that outlives any one compilation unit: the
// name interner every Type/Variable/Method in this run shares, the
// classpath used to materialise types that are not part of the source
// set, the diagnostics sink every pass appends to, and the well-known
// primitive/boxed-type table. It is the "global mutable state" spec §9
// calls for, deliberately not a package-level singleton so that two
// independent compilations (e.g. concurrent test runs) never share it.
type Context struct {
	Interner  *symbol.Interner
	Classpath *classreader.Classpath
	Diags     *diag.Sink
	WK        *wellknown.Types
	Root      *symbol.Package

	Resolve   *resolve.Context
	Overload  *overload.Resolver
	Accessors *accessors.Synthesizer

	// units currently on the processing stack, innermost last, so a
	// diagnostic raised deep in a nested-type's body pass can still
	// report which top-level compilation unit it belongs to (spec §9:
	// "a stack of compilation units currently being processed").
	unitStack []*Unit

	pending map[*symbol.Type]*pendingHeader
}

// NewContext creates a Context for one compilation run. in must be the
// same Interner wk was loaded with (wellknown.Load) and that root's
// types will be interned through: a Name's identity is tied to the
// Interner that produced it, so mixing two Interners across the tables
// this Context builds would make lookups silently fail to match.
func NewContext(in *symbol.Interner, cp *classreader.Classpath, wk *wellknown.Types, root *symbol.Package) *Context {
	diags := &diag.Sink{}
	c := &Context{
		Interner:  in,
		Classpath: cp,
		Diags:     diags,
		WK:        wk,
		Root:      root,
		Resolve:   &resolve.Context{Interner: in, Root: root, Diags: diags, WK: wk},
		Overload:  &overload.Resolver{WK: wk},
		Accessors: accessors.NewSynthesizer(in),
		pending:   make(map[*symbol.Type]*pendingHeader),
	}
	return c
}

// Unit is one compilation unit (one source file): its package/import
// environment for name resolution, and the top-level types it declares.
// internal/ast's Tree for this file, once a parser exists to populate
// it, hangs off Tree; the body pass walks it to find the expressions
// and statements that need typing.
type Unit struct {
	FileName string
	Package  *symbol.Package
	Resolve  *resolve.Unit
	TopLevel []*symbol.Type
	Tree     interface{} // *ast.Tree, kept untyped here to avoid a hard dependency cycle on a future grammar-specific walker
}

func (c *Context) pushUnit(u *Unit) { c.unitStack = append(c.unitStack, u) }
func (c *Context) popUnit()         { c.unitStack = c.unitStack[:len(c.unitStack)-1] }

// CurrentUnit returns the innermost compilation unit on the processing
// stack, or nil if none is active.
func (c *Context) CurrentUnit() *Unit {
	if len(c.unitStack) == 0 {
		return nil
	}
	return c.unitStack[len(c.unitStack)-1]
}

// AllTypes flattens every top-level type (and, transitively, their
// declared nested types) across units into one slice, the shape
// internal/members.ComputeClosures and the header/member passes below
// iterate over.
func AllTypes(units []*Unit) []*symbol.Type {
	var out []*symbol.Type
	var walk func(t *symbol.Type)
	walk = func(t *symbol.Type) {
		out = append(out, t)
		for _, n := range t.DeclaredNestedTypes() {
			walk(n)
		}
	}
	for _, u := range units {
		for _, t := range u.TopLevel {
			walk(t)
		}
	}
	return out
}

// Run executes the full four-pass pipeline over units in source order,
// per spec §5's "strict left-to-right declaration-order visitation
// within a compilation unit." Passes 1, 2 and 4 record what they find as
// diagnostics and carry every unit through (pass 1 flags a type whose
// supertypes cannot be resolved symbol.StateBad). An error from pass 3,
// members.ComputeClosures, ends the whole run: Run returns it and no
// unit reaches pass 4.
func (c *Context) Run(ctx context.Context, units []*Unit) error {
	semlog.V(1).Printf("semantic: pass 1 (headers) over %d units", len(units))
	for _, u := range units {
		c.pushUnit(u)
		for _, t := range u.TopLevel {
			c.ProcessHeaders(u, t)
		}
		c.popUnit()
	}

	semlog.V(1).Printf("semantic: pass 2 (member headers)")
	types := AllTypes(units)
	for _, u := range units {
		c.pushUnit(u)
		for _, t := range u.TopLevel {
			c.processMemberHeadersRecursive(u, t)
		}
		c.popUnit()
	}

	semlog.V(1).Printf("semantic: pass 3 (symbol-table closures) over %d types", len(types))
	if err := members.ComputeClosures(ctx, types); err != nil {
		return err
	}

	semlog.V(1).Printf("semantic: pass 4 (bodies)")
	for _, u := range units {
		c.pushUnit(u)
		for _, t := range u.TopLevel {
			c.ProcessBodies(u, t)
		}
		c.popUnit()
	}
	return nil
}

func (c *Context) processMemberHeadersRecursive(u *Unit, t *symbol.Type) {
	c.ProcessMemberHeaders(u, t)
	for _, n := range t.DeclaredNestedTypes() {
		c.processMemberHeadersRecursive(u, n)
	}
}

