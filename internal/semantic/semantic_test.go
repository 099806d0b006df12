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

package semantic

import (
	"context"
	"testing"

	"github.com/jikesgo/jikesgo/internal/resolve"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/typecheck"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

func newFixture(t *testing.T) (*Context, *symbol.Package) {
	t.Helper()
	root := symbol.NewPackage(symbol.Name{}, "", nil)
	javaLang := root.Subpackage("java").Subpackage("lang")
	in := symbol.NewInterner()
	wk := wellknown.Load(in, javaLang)
	c := NewContext(in, nil, wk, root)
	return c, root
}

func declareTopLevel(c *Context, pkg *symbol.Package, name string) *symbol.Type {
	ty := symbol.NewType(c.Interner.Intern(name), pkg, nil)
	ty.ExternalName = name
	pkg.AddType(name, ty)
	return ty
}

func TestProcessHeadersResolvesSuperAndInterface(t *testing.T) {
	c, root := newFixture(t)
	pkg := root.Subpackage("app")
	runnable := declareTopLevel(c, pkg, "Runnable")
	runnable.Flags = symbol.AccInterface

	base := declareTopLevel(c, pkg, "Base")
	sub := declareTopLevel(c, pkg, "Sub")

	unit := &Unit{FileName: "Sub.java", Package: pkg, Resolve: &resolve.Unit{FileName: "Sub.java", Package: pkg}}
	c.DeclareSourceType(unit, sub, "Base", []string{"Runnable"}, 1, 0)
	c.DeclareSourceType(unit, base, "", nil, 1, 0)

	c.ProcessHeaders(unit, sub)
	c.ProcessHeaders(unit, base)

	if sub.Super != base {
		t.Fatalf("sub.Super = %v, want Base", sub.Super)
	}
	if len(sub.Interfaces) != 1 || sub.Interfaces[0] != runnable {
		t.Fatalf("sub.Interfaces = %v, want [Runnable]", sub.Interfaces)
	}
	if base.Super != c.WK.Object {
		t.Fatalf("base.Super = %v, want Object (implicit)", base.Super)
	}
	if !sub.Flags.IsHeaderProcessed() || !base.Flags.IsHeaderProcessed() {
		t.Errorf("expected both types flagged header-processed")
	}
}

func TestProcessHeadersIsIdempotent(t *testing.T) {
	c, root := newFixture(t)
	pkg := root.Subpackage("app")
	base := declareTopLevel(c, pkg, "Base")
	sub := declareTopLevel(c, pkg, "Sub")
	unit := &Unit{FileName: "Sub.java", Package: pkg, Resolve: &resolve.Unit{FileName: "Sub.java", Package: pkg}}
	c.DeclareSourceType(unit, sub, "Base", nil, 1, 0)
	c.DeclareSourceType(unit, base, "", nil, 1, 0)

	c.ProcessHeaders(unit, sub)
	firstSuper := sub.Super
	// A second call must not re-resolve (the pending entry was already
	// drained) nor panic on the already-set state bit.
	c.ProcessHeaders(unit, sub)
	if sub.Super != firstSuper {
		t.Errorf("ProcessHeaders should be a no-op once StateHeaderProcessed is set")
	}
}

func TestProcessMemberHeadersInstallsEnclosingInstanceField(t *testing.T) {
	c, root := newFixture(t)
	pkg := root.Subpackage("app")
	outer := declareTopLevel(c, pkg, "Outer")
	inner := symbol.NewType(c.Interner.Intern("Inner"), pkg, outer)
	inner.ExternalName = "Outer.Inner"
	outer.AddNestedType(inner)
	ctor := &symbol.Method{SimpleName: c.Interner.Intern("<init>"), ContainingType: inner}
	inner.AddMethod(ctor)

	unit := &Unit{FileName: "Outer.java", Package: pkg, Resolve: &resolve.Unit{FileName: "Outer.java", Package: pkg}}
	c.ProcessMemberHeaders(unit, inner)

	if inner.EnclosingInstanceField == nil {
		t.Fatalf("expected this$0 installed on a non-static inner class")
	}
	if len(ctor.Formals) != 1 || ctor.Formals[0].Type.Erasure() != outer {
		t.Fatalf("expected constructor formal prepended with the enclosing type")
	}
}

func TestRunEndToEndTypesAFieldAccess(t *testing.T) {
	c, root := newFixture(t)
	pkg := root.Subpackage("app")
	box := declareTopLevel(c, pkg, "Box")
	field := &symbol.Variable{SimpleName: c.Interner.Intern("value"), Type: symbol.Plain{Sym: c.WK.Int}, Owner: box}
	box.AddField(field)

	unit := &Unit{FileName: "Box.java", Package: pkg, TopLevel: []*symbol.Type{box},
		Resolve: &resolve.Unit{FileName: "Box.java", Package: pkg}}
	c.DeclareSourceType(unit, box, "", nil, 1, 0)

	if err := c.Run(context.Background(), []*Unit{unit}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !box.HasExpandedTables() {
		t.Fatalf("expected Run's third pass to have expanded Box's member tables")
	}

	tx := c.NewTypeContext(&resolve.Scope{Type: box}, unit)
	receiver := typecheck.Typed{Type: symbol.Plain{Sym: box}}
	got := c.TypeFieldAccess(tx, receiver, "value", 1, 0)
	if got.IsNoType() {
		t.Fatalf("expected value's field access to type successfully")
	}
	if got.Type.Erasure() != c.WK.Int {
		t.Errorf("field access type = %v, want int", got.Type.Erasure())
	}
}

func TestTypeMethodCallReportsNoApplicableMethod(t *testing.T) {
	c, root := newFixture(t)
	pkg := root.Subpackage("app")
	box := declareTopLevel(c, pkg, "Box")
	m := &symbol.Method{
		SimpleName:     c.Interner.Intern("set"),
		ContainingType: box,
		ReturnType:     symbol.Plain{Sym: c.WK.Void},
		Formals:        []*symbol.Variable{{SimpleName: c.Interner.Intern("v"), Type: symbol.Plain{Sym: c.WK.Int}}},
	}
	box.AddMethod(m)

	unit := &Unit{FileName: "Box.java", Package: pkg, Resolve: &resolve.Unit{FileName: "Box.java", Package: pkg}}
	tx := c.NewTypeContext(&resolve.Scope{Type: box}, unit)

	args := []typecheck.Typed{{Type: symbol.Plain{Sym: c.WK.String}}}
	result := c.TypeMethodCall(tx, "set", []*symbol.Method{m}, symbol.Plain{Sym: box}, args, 1, 0)
	if !result.Typed.IsNoType() {
		t.Errorf("expected no_type for an inapplicable call")
	}
	if !c.Diags.HasErrors() {
		t.Errorf("expected a no-applicable-method diagnostic to be recorded")
	}
}
