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

package resolve

import (
	"testing"

	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/symbol"
)

func newCtx() (*Context, *symbol.Interner) {
	in := symbol.NewInterner()
	root := symbol.NewPackage(symbol.Name{}, "", nil)
	return &Context{Interner: in, Root: root, Diags: &diag.Sink{}}, in
}

func newType(in *symbol.Interner, name string, pkg *symbol.Package) *symbol.Type {
	t := symbol.NewType(in.Intern(name), pkg, nil)
	t.ExternalName = name
	if pkg != nil {
		pkg.AddType(name, t)
	}
	return t
}

func TestResolveSimpleNameLocalWinsOverField(t *testing.T) {
	ctx, in := newCtx()
	typ := newType(in, "A", nil)
	field := &symbol.Variable{SimpleName: in.Intern("x"), Owner: typ, Type: symbol.Plain{Sym: typ}}
	typ.AddField(field)

	block := symbol.NewBlock(nil, nil)
	local := &symbol.Variable{SimpleName: in.Intern("x"), Owner: block}
	block.Declare("x", local)

	scope := &Scope{Block: block, Type: typ}
	unit := &Unit{FileName: "A.java"}

	got := ctx.ResolveSimpleName(scope, unit, "x", 0, 1)
	if got.Kind != FoundVariable || got.Variable != local {
		t.Errorf("ResolveSimpleName = %+v, want the local shadowing the field", got)
	}
}

func TestResolveSimpleNameFallsBackToEnclosingTypeField(t *testing.T) {
	ctx, in := newCtx()
	typ := newType(in, "A", nil)
	field := &symbol.Variable{SimpleName: in.Intern("x"), Owner: typ}
	typ.AddField(field)

	scope := &Scope{Type: typ}
	unit := &Unit{FileName: "A.java"}
	got := ctx.ResolveSimpleName(scope, unit, "x", 0, 1)
	if got.Kind != FoundVariable || got.Variable != field {
		t.Errorf("ResolveSimpleName = %+v, want the type's field", got)
	}
}

func TestResolveSimpleNameStaticSingleImport(t *testing.T) {
	ctx, in := newCtx()
	other := newType(in, "Other", nil)
	field := &symbol.Variable{SimpleName: in.Intern("CONST"), Owner: other, Flags: symbol.AccStatic}
	other.AddField(field)

	scope := &Scope{Type: newType(in, "A", nil)}
	unit := &Unit{
		FileName:             "A.java",
		SingleStaticImports:  []SingleStaticImport{{ImportedType: other, MemberName: "CONST"}},
	}
	got := ctx.ResolveSimpleName(scope, unit, "CONST", 0, 1)
	if got.Kind != FoundVariable || got.Variable != field {
		t.Errorf("ResolveSimpleName = %+v, want the statically-imported field", got)
	}
}

func TestResolveSimpleNameAmbiguousOnDemandStaticImport(t *testing.T) {
	ctx, in := newCtx()
	a := newType(in, "A", nil)
	b := newType(in, "B", nil)
	fa := &symbol.Variable{SimpleName: in.Intern("X"), Owner: a, Flags: symbol.AccStatic}
	fb := &symbol.Variable{SimpleName: in.Intern("X"), Owner: b, Flags: symbol.AccStatic}
	a.AddField(fa)
	b.AddField(fb)

	scope := &Scope{Type: newType(in, "C", nil)}
	unit := &Unit{FileName: "C.java", StaticOnDemandImports: []*symbol.Type{a, b}}
	got := ctx.ResolveSimpleName(scope, unit, "X", 0, 1)
	if !got.Ambiguous {
		t.Errorf("ResolveSimpleName = %+v, want Ambiguous for two on-demand static imports of X", got)
	}
}

func TestResolveSimpleNamePackageFallback(t *testing.T) {
	ctx, in := newCtx()
	ctx.Root.Subpackage("com")
	scope := &Scope{Type: newType(in, "A", nil)}
	unit := &Unit{FileName: "A.java"}
	got := ctx.ResolveSimpleName(scope, unit, "com", 0, 1)
	if got.Kind != FoundPackage {
		t.Errorf("ResolveSimpleName = %+v, want FoundPackage for a classpath directory", got)
	}
}

func TestResolveSimpleNameNotFoundSuggestsMisspelling(t *testing.T) {
	ctx, in := newCtx()
	typ := newType(in, "A", nil)
	field := &symbol.Variable{SimpleName: in.Intern("counter"), Owner: typ}
	typ.AddField(field)

	scope := &Scope{Type: typ}
	unit := &Unit{FileName: "A.java"}
	got := ctx.ResolveSimpleName(scope, unit, "countr", 0, 1)
	if got.Kind != NotFound {
		t.Fatalf("ResolveSimpleName = %+v, want NotFound", got)
	}
	diags := ctx.Diags.All()
	if len(diags) != 1 || diags[0].Suggestion != "counter" {
		t.Errorf("diagnostics = %+v, want one suggesting %q", diags, "counter")
	}
}

func TestResolveQualifiedInstanceFieldSubstitutesGenericType(t *testing.T) {
	ctx, in := newCtx()
	stringType := newType(in, "String", nil)
	box := newType(in, "Box", nil)
	tParam := &symbol.TypeParameter{SimpleName: in.Intern("T"), Owner: box}
	box.TypeParameters = []*symbol.TypeParameter{tParam}
	field := &symbol.Variable{SimpleName: in.Intern("v"), Owner: box, Type: symbol.TypeVarRef{Param: tParam}}
	box.AddField(field)

	recv := symbol.RichType(&symbol.Parameterized{Generic: box, Args: []symbol.RichType{symbol.Plain{Sym: stringType}}})
	got := ctx.ResolveInstanceMember(recv, "v", 0, 1, "A.java")
	if got.Kind != FoundVariable {
		t.Fatalf("ResolveInstanceMember = %+v, want FoundVariable", got)
	}
	if got.Variable.Type.Erasure() != stringType {
		t.Errorf("substituted field type erasure = %v, want String", got.Variable.Type.Erasure())
	}
	// The declaring Box.v field itself must be untouched.
	if field.Type.Erasure() == stringType {
		t.Errorf("ResolveInstanceMember mutated the declaring field's own type")
	}
}
