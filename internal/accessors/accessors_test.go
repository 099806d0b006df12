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

package accessors

import (
	"testing"

	"github.com/jikesgo/jikesgo/internal/symbol"
)

func newType(in *symbol.Interner, name string) *symbol.Type {
	t := symbol.NewType(in.Intern(name), nil, nil)
	t.ExternalName = name
	return t
}

func TestFieldReadAccessorDedup(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	owner := newType(in, "Outer")
	field := &symbol.Variable{SimpleName: in.Intern("x"), Type: symbol.Plain{Sym: owner}, Owner: owner}

	a1 := s.FieldReadAccessor(field)
	a2 := s.FieldReadAccessor(field)
	if a1 != a2 {
		t.Errorf("FieldReadAccessor should return the same accessor on a repeated request")
	}
	if !a1.Flags.IsStatic() || !a1.Flags.IsSynthetic() {
		t.Errorf("field read accessor flags = %v, want static+synthetic", a1.Flags)
	}
	if a1.Arity() != 1 {
		t.Errorf("instance field read accessor arity = %d, want 1 (qualifying instance)", a1.Arity())
	}
	if len(owner.DeclaredMethods()) != 1 {
		t.Errorf("accessor should be registered on owner's declared methods")
	}
}

func TestFieldReadAccessorStaticFieldNoQualifyingParam(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	owner := newType(in, "Outer")
	field := &symbol.Variable{SimpleName: in.Intern("x"), Type: symbol.Plain{Sym: owner}, Owner: owner, Flags: symbol.AccStatic}

	a := s.FieldReadAccessor(field)
	if a.Arity() != 0 {
		t.Errorf("static field read accessor arity = %d, want 0", a.Arity())
	}
}

func TestFieldWriteAccessorDistinctFromRead(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	owner := newType(in, "Outer")
	field := &symbol.Variable{SimpleName: in.Intern("x"), Type: symbol.Plain{Sym: owner}, Owner: owner}

	read := s.FieldReadAccessor(field)
	write := s.FieldWriteAccessor(field)
	if read == write {
		t.Errorf("read and write accessors must be distinct methods")
	}
	if write.Arity() != 2 {
		t.Errorf("instance field write accessor arity = %d, want 2 (instance, value)", write.Arity())
	}
	if write.ReturnType != nil {
		t.Errorf("write accessor return type = %v, want nil (void)", write.ReturnType)
	}
}

func TestMethodReadAccessorForwardsFormals(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	owner := newType(in, "Outer")
	intType := newType(in, "int")
	m := &symbol.Method{
		SimpleName:     in.Intern("m"),
		ContainingType: owner,
		ReturnType:     symbol.Plain{Sym: intType},
		Formals: []*symbol.Variable{
			{SimpleName: in.Intern("p"), Type: symbol.Plain{Sym: intType}},
		},
	}
	accessor := s.MethodReadAccessor(m, owner)
	if accessor.Arity() != 2 {
		t.Fatalf("method read accessor arity = %d, want 2 (instance + forwarded formal)", accessor.Arity())
	}
	if accessor.ReturnType != m.ReturnType {
		t.Errorf("method read accessor return type mismatch")
	}
}

func TestConstructorReadAccessorAddsPlaceholderAndDistinctSignature(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	owner := newType(in, "Outer")
	ctor := &symbol.Method{SimpleName: in.Intern("<init>"), ContainingType: owner}

	accessor := s.ConstructorReadAccessor(ctor)
	if accessor.Arity() != 1 {
		t.Fatalf("no-arg constructor's accessor arity = %d, want 1 (placeholder)", accessor.Arity())
	}
	if accessor.Flags.IsStatic() {
		t.Errorf("constructor accessor should be instance, not static")
	}
	markerType := accessor.Formals[0].Type.Erasure()
	if markerType == owner {
		t.Errorf("placeholder marker type must differ from the constructor's own owner type")
	}
}

func TestEnsureEnclosingInstanceFieldPrependsFormal(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	outer := newType(in, "Outer")
	inner := newType(in, "Inner")
	intType := newType(in, "int")
	ctor := &symbol.Method{
		SimpleName:     in.Intern("<init>"),
		ContainingType: inner,
		Formals:        []*symbol.Variable{{SimpleName: in.Intern("p"), Type: symbol.Plain{Sym: intType}, LocalSlot: 0}},
	}
	inner.AddMethod(ctor)

	s.EnsureEnclosingInstanceField(inner, outer)
	if inner.EnclosingInstanceField == nil {
		t.Fatalf("this$0 field not installed")
	}
	if len(ctor.Formals) != 2 {
		t.Fatalf("constructor formals = %d, want 2 (this$0 + p)", len(ctor.Formals))
	}
	if ctor.Formals[0].Type.Erasure() != outer {
		t.Errorf("prepended formal type = %v, want Outer", ctor.Formals[0].Type.Erasure())
	}
	if ctor.Formals[1].LocalSlot != 1 {
		t.Errorf("original formal's slot = %d, want shifted to 1", ctor.Formals[1].LocalSlot)
	}

	// second request returns the same field and does not re-prepend
	again := s.EnsureEnclosingInstanceField(inner, outer)
	if again != inner.EnclosingInstanceField {
		t.Errorf("EnsureEnclosingInstanceField should be idempotent")
	}
	if len(ctor.Formals) != 2 {
		t.Errorf("repeated call should not re-prepend a formal, got %d formals", len(ctor.Formals))
	}
}

func TestCaptureLocalAppendsConstructorFormal(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	localClass := newType(in, "Local")
	intType := newType(in, "int")
	ctor := &symbol.Method{SimpleName: in.Intern("<init>"), ContainingType: localClass}
	localClass.AddMethod(ctor)

	local := &symbol.Variable{SimpleName: in.Intern("n"), Type: symbol.Plain{Sym: intType}}
	field := s.CaptureLocal(localClass, local)
	if field.SimpleName.String() != "val$n" {
		t.Errorf("captured field name = %q, want val$n", field.SimpleName.String())
	}
	if len(ctor.Formals) != 1 {
		t.Fatalf("constructor formals = %d, want 1 (the captured value)", len(ctor.Formals))
	}

	again := s.CaptureLocal(localClass, local)
	if again != field {
		t.Errorf("CaptureLocal should dedup on the same local")
	}
	if len(ctor.Formals) != 1 {
		t.Errorf("repeated capture should not append a second formal, got %d", len(ctor.Formals))
	}
}

func TestDrainDeferredConstructorCallsPatchesAndClears(t *testing.T) {
	in := symbol.NewInterner()
	localClass := newType(in, "Local")
	var patchedWith []*symbol.Variable
	localClass.LocalConstructorCalls = []*symbol.DeferredConstructorCall{
		{Patch: func(extra []*symbol.Variable) { patchedWith = extra }},
	}
	captured := &symbol.Variable{SimpleName: in.Intern("val$n")}
	DrainDeferredConstructorCalls(localClass, []*symbol.Variable{captured})

	if len(patchedWith) != 1 || patchedWith[0] != captured {
		t.Errorf("deferred call was not patched with the captured field")
	}
	if localClass.LocalConstructorCalls != nil {
		t.Errorf("queue should be cleared after draining")
	}
}

func TestAnonymousDefaultConstructorWithEnclosingBase(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	anon := newType(in, "Outer$1")
	superType := newType(in, "Super")
	intType := newType(in, "int")
	superCtor := &symbol.Method{
		SimpleName:     in.Intern("<init>"),
		ContainingType: superType,
		Formals:        []*symbol.Variable{{SimpleName: in.Intern("p"), Type: symbol.Plain{Sym: intType}}},
	}
	enclosing := newType(in, "Outer")

	ctor := s.AnonymousDefaultConstructor(anon, superCtor, enclosing)
	if ctor.Arity() != 2 {
		t.Fatalf("anonymous constructor arity = %d, want 2 (enclosing instance + forwarded super formal)", ctor.Arity())
	}
	if ctor.Formals[0].Type.Erasure() != enclosing {
		t.Errorf("first formal should be the enclosing-instance base")
	}
	if ctor.Formals[1].Type.Erasure() != intType {
		t.Errorf("second formal should forward the super constructor's formal type")
	}
}

func TestAnonymousDefaultConstructorNoEnclosingBase(t *testing.T) {
	in := symbol.NewInterner()
	s := NewSynthesizer(in)
	anon := newType(in, "Outer$2")
	ctor := s.AnonymousDefaultConstructor(anon, nil, nil)
	if ctor.Arity() != 0 {
		t.Errorf("interface-implementing anonymous class's default constructor arity = %d, want 0", ctor.Arity())
	}
}
