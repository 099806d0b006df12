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

package generics

import (
	"testing"

	"github.com/jikesgo/jikesgo/internal/symbol"
)

func newType(in *symbol.Interner, name string) *symbol.Type {
	t := symbol.NewType(in.Intern(name), nil, nil)
	t.ExternalName = name
	return t
}

// TestInheritedMemberTypeSubstitutesThroughSuperclass builds:
//
//	class Box<T> { T v; }
//	class StringBox extends Box<String> {}
//
// and checks that v's declared type T resolves to String when accessed
// through a StringBox receiver.
func TestInheritedMemberTypeSubstitutesThroughSuperclass(t *testing.T) {
	in := symbol.NewInterner()
	stringType := newType(in, "String")
	box := newType(in, "Box")
	tParam := &symbol.TypeParameter{SimpleName: in.Intern("T"), Owner: box, Index: 0}
	box.TypeParameters = []*symbol.TypeParameter{tParam}
	field := &symbol.Variable{SimpleName: in.Intern("v"), Owner: box, Type: symbol.TypeVarRef{Param: tParam}}
	box.AddField(field)

	stringBox := newType(in, "StringBox")
	stringBox.Super = box
	stringBox.ParamSuper = &symbol.Parameterized{Generic: box, Args: []symbol.RichType{symbol.Plain{Sym: stringType}}}

	recv := symbol.RichType(symbol.Plain{Sym: stringBox})
	got := InheritedMemberType(recv, box, field.Type)
	if got.Erasure() != stringType {
		t.Errorf("InheritedMemberType = %#v, want erasure String", got)
	}
}

// TestInheritedMemberTypeUnrelatedDeclaringTypeIsUnchanged checks that a
// member declared on a type not reachable via any parameterised link
// (e.g. declared directly on the raw receiver) is returned unchanged.
func TestInheritedMemberTypeUnrelatedDeclaringTypeIsUnchanged(t *testing.T) {
	in := symbol.NewInterner()
	other := newType(in, "Other")
	plain := newType(in, "Plain")
	field := &symbol.Variable{SimpleName: in.Intern("x"), Owner: plain, Type: symbol.Plain{Sym: other}}

	recv := symbol.RichType(symbol.Plain{Sym: plain})
	got := InheritedMemberType(recv, plain, field.Type)
	if got != field.Type {
		t.Errorf("InheritedMemberType changed an unrelated member's type: got %#v, want unchanged %#v", got, field.Type)
	}
}

// TestInferMethodTypeArgsSimple checks "<T> T pick(T a, T b)" called as
// pick("x", "y") infers T=String.
func TestInferMethodTypeArgsSimple(t *testing.T) {
	in := symbol.NewInterner()
	stringType := newType(in, "String")
	container := newType(in, "Container")
	tParam := &symbol.TypeParameter{SimpleName: in.Intern("T"), Owner: nil, Index: 0}
	m := &symbol.Method{
		SimpleName:     in.Intern("pick"),
		ContainingType: container,
		ReturnType:     symbol.TypeVarRef{Param: tParam},
		TypeParameters: []*symbol.TypeParameter{tParam},
		Formals: []*symbol.Variable{
			{SimpleName: in.Intern("a"), Type: symbol.TypeVarRef{Param: tParam}},
			{SimpleName: in.Intern("b"), Type: symbol.TypeVarRef{Param: tParam}},
		},
	}
	tParam.Owner = m

	args := []Argument{{Type: symbol.Plain{Sym: stringType}}, {Type: symbol.Plain{Sym: stringType}}}
	sub := InferMethodTypeArgs(m, args)
	ret := PropagateReturnType(m, sub)
	if ret.Erasure() != stringType {
		t.Errorf("inferred return type erasure = %v, want String", ret.Erasure())
	}
}

// TestInferMethodTypeArgsArrayFormal checks "<T> void each(T[] xs)"
// called with a String[] infers T=String (spec: subtract the formal's
// array dimensions from the argument's).
func TestInferMethodTypeArgsArrayFormal(t *testing.T) {
	in := symbol.NewInterner()
	stringType := newType(in, "String")
	container := newType(in, "Container")
	tParam := &symbol.TypeParameter{SimpleName: in.Intern("T"), Index: 0}
	m := &symbol.Method{
		SimpleName:     in.Intern("each"),
		ContainingType: container,
		TypeParameters: []*symbol.TypeParameter{tParam},
		Formals: []*symbol.Variable{
			{SimpleName: in.Intern("xs"), Type: symbol.ArrayOf{Component: symbol.TypeVarRef{Param: tParam}}},
		},
	}
	tParam.Owner = m

	args := []Argument{{Type: symbol.ArrayOf{Component: symbol.Plain{Sym: stringType}}}}
	sub := InferMethodTypeArgs(m, args)
	if sub[tParam].Erasure() != stringType {
		t.Errorf("inferred T erasure = %v, want String", sub[tParam].Erasure())
	}
}

// TestCloneReturnTypeIsReceiverArrayType checks the array.clone() special
// case: its resolved return type is the array's own type, not Object.
func TestCloneReturnTypeIsReceiverArrayType(t *testing.T) {
	in := symbol.NewInterner()
	stringType := newType(in, "String")
	arrType := stringType.ArrayType()
	recv := symbol.RichType(symbol.Plain{Sym: arrType})

	got, ok := CloneReturnType(recv, "clone")
	if !ok {
		t.Fatalf("CloneReturnType: ok = false, want true for array receiver")
	}
	if got.Erasure() != arrType {
		t.Errorf("CloneReturnType erasure = %v, want %v", got.Erasure(), arrType)
	}
}

func TestCloneReturnTypeNonArrayReceiverIsUnaffected(t *testing.T) {
	in := symbol.NewInterner()
	plain := newType(in, "Plain")
	recv := symbol.RichType(symbol.Plain{Sym: plain})
	if _, ok := CloneReturnType(recv, "clone"); ok {
		t.Errorf("CloneReturnType on non-array receiver: ok = true, want false")
	}
}
