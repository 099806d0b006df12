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

package ast

import "testing"

// buildSimpleClass builds the tree for:
//   class A { int x; }
// as a parser would report it: innermost ranges first, parents last.
func buildSimpleClass() *Tree {
	b := NewBuilder("A.java")
	b.Add(JavaIdentifierName, 6, 7)  // A
	b.Add(JavaPrimitiveType, 10, 13) // int
	b.Add(JavaIdentifierName, 14, 15) // x
	b.Add(JavaVarDecl, 14, 15)
	b.Add(JavaField, 10, 16)
	b.Add(JavaBody, 8, 18)
	b.Add(JavaClass, 0, 18)
	b.Add(JavaFile, 0, 18)
	return b.Tree()
}

func TestBuilderLinksChildrenInOrder(t *testing.T) {
	tree := buildSimpleClass()
	root := tree.Root()
	if root.Kind() != JavaFile {
		t.Fatalf("root kind = %v, want JavaFile", root.Kind())
	}
	class := root.FirstChildOfType(JavaClass)
	if !class.IsValid() {
		t.Fatal("expected a JavaClass child of the file")
	}
	name := class.FirstChildOfType(JavaIdentifierName)
	if !name.IsValid() {
		t.Fatal("expected class to have an identifier-name child")
	}
	body := class.FirstChildOfType(JavaBody)
	if !body.IsValid() {
		t.Fatal("expected class to have a body")
	}
	field := body.FirstChildOfType(JavaField)
	if !field.IsValid() {
		t.Fatal("expected body to have a field")
	}
	varDecl := field.FirstChildOfType(JavaVarDecl)
	if !varDecl.IsValid() {
		t.Fatal("expected field to have a var decl")
	}
	if got := varDecl.Parent(); !got.Equal(field) {
		t.Errorf("varDecl.Parent() = %v, want field", got.Kind())
	}
	if got := field.NextSibling(); got.IsValid() {
		t.Errorf("field should be the only child of body, got next sibling %v", got.Kind())
	}
}

func TestTextUsesOffsets(t *testing.T) {
	source := "class A { int x; }"
	tree := buildSimpleClass()
	name := tree.Root().FirstChildOfType(JavaClass).FirstChildOfType(JavaIdentifierName)
	if got, want := name.Text(source), "A"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestInvalidNodeIsSafe(t *testing.T) {
	var n Node
	if n.IsValid() {
		t.Fatal("zero Node should be invalid")
	}
	if n.Kind() != NoKind {
		t.Errorf("Kind() of invalid node = %v, want NoKind", n.Kind())
	}
	if n.FirstChild().IsValid() || n.Parent().IsValid() || n.NextSibling().IsValid() {
		t.Error("navigation from an invalid node should yield invalid nodes")
	}
}

func TestOneOfSelector(t *testing.T) {
	sel := OneOf(JavaClassType, JavaPrimitiveType, JavaArrayType)
	for _, k := range []Kind{JavaClassType, JavaPrimitiveType, JavaArrayType} {
		if !sel(k) {
			t.Errorf("OneOf selector should match %v", k)
		}
	}
	if sel(JavaMethod) {
		t.Error("OneOf selector should not match JavaMethod")
	}
}
