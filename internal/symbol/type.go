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

package symbol

import "sync"

// Type represents a class, interface, enum, or array (spec §3). Source
// types move through header -> members -> complete -> bodies as the
// driver's four passes visit them; external (classpath) types are fully
// materialised the first time anything dereferences them.
type Type struct {
	// identity
	SimpleName   Name
	ExternalName string // e.g. "Outer$Inner" for a nested type

	// containment
	ContainingPackage *Package
	ContainingType    *Type // nil for a top-level type
	Owner             Symbol // Package, *Type, or *Method (for a local/anonymous class)

	// relations
	Super           *Type
	Interfaces      []*Type
	Subtypes        []*Type // back-reference, appended to as subtypes are discovered
	ParamSuper      *Parameterized // set when the super clause used type arguments
	ParamInterfaces []*Parameterized

	Flags Flags

	// own, locally-declared members (declaration order)
	declaredFields      []*Variable
	declaredMethods     []*Method
	declaredNestedTypes []*Type

	// expanded tables, materialised lazily by internal/members and then
	// immutable for the type's lifetime. expandedMu guards the three
	// fields below: SetExpandedTables writes them under it, and
	// HasExpandedTables and the Expanded* getters read them under it --
	// internal/members fans out over many
	// types concurrently, and a shared supertype (e.g. java.lang.Object)
	// can have its closure raced by two of those goroutines at once.
	expandedMu  sync.Mutex
	fieldTable  map[Name]*FieldEntry
	methodTable map[Name][]*Method
	nestedTable map[Name]*NestedEntry

	// generics
	TypeParameters   []*TypeParameter
	GenericSignature string // cached Signature attribute string, if any

	// synthetic pools (spec §3 "synthetic pools", populated by
	// internal/accessors)
	AnonymousTypes          []*Type
	ClassLiteralFields      []*Variable
	Accessors               []*Method
	EnclosingInstanceField  *Variable // this$0; nil for static / top-level types
	CapturedLocals          []*Variable // val$x fields, one per captured local
	LocalConstructorCalls   []*DeferredConstructorCall

	arrayOf        *Type // memoized Type for Component[] where Component == this
	arrayComponent *Type // non-nil iff this Type is itself an array
}

// FieldEntry is the expanded field table's per-name record: the
// preferred (innermost, most-derived) Variable plus any inherited
// declarations of the same name that it shadows.
type FieldEntry struct {
	Preferred *Variable
	Conflicts []*Variable
}

// NestedEntry is the expanded nested-type table's per-name record,
// mirroring FieldEntry.
type NestedEntry struct {
	Preferred *Type
	Conflicts []*Type
}

// DeferredConstructorCall records an invocation of a local/anonymous
// class's constructor made before that class finished processing (so its
// captured-local parameter list was not yet known). internal/accessors
// drains this queue once the class's closure completes, patching in the
// extra arguments the synthesized captures require.
type DeferredConstructorCall struct {
	Method *Method // the (possibly still-growing) constructor being called
	Patch  func(extraArgs []*Variable)
}

// NewType creates a Type symbol with empty tables.
func NewType(simpleName Name, containingPackage *Package, containingType *Type) *Type {
	return &Type{
		SimpleName:        simpleName,
		ContainingPackage: containingPackage,
		ContainingType:    containingType,
	}
}

// Outermost returns the reflexive-transitive containing type with no
// enclosing type (spec §3 invariant).
func (t *Type) Outermost() *Type {
	cur := t
	for cur.ContainingType != nil {
		cur = cur.ContainingType
	}
	return cur
}

// IsGeneric reports whether t declares one or more type parameters.
func (t *Type) IsGeneric() bool { return len(t.TypeParameters) > 0 }

// IsArray reports whether t is a synthesized array type.
func (t *Type) IsArray() bool { return t.arrayComponent != nil }

// ArrayType returns the Type representing t[], creating and memoizing it
// on first use. Every Type (including another array type, for
// multi-dimensional arrays) can be asked for its array type.
func (t *Type) ArrayType() *Type {
	if t.arrayOf != nil {
		return t.arrayOf
	}
	arr := &Type{
		SimpleName:        t.SimpleName,
		ExternalName:      t.ExternalName + "[]",
		ContainingPackage: t.ContainingPackage,
		arrayComponent:    t,
	}
	t.arrayOf = arr
	return arr
}

// ArrayComponent returns the element type of an array Type, or nil if t
// is not an array.
func (t *Type) ArrayComponent() *Type { return t.arrayComponent }

// DeclaredFields, DeclaredMethods, DeclaredNestedTypes return the type's
// own local symbol table, not including inherited members (spec §3
// "members: a local symbol table").
func (t *Type) DeclaredFields() []*Variable   { return t.declaredFields }
func (t *Type) DeclaredMethods() []*Method    { return t.declaredMethods }
func (t *Type) DeclaredNestedTypes() []*Type  { return t.declaredNestedTypes }

func (t *Type) AddField(v *Variable) {
	v.DeclOrder = len(t.declaredFields)
	t.declaredFields = append(t.declaredFields, v)
}

func (t *Type) AddMethod(m *Method) {
	t.declaredMethods = append(t.declaredMethods, m)
}

func (t *Type) AddNestedType(n *Type) {
	t.declaredNestedTypes = append(t.declaredNestedTypes, n)
}

// ExpandedFields, ExpandedMethods, ExpandedNestedTypes expose the lazily
// materialised closure tables. internal/members is the only package that
// writes to them (via SetExpanded*); after that they are read-only, per
// spec §3's "Once constructed they are immutable for the lifetime of the
// type."
func (t *Type) ExpandedFields() map[Name]*FieldEntry {
	t.expandedMu.Lock()
	defer t.expandedMu.Unlock()
	return t.fieldTable
}
func (t *Type) ExpandedMethods() map[Name][]*Method {
	t.expandedMu.Lock()
	defer t.expandedMu.Unlock()
	return t.methodTable
}
func (t *Type) ExpandedNestedTypes() map[Name]*NestedEntry {
	t.expandedMu.Lock()
	defer t.expandedMu.Unlock()
	return t.nestedTable
}

func (t *Type) HasExpandedTables() bool {
	t.expandedMu.Lock()
	defer t.expandedMu.Unlock()
	return t.fieldTable != nil
}

// SetExpandedTables installs t's closure tables, first writer wins: if
// another goroutine already raced this same type to completion (the
// shared-supertype case internal/members.ComputeClosures's doc comment
// describes), this call is a no-op rather than overwriting an
// equally-valid result with a second one.
func (t *Type) SetExpandedTables(fields map[Name]*FieldEntry, methods map[Name][]*Method, nested map[Name]*NestedEntry) {
	t.expandedMu.Lock()
	defer t.expandedMu.Unlock()
	if t.fieldTable != nil {
		return
	}
	t.fieldTable = fields
	t.methodTable = methods
	t.nestedTable = nested
}
