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

// RichType is the discriminated generic-surface "Type" of spec §3,
// distinct from *Type (a plain class/interface/enum/array symbol). It is
// a direct port of the variant hierarchy in the Jikes sources'
// paramtype.h (ParameterizedType / WildcardType / ArrayType): every
// variant can compute an Erasure that is a plain *Type, and type
// arguments are themselves RichType values, so generics nest (List<List
// <String>>) without a parallel representation.
//
// Wildcards only ever appear as type arguments of a Parameterized value;
// they are never, themselves, the static type of an expression.
type RichType interface {
	// Erasure returns the plain Type obtained by deleting type arguments
	// and replacing type-parameter references with their first bound.
	Erasure() *Type
	richType()
}

// Plain wraps a Type symbol used without any type arguments (including
// non-generic types, and a generic type used raw).
type Plain struct {
	Sym *Type
}

func (p Plain) Erasure() *Type { return p.Sym }
func (Plain) richType()        {}

// Parameterized is a generic type used with a complete type-argument
// list, e.g. List<String> or Outer<String>.Inner<Integer>.
type Parameterized struct {
	Generic   *Type      // the raw generic type, e.g. List
	Args      []RichType // actual type arguments, e.g. [String]
	Enclosing *Parameterized // non-nil for Outer<X>.Inner<Y>
}

func (p *Parameterized) Erasure() *Type { return p.Generic }
func (*Parameterized) richType()        {}

// TypeArgument returns the i'th type argument.
func (p *Parameterized) TypeArgument(i int) RichType { return p.Args[i] }

// NumTypeArguments returns the number of type arguments.
func (p *Parameterized) NumTypeArguments() int { return len(p.Args) }

// TypeVarRef is a reference to a type parameter in a position where a
// type is expected, e.g. the "T" in "T get()".
type TypeVarRef struct {
	Param *TypeParameter
}

func (t TypeVarRef) Erasure() *Type { return t.Param.ErasedType() }
func (TypeVarRef) richType()        {}

// WildcardKind discriminates the three wildcard forms.
type WildcardKind int

const (
	WildcardUnbounded WildcardKind = iota // ?
	WildcardExtends                       // ? extends Bound
	WildcardSuper                         // ? super Bound
)

// Wildcard represents a wildcard type argument. It must never appear as
// the resolved type of an expression; it is only ever an element of a
// Parameterized's Args.
type Wildcard struct {
	Kind  WildcardKind
	Bound RichType // nil for WildcardUnbounded
}

// Erasure of a ? extends X wildcard is X's erasure; for ? and ? super X
// it is nil, and the caller substitutes java.lang.Object.
func (w Wildcard) Erasure() *Type {
	if w.Kind == WildcardExtends && w.Bound != nil {
		return w.Bound.Erasure()
	}
	return nil // caller substitutes java.lang.Object
}
func (Wildcard) richType() {}

// ArrayOf is an array type with an arbitrary RichType component,
// including a type parameter or another array (multi-dimensional).
type ArrayOf struct {
	Component RichType
}

func (a ArrayOf) Erasure() *Type {
	comp := a.Component.Erasure()
	if comp == nil {
		return nil
	}
	return comp.ArrayType()
}
func (ArrayOf) richType() {}

// Dimensions returns the array nesting depth and innermost non-array
// component, e.g. ArrayOf{ArrayOf{Plain{int}}} -> (2, Plain{int}).
func Dimensions(t RichType) (dims int, component RichType) {
	for {
		a, ok := t.(ArrayOf)
		if !ok {
			return dims, t
		}
		dims++
		t = a.Component
	}
}
