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
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/typeutil"
)

// Argument bundles what InferMethodTypeArgs needs to know about one
// actual argument beyond its static type, for the special cases spec
// §4.3(b) lists (class literals, anonymous classes, array arguments).
type Argument struct {
	Type symbol.RichType

	// ClassLiteralOf is set when this argument is "X.class"; its static
	// type is Class<X>, but for inference purposes X itself is the
	// argument type (spec: "class literals (X.class -> X)").
	ClassLiteralOf *symbol.Type

	// AnonymousImplements is set when this argument is an anonymous
	// class-creation expression implementing a parameterised interface;
	// it is that interface, already resolved with concrete type
	// arguments extracted from the `implements`/`extends` clause (or
	// from inheritance when the creation expression itself had none).
	AnonymousImplements *symbol.Parameterized
}

// InferMethodTypeArgs implements spec §4.3(b): for a call to generic
// method m, infer each of m's own TypeParameters from the actual
// arguments at the formal positions that mention it. Formals beyond
// len(args) (a varargs tail with zero trailing arguments) are ignored,
// matching the overload resolver's own arity handling.
//
// Only type parameters actually used in a formal's declared type are
// inferable this way; a type parameter mentioned solely in the return
// type with no corresponding formal is left unbound (callers fall back
// to the parameter's own bound, or to an explicit type-witness list,
// neither of which this function needs to know about).
func InferMethodTypeArgs(m *symbol.Method, args []Argument) Substitution {
	sub := make(Substitution)
	for i, formal := range m.Formals {
		if i >= len(args) {
			break
		}
		inferOne(formal.Type, args[i], m.TypeParameters, sub)
	}
	return sub
}

// inferOne matches one formal/argument pair, recursing through array
// dimensions (spec: "array arguments whose formal is an array of the
// type parameter (subtract the formal's array dimensions from the
// argument's)") and unwrapping class-literal / anonymous-class special
// cases before falling through to a direct type-parameter bind.
func inferOne(formal symbol.RichType, arg Argument, methodParams []*symbol.TypeParameter, sub Substitution) {
	if formalArr, ok := formal.(symbol.ArrayOf); ok {
		argDims, argComponent := symbol.Dimensions(arg.Type)
		formalDims, formalComponent := symbol.Dimensions(symbol.RichType(formalArr))
		if argDims >= formalDims {
			remaining := argDims - formalDims
			inner := argComponent
			for remaining > 0 {
				inner = symbol.ArrayOf{Component: inner}
				remaining--
			}
			inferOne(formalComponent, Argument{Type: inner}, methodParams, sub)
		}
		return
	}

	tv, ok := formal.(symbol.TypeVarRef)
	if !ok {
		return
	}
	if !belongsTo(tv.Param, methodParams) {
		return // a type parameter of the *class*, not this method call
	}

	switch {
	case arg.ClassLiteralOf != nil:
		sub[tv.Param] = symbol.Plain{Sym: arg.ClassLiteralOf}
	case arg.AnonymousImplements != nil:
		if len(arg.AnonymousImplements.Args) > 0 {
			sub[tv.Param] = arg.AnonymousImplements.Args[0]
		}
	default:
		if _, already := sub[tv.Param]; !already {
			sub[tv.Param] = arg.Type
		} else {
			sub[tv.Param] = lub(sub[tv.Param], arg.Type)
		}
	}
}

func belongsTo(p *symbol.TypeParameter, params []*symbol.TypeParameter) bool {
	for _, mp := range params {
		if mp == p {
			return true
		}
	}
	return false
}

// lub picks a single inferred type when two argument positions both
// constrain the same method type parameter (e.g. "<T> T pick(T a, T b)").
// A full least-upper-bound lattice is out of scope here; if the two
// inferred types are identical erasures, keep the first; otherwise use
// the closest common superclass of the two erasures (class chain only,
// interfaces ignored, as typeutil.CommonSuperclass computes it), and keep
// the first binding when they share none. This stops short of full JLS
// 15.12.2.7 constraint-set resolution.
func lub(a, b symbol.RichType) symbol.RichType {
	if a.Erasure() == b.Erasure() {
		return a
	}
	if c := typeutil.CommonSuperclass(a.Erasure(), b.Erasure()); c != nil {
		return symbol.Plain{Sym: c}
	}
	return a
}

// PropagateReturnType implements the tail of spec §4.3(b): once a call's
// type arguments are inferred, rewrite the method's declared return type
// through them, preserving any array dimensions the declared return type
// carries so "<T> T[] toArray()" infers correctly when T itself is an
// array-free argument.
func PropagateReturnType(m *symbol.Method, sub Substitution) symbol.RichType {
	if m.ReturnType == nil {
		return nil
	}
	return Substitute(m.ReturnType, sub)
}
