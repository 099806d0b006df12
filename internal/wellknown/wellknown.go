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

// Package wellknown names the handful of java.lang types the semantic
// core must be able to refer to by identity rather than by looking them
// up afresh every time: the eight primitives and their boxed
// counterparts (for overload resolution's boxing/unboxing phases and the
// typer's numeric promotion), java.lang.Object (the universal erasure
// target and the conditional-operator least-upper-bound fallback), and
// java.lang.String (string concatenation). It is the JVM-primitive
// analogue of classreader's ClassFile modeling: a plain, no-codegen
// struct describing exactly the subset JVMS chapter 4 defines for base
// types, which no third-party example imports a library for.
package wellknown

import "github.com/jikesgo/jikesgo/internal/symbol"

// Types holds one *symbol.Type per well-known name, built once per
// compilation and threaded through internal/overload, internal/typecheck,
// and internal/generics so every reference to "int" or "java.lang.Object"
// compares equal by pointer identity.
type Types struct {
	Byte, Short, Char, Int, Long, Float, Double, Boolean, Void *symbol.Type

	BoxedByte, BoxedShort, BoxedChar, BoxedInt, BoxedLong,
	BoxedFloat, BoxedDouble, BoxedBoolean *symbol.Type

	Object, String, Class, Cloneable, Serializable *symbol.Type

	// Throwable, RuntimeException, and Error anchor the checked-vs-
	// unchecked exception distinction spec §4.2's throws-clause
	// processing needs: anything not a subtype of RuntimeException or
	// Error is a checked exception (JLS 11.2).
	Throwable, RuntimeException, Error *symbol.Type

	// NullPseudoType stands for the type of the "null" literal: assignable
	// to any reference type, never itself the erasure of a real
	// declaration (spec §4.4 "null comparable with any reference").
	NullPseudoType *symbol.Type

	primByName   map[string]*symbol.Type
	boxedByPrim  map[*symbol.Type]*symbol.Type
	primByBoxed  map[*symbol.Type]*symbol.Type
}

// Load resolves every well-known type, Object included, against
// javaLang, preferring a
// type the classpath already materialised (so its real superclass/
// interfaces from the classfile reader are used for subtype checks) and
// synthesizing a minimal stand-in only for names the classpath doesn't
// have (e.g. a test's fixture classpath with no real rt.jar). This
// mirrors classreader.Classpath's own lazy-materialize-on-first-use
// posture: nothing here triggers I/O that resolving an ordinary type
// name wouldn't already trigger.
func Load(in *symbol.Interner, javaLang *symbol.Package) *Types {
	t := &Types{
		primByName:  make(map[string]*symbol.Type),
		boxedByPrim: make(map[*symbol.Type]*symbol.Type),
		primByBoxed: make(map[*symbol.Type]*symbol.Type),
	}

	prim := func(name string) *symbol.Type {
		p := symbol.NewType(in.Intern(name), nil, nil)
		p.ExternalName = name
		t.primByName[name] = p
		return p
	}
	t.Byte = prim("byte")
	t.Short = prim("short")
	t.Char = prim("char")
	t.Int = prim("int")
	t.Long = prim("long")
	t.Float = prim("float")
	t.Double = prim("double")
	t.Boolean = prim("boolean")
	t.Void = prim("void")

	resolve := func(simpleName string) *symbol.Type {
		if javaLang != nil {
			if ty := javaLang.Type(simpleName); ty != nil {
				return ty
			}
		}
		synthetic := symbol.NewType(in.Intern(simpleName), javaLang, nil)
		synthetic.ExternalName = simpleName
		if javaLang != nil {
			javaLang.AddType(simpleName, synthetic)
		}
		return synthetic
	}

	t.Object = resolve("Object")
	t.String = resolve("String")
	t.Class = resolve("Class")
	t.Cloneable = resolve("Cloneable")
	t.Serializable = resolve("Serializable")
	t.Throwable = resolve("Throwable")
	t.RuntimeException = resolve("RuntimeException")
	t.Error = resolve("Error")
	if t.RuntimeException.Super == nil {
		t.RuntimeException.Super = t.Throwable
	}
	if t.Error.Super == nil {
		t.Error.Super = t.Throwable
	}
	t.NullPseudoType = symbol.NewType(in.Intern("<null>"), nil, nil)

	t.BoxedByte = resolve("Byte")
	t.BoxedShort = resolve("Short")
	t.BoxedChar = resolve("Character")
	t.BoxedInt = resolve("Integer")
	t.BoxedLong = resolve("Long")
	t.BoxedFloat = resolve("Float")
	t.BoxedDouble = resolve("Double")
	t.BoxedBoolean = resolve("Boolean")

	for prim, boxed := range map[*symbol.Type]*symbol.Type{
		t.Byte: t.BoxedByte, t.Short: t.BoxedShort, t.Char: t.BoxedChar,
		t.Int: t.BoxedInt, t.Long: t.BoxedLong, t.Float: t.BoxedFloat,
		t.Double: t.BoxedDouble, t.Boolean: t.BoxedBoolean,
	} {
		t.boxedByPrim[prim] = boxed
		t.primByBoxed[boxed] = prim
		if boxed.Super == nil {
			boxed.Super = t.Object
		}
	}
	return t
}

// Boxed returns the wrapper type for a primitive, or nil if prim is not
// one of the eight primitives (including void, which has none).
func (t *Types) Boxed(prim *symbol.Type) *symbol.Type { return t.boxedByPrim[prim] }

// Unboxed returns the primitive type a wrapper unboxes to, or nil if
// boxed is not one of the eight wrapper types.
func (t *Types) Unboxed(boxed *symbol.Type) *symbol.Type { return t.primByBoxed[boxed] }

// IsPrimitive reports whether ty is one of the eight primitives (not
// void).
func (t *Types) IsPrimitive(ty *symbol.Type) bool {
	_, ok := t.boxedByPrim[ty]
	return ok
}

// IsNumeric reports whether ty is a primitive numeric type (excludes
// boolean and void).
func (t *Types) IsNumeric(ty *symbol.Type) bool {
	switch ty {
	case t.Byte, t.Short, t.Char, t.Int, t.Long, t.Float, t.Double:
		return true
	}
	return false
}

// wideningRank orders the numeric primitives for Widens: a lower rank
// widens to a higher one, apart from the char cases Widens checks first.
var wideningRank = map[string]int{
	"byte": 0, "short": 1, "char": 1, "int": 2, "long": 3, "float": 4, "double": 5,
}

// Widens reports whether a widens to b (a JLS 5.1.2 widening primitive
// conversion), including a == b (every type "widens" to itself for the
// purpose of applicability testing).
func (t *Types) Widens(a, b *symbol.Type) bool {
	if a == b {
		return true
	}
	if b == t.Char {
		return false // no other primitive widens to char
	}
	ra, aok := wideningRank[a.ExternalName]
	rb, bok := wideningRank[b.ExternalName]
	if !aok || !bok {
		return false
	}
	if a == t.Char && b == t.Short {
		return false // char and short are incomparable despite equal rank
	}
	return ra < rb
}

// BinaryPromote returns the JLS 5.6.2 binary numeric promotion target
// for two already-unboxed numeric operand types.
func (t *Types) BinaryPromote(a, b *symbol.Type) *symbol.Type {
	if a == t.Double || b == t.Double {
		return t.Double
	}
	if a == t.Float || b == t.Float {
		return t.Float
	}
	if a == t.Long || b == t.Long {
		return t.Long
	}
	return t.Int
}

// UnaryPromote returns the JLS 5.6.1 unary numeric promotion target: the
// operand widened to int unless it is already long/float/double.
func (t *Types) UnaryPromote(a *symbol.Type) *symbol.Type {
	switch a {
	case t.Long, t.Float, t.Double:
		return a
	default:
		return t.Int
	}
}
