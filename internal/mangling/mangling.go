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

// Package mangling synthesizes the two string encodings the JVM class
// file format needs for every member: the erased descriptor (JVMS
// 4.3.2/4.3.3) and, for a generic declaration, the Signature attribute
// string (JVMS 4.7.9.1). It is a direct port of the Jikes sources'
// paramtype.cpp GenerateSignature family, rewritten against a Go
// strings.Builder instead of a fixed-size char buffer with a manual
// length cursor.
package mangling

import (
	"strings"

	"github.com/jikesgo/jikesgo/internal/symbol"
)

// Erased returns the JVM field/type descriptor for t with every generic
// type argument stripped, e.g. java.util.List<String> -> "Ljava/util/List;".
func Erased(t symbol.RichType) string {
	var b strings.Builder
	writeErased(&b, t)
	return b.String()
}

func writeErased(b *strings.Builder, t symbol.RichType) {
	erasure := t.Erasure()
	if erasure == nil {
		// Wildcards and unbounded type variables with no recorded bound
		// erase to java.lang.Object; the caller is expected to resolve
		// that symbol once (see symbol.TypeParameter.ErasedType's doc).
		b.WriteString("Ljava/lang/Object;")
		return
	}
	writeErasedType(b, erasure)
}

func writeErasedType(b *strings.Builder, t *symbol.Type) {
	if comp := t.ArrayComponent(); comp != nil {
		b.WriteByte('[')
		writeErasedType(b, comp)
		return
	}
	if prim, ok := primitiveDescriptor(t); ok {
		b.WriteString(prim)
		return
	}
	b.WriteByte('L')
	writeInternalName(b, t)
	b.WriteByte(';')
}

func writeInternalName(b *strings.Builder, t *symbol.Type) {
	parts := qualifiedNameParts(t)
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(p)
	}
}

// qualifiedNameParts returns t's package path followed by one last part
// that joins the ExternalName of each enclosing type and of t with '$',
// outermost first, e.g. ["java", "util", "Map$Entry"] for java.util.Map.Entry
// when those ExternalNames are "Map" and "Entry"; the internal name joins
// the parts with '/'.
func qualifiedNameParts(t *symbol.Type) []string {
	var nesting []string
	for cur := t; cur != nil; cur = cur.ContainingType {
		nesting = append([]string{cur.ExternalName}, nesting...)
	}
	var pkgParts []string
	if t.ContainingPackage != nil && t.ContainingPackage.Dotted != "" {
		pkgParts = strings.Split(t.ContainingPackage.Dotted, ".")
	}
	return append(pkgParts, strings.Join(nesting, "$"))
}

func primitiveDescriptor(t *symbol.Type) (string, bool) {
	switch t.ExternalName {
	case "byte":
		return "B", true
	case "char":
		return "C", true
	case "double":
		return "D", true
	case "float":
		return "F", true
	case "int":
		return "I", true
	case "long":
		return "J", true
	case "short":
		return "S", true
	case "boolean":
		return "Z", true
	case "void":
		return "V", true
	}
	return "", false
}

// MethodDescriptor returns the erased JVM method descriptor for formals
// with the given return type (nil for a constructor or void method that
// the caller represents separately).
func MethodDescriptor(formals []symbol.RichType, ret symbol.RichType) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, f := range formals {
		writeErased(&b, f)
	}
	b.WriteByte(')')
	if ret == nil {
		b.WriteByte('V')
	} else {
		writeErased(&b, ret)
	}
	return b.String()
}

// Signature returns the JVMS 4.7.9.1 generic Signature attribute string
// for t. A Plain type, which carries no type arguments, is written as its
// erased descriptor (e.g. "Ljava/lang/String;").
func Signature(t symbol.RichType) string {
	var b strings.Builder
	writeSignature(&b, t)
	return b.String()
}

func writeSignature(b *strings.Builder, t symbol.RichType) {
	switch v := t.(type) {
	case symbol.Plain:
		writeErasedType(b, v.Sym)

	case *symbol.Parameterized:
		// Format: L<classname><TypeArguments>; - paramtype.cpp
		// ParameterizedType::GenerateSignature.
		if v.Enclosing != nil {
			writeSignature(b, v.Enclosing)
			b.WriteByte('.')
			b.WriteString(v.Generic.ExternalName)
		} else {
			b.WriteByte('L')
			writeInternalName(b, v.Generic)
		}
		if len(v.Args) > 0 {
			b.WriteByte('<')
			for _, a := range v.Args {
				writeSignature(b, a)
			}
			b.WriteByte('>')
		}
		b.WriteByte(';')

	case symbol.TypeVarRef:
		b.WriteByte('T')
		b.WriteString(v.Param.SimpleName.String())
		b.WriteByte(';')

	case symbol.Wildcard:
		// ? -> *, ? extends X -> +X, ? super X -> -X - paramtype.cpp
		// WildcardType::GenerateSignature.
		switch v.Kind {
		case symbol.WildcardUnbounded:
			b.WriteByte('*')
		case symbol.WildcardExtends:
			b.WriteByte('+')
			writeSignature(b, v.Bound)
		case symbol.WildcardSuper:
			b.WriteByte('-')
			writeSignature(b, v.Bound)
		}

	case symbol.ArrayOf:
		b.WriteByte('[')
		writeSignature(b, v.Component)
	}
}

// ClassSignature builds the full Signature attribute for a generic class
// declaration: its own type-parameter clause, then its superclass and
// superinterface signatures. callers pass paramSuper/paramInterfaces
// already substituted to the right RichType form (nil paramSuper means
// "plain, no type arguments").
func ClassSignature(typeParams []*symbol.TypeParameter, paramSuper symbol.RichType, paramInterfaces []symbol.RichType) string {
	var b strings.Builder
	writeTypeParamClause(&b, typeParams)
	if paramSuper != nil {
		writeSignature(&b, paramSuper)
	}
	for _, i := range paramInterfaces {
		writeSignature(&b, i)
	}
	return b.String()
}

func writeTypeParamClause(b *strings.Builder, params []*symbol.TypeParameter) {
	if len(params) == 0 {
		return
	}
	b.WriteByte('<')
	for _, p := range params {
		b.WriteString(p.SimpleName.String())
		b.WriteByte(':')
		if len(p.Bounds) == 0 {
			b.WriteString("Ljava/lang/Object;")
		} else {
			writeSignature(b, p.Bounds[0])
			for _, extra := range p.SecondaryBounds() {
				b.WriteByte(':')
				writeSignature(b, extra)
			}
		}
	}
	b.WriteByte('>')
}
