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
	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/generics"
	"github.com/jikesgo/jikesgo/internal/members"
	"github.com/jikesgo/jikesgo/internal/symbol"
)

// ResolveQualified resolves a.b where a already resolved to qualifier
// and b is the rightmost selector, per spec §4.1's "qualified names are
// resolved left-to-right: the qualifier is classified first ..., then
// the rightmost selector is looked up within that qualifier."
func (c *Context) ResolveQualified(qualifier Result, selector string, line, offset int, fileName string) Result {
	switch qualifier.Kind {
	case FoundPackage:
		return c.resolveInPackage(qualifier.Package, selector, line, offset, fileName)
	case FoundType:
		return c.ResolveStaticMember(qualifier.Type, selector, line, offset, fileName)
	case FoundVariable:
		return c.ResolveInstanceMember(qualifier.Variable.Type, selector, line, offset, fileName)
	default:
		return Result{Kind: NotFound}
	}
}

// resolveInPackage implements "a package qualifier may yield a
// subpackage or a type:" a.b is a subpackage if one is registered, else
// a top-level type of that name in the package.
func (c *Context) resolveInPackage(pkg *symbol.Package, name string, line, offset int, fileName string) Result {
	if pkg.HasSubpackage(name) {
		return Result{Kind: FoundPackage, Package: pkg.Subpackage(name)}
	}
	if t := pkg.Type(name); t != nil {
		return Result{Kind: FoundType, Type: t}
	}
	c.Diags.Errorf(diag.UnresolvedSymbol, fileName, line, offset, "package %s has no member %s", pkg.Dotted, name)
	return Result{Kind: NotFound}
}

// ResolveStaticMember implements "a type qualifier yields a nested
// type, a static field, or a static method" (spec §4.1), searching the
// type's expanded tables in that priority order and also accepting
// instance members here for the Outer.this/Outer.new disambiguation
// callers that already know the qualifier denotes a type rather than an
// expression (the instance-vs-static distinction is then up to the
// caller, which knows whether it is typing a static context).
func (c *Context) ResolveStaticMember(t *symbol.Type, name string, line, offset int, fileName string) Result {
	members.ComputeClosure(t) //nolint:errcheck
	interned := c.Interner.Intern(name)
	if entry, ok := t.ExpandedNestedTypes()[interned]; ok {
		return Result{Kind: FoundType, Type: entry.Preferred}
	}
	if entry, ok := t.ExpandedFields()[interned]; ok {
		return Result{Kind: FoundVariable, Variable: entry.Preferred}
	}
	if ms := t.ExpandedMethods()[interned]; len(ms) > 0 {
		return Result{Kind: FoundMethodGroup, Methods: ms}
	}
	c.Diags.Errorf(diag.UnresolvedSymbol, fileName, line, offset, "cannot resolve %s.%s", t.ExternalName, name)
	return Result{Kind: NotFound}
}

// ResolveInstanceMember implements "an expression qualifier yields an
// instance field or instance method," additionally applying generic
// substitution (spec §4.3) so a field access through a parameterised
// receiver gets its substituted, not declared, type.
func (c *Context) ResolveInstanceMember(receiver symbol.RichType, name string, line, offset int, fileName string) Result {
	if arr, ok := receiver.(symbol.ArrayOf); ok && name == "length" {
		return c.arrayLength(arr)
	}
	erasure := receiver.Erasure()
	if erasure == nil {
		return Result{Kind: NotFound}
	}
	members.ComputeClosure(erasure) //nolint:errcheck
	interned := c.Interner.Intern(name)
	if tv, ok := receiver.(symbol.TypeVarRef); ok {
		if _, found := erasure.ExpandedFields()[interned]; !found {
			if _, found := erasure.ExpandedMethods()[interned]; !found {
				if _, found := erasure.ExpandedNestedTypes()[interned]; !found {
					if r, ok := c.secondaryBoundMember(tv, interned); ok {
						return r
					}
				}
			}
		}
	}
	if entry, ok := erasure.ExpandedFields()[interned]; ok {
		f := entry.Preferred
		substituted := generics.InheritedMemberType(receiver, f.Owner.(*symbol.Type), f.Type)
		if substituted != f.Type {
			// Return a shallow copy carrying the substituted type so the
			// original declared-type Variable on the declaring type is
			// never mutated (spec §4.3(a): "Result is stored on the
			// expression as a resolved type distinct from the
			// expression's static symbol").
			sub := *f
			sub.Type = substituted
			return Result{Kind: FoundVariable, Variable: &sub}
		}
		return Result{Kind: FoundVariable, Variable: f}
	}
	if ms := erasure.ExpandedMethods()[interned]; len(ms) > 0 {
		return Result{Kind: FoundMethodGroup, Methods: ms}
	}
	if entry, ok := erasure.ExpandedNestedTypes()[interned]; ok {
		return Result{Kind: FoundType, Type: entry.Preferred}
	}
	return Result{Kind: NotFound}
}

// arrayLength implements the supplemented array `.length` synthetic
// field: every array type exposes a public final int length without
// going through the normal declared/inherited field tables, since
// symbol.Type's ArrayType() creates an otherwise member-less Type (spec
// §3's array has no declared members of its own).
func (c *Context) arrayLength(arr symbol.ArrayOf) Result {
	if c.WK == nil {
		return Result{Kind: NotFound}
	}
	erasure := arr.Erasure()
	if erasure == nil {
		return Result{Kind: NotFound}
	}
	v := &symbol.Variable{
		SimpleName: c.Interner.Intern("length"),
		Type:       symbol.Plain{Sym: c.WK.Int},
		Owner:      erasure,
		Flags:      symbol.AccPublic | symbol.AccFinal,
		LocalSlot:  -1,
	}
	return Result{Kind: FoundVariable, Variable: v}
}

// secondaryBoundMember implements the supplemented secondary-bound
// lookup: when a type variable's primary bound doesn't declare the
// member, search its secondary (intersection-type) bounds the same way
// internal/mangling's writeTypeParamClause walks them for signature
// emission, giving field/method lookup the same intersection-type
// parity the Signature attribute already has.
func (c *Context) secondaryBoundMember(tv symbol.TypeVarRef, interned symbol.Name) (Result, bool) {
	for _, bound := range tv.Param.SecondaryBounds() {
		be := bound.Erasure()
		if be == nil {
			continue
		}
		members.ComputeClosure(be) //nolint:errcheck
		if entry, ok := be.ExpandedFields()[interned]; ok {
			return Result{Kind: FoundVariable, Variable: entry.Preferred}, true
		}
		if ms := be.ExpandedMethods()[interned]; len(ms) > 0 {
			return Result{Kind: FoundMethodGroup, Methods: ms}, true
		}
		if entry, ok := be.ExpandedNestedTypes()[interned]; ok {
			return Result{Kind: FoundType, Type: entry.Preferred}, true
		}
	}
	return Result{}, false
}
