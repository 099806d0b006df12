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

// Package resolve implements the JLS 6.5 simple- and qualified-name
// resolution cascade of spec §4.1: local scope, then static imports,
// then type imports, then package fallback, turning an identifier into
// one of {variable, method group, type, package}. It generalises
// xrefs.go's single-pass "look up this identifier in the symbol table I
// already built" into the full multi-source cascade the spec describes,
// since xrefs only ever had one container's declared members to search.
package resolve

import (
	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/members"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

// Kind discriminates what a name resolved to.
type Kind int

const (
	NotFound Kind = iota
	FoundVariable
	FoundMethodGroup
	FoundType
	FoundPackage
)

// Result is the outcome of resolving one identifier.
type Result struct {
	Kind     Kind
	Variable *symbol.Variable
	Methods  []*symbol.Method // same-named overload group; caller hands this to internal/overload
	Type     *symbol.Type
	Package  *symbol.Package

	// Ambiguous is set when the cascade found more than one candidate at
	// the same cascade step (e.g. two on-demand static imports both
	// exporting a field of this name) and had to pick arbitrarily; the
	// caller should report diag.AmbiguousReference.
	Ambiguous bool
}

func (r Result) Found() bool { return r.Kind != NotFound }

// SingleStaticImport is one "import static A.b;" declaration (spec §3
// "static-import registries").
type SingleStaticImport struct {
	ImportedType *symbol.Type
	MemberName   string
}

// Unit holds the per-compilation-unit state the cascade consults after
// local scope: single/on-demand type imports, single/on-demand static
// imports, and the compilation unit's own package.
type Unit struct {
	FileName string
	Package  *symbol.Package

	SingleTypeImports   map[string]*symbol.Type
	OnDemandTypeImports []*symbol.Package // packages named in "import a.b.*;"

	SingleStaticImports  []SingleStaticImport
	StaticOnDemandImports []*symbol.Type
}

// Scope is the lexical context an identifier is resolved at: the stack
// of enclosing blocks (possibly nil, for a field initializer with no
// block yet) and the innermost enclosing type.
type Scope struct {
	Block  *symbol.Block
	Type   *symbol.Type
	Static bool // true inside a static method/initializer/field init

	// InInitializer and InitializerIndex mark evaluation of a field or
	// instance initializer expression: InitializerIndex is that field's
	// symbol.Variable.DeclOrder, meaningful only while InInitializer is
	// true. Used to reject a forward reference to a not-yet-initialised
	// field of the same type (spec §4.1; JLS 8.3.3).
	InInitializer    bool
	InitializerIndex int

	// ExplicitConstructorInvocation is true while resolving the argument
	// list of a this(...)/super(...) call: spec §4.1 "explicit-
	// constructor-invocation contexts additionally forbid referring to
	// this-dependent members."
	ExplicitConstructorInvocation bool
}

// Context bundles the shared, cross-file state the resolver needs:
// the name interner (so map lookups against expanded tables use the
// same Name space), the classpath's root package (for the package
// fallback step and for on-demand/same-package type lookups of a
// not-yet-loaded type), and the well-known-type table (needed to type
// the synthetic array length field).
type Context struct {
	Interner *symbol.Interner
	Root     *symbol.Package
	Diags    *diag.Sink
	WK       *wellknown.Types
}

// ResolveSimpleName runs the full JLS 6.5.2 cascade of spec §4.1 steps
// 1-5 for identifier name at scope, within unit.
func (c *Context) ResolveSimpleName(scope *Scope, unit *Unit, name string, offset, line int) Result {
	if v, bad := c.lookupLocalVariable(scope, name); v != nil {
		if bad != "" {
			c.Diags.Errorf(bad, unit.FileName, line, offset, "cannot refer to %s here", name)
			return Result{Kind: NotFound}
		}
		return Result{Kind: FoundVariable, Variable: v}
	}
	if r, ok := c.lookupStaticImport(unit, name); ok {
		return r
	}
	if t, ok := c.lookupType(scope, unit, name); ok {
		return Result{Kind: FoundType, Type: t}
	}
	if p, ok := c.lookupPackage(scope, name); ok {
		return Result{Kind: FoundPackage, Package: p}
	}

	suggestion := c.suggest(scope, unit, name)
	kind := diag.UnresolvedSymbol
	message := "cannot resolve symbol " + name
	if suggestion != "" {
		kind = diag.MisspelledName
	}
	c.Diags.Add(diag.Diagnostic{
		Severity:   diag.Error,
		Kind:       kind,
		FileName:   unit.FileName,
		Line:       line,
		Offset:     offset,
		Message:    message,
		Suggestion: suggestion,
	})
	return Result{Kind: NotFound}
}

// lookupLocalVariable implements cascade step 1: walk the block stack,
// then the enclosing-type stack (innermost first); the first enclosing
// scope that declares a variable of this name wins outright (spec: "no
// cross-class shadow fallthrough" — we do not keep searching outward
// once an enclosing type declares the name, even if a further-out type
// also has one).
//
// Beyond plain lookup, spec §4.1 requires three context checks be
// applied at the point a field is found through the enclosing-type
// chain: a static region cannot reference an instance member, an
// explicit-constructor-invocation argument list cannot reference any
// this-dependent member, and a field/instance initializer cannot
// forward-reference a not-yet-initialised field of the same type.
// lookupLocalVariable reports which (if any) of these was violated via
// its second return value, a non-empty diag.Kind; the cascade stops
// there either way, matching resolution to the field without also
// falling through to an outer scope that might otherwise have worked.
func (c *Context) lookupLocalVariable(scope *Scope, name string) (*symbol.Variable, diag.Kind) {
	for b := scope.Block; b != nil; b = b.Parent {
		if v := b.Lookup(name); v != nil {
			return v, ""
		}
	}
	interned := c.Interner.Intern(name)
	innermost := scope.Type
	for t := scope.Type; t != nil; t = t.ContainingType {
		members.ComputeClosure(t) //nolint:errcheck // a broken hierarchy yields an empty table, not a crash
		entry, ok := t.ExpandedFields()[interned]
		if !ok {
			continue
		}
		v := entry.Preferred
		if t == innermost {
			if scope.ExplicitConstructorInvocation && !v.Flags.IsStatic() {
				return v, diag.InstanceMemberInExplicitConstructorInvocation
			}
			if scope.InInitializer && v.Owner == symbol.Symbol(t) && v.DeclOrder >= scope.InitializerIndex {
				return v, diag.ForwardReference
			}
		}
		if scope.Static && !v.Flags.IsStatic() {
			return v, diag.InstanceMemberInStaticRegion
		}
		return v, ""
	}
	return nil, ""
}

// MethodsNamed returns every overload of name visible starting at t
// (its own and inherited expanded method table), for a method-invocation
// context to hand to internal/overload.
func (c *Context) MethodsNamed(t *symbol.Type, name string) []*symbol.Method {
	if t == nil {
		return nil
	}
	members.ComputeClosure(t) //nolint:errcheck
	return t.ExpandedMethods()[c.Interner.Intern(name)]
}

// lookupStaticImport implements cascade step 2: single static imports
// first, then on-demand, resolving a field, then a nested type, then a
// static method (spec's stated per-import order), in that priority.
func (c *Context) lookupStaticImport(unit *Unit, name string) (Result, bool) {
	for _, imp := range unit.SingleStaticImports {
		if imp.MemberName != name {
			continue
		}
		if r, ok := c.staticMemberOf(imp.ImportedType, name); ok {
			return r, true
		}
	}
	var found []Result
	for _, t := range unit.StaticOnDemandImports {
		if r, ok := c.staticMemberOf(t, name); ok {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return Result{}, false
	case 1:
		return found[0], true
	default:
		r := found[0]
		r.Ambiguous = true
		return r, true
	}
}

// staticMemberOf looks for a static field, then nested type, then static
// method named name declared on (or inherited by) t.
func (c *Context) staticMemberOf(t *symbol.Type, name string) (Result, bool) {
	if t == nil {
		return Result{}, false
	}
	members.ComputeClosure(t) //nolint:errcheck
	interned := c.Interner.Intern(name)
	if entry, ok := t.ExpandedFields()[interned]; ok && entry.Preferred.Flags.IsStatic() {
		return Result{Kind: FoundVariable, Variable: entry.Preferred}, true
	}
	if entry, ok := t.ExpandedNestedTypes()[interned]; ok {
		return Result{Kind: FoundType, Type: entry.Preferred}, true
	}
	if ms := t.ExpandedMethods()[interned]; len(ms) > 0 {
		var statics []*symbol.Method
		for _, m := range ms {
			if m.Flags.IsStatic() {
				statics = append(statics, m)
			}
		}
		if len(statics) > 0 {
			return Result{Kind: FoundMethodGroup, Methods: statics}, true
		}
	}
	return Result{}, false
}

// lookupType implements cascade step 3: single-type imports, same
// package, on-demand type imports, and nested types of enclosing types
// (JLS 6.5.5 also lets a simple type name resolve to a member type of an
// enclosing class, which this folds in ahead of the import-based steps
// since it is lexically closer).
func (c *Context) lookupType(scope *Scope, unit *Unit, name string) (*symbol.Type, bool) {
	interned := c.Interner.Intern(name)
	for t := scope.Type; t != nil; t = t.ContainingType {
		members.ComputeClosure(t) //nolint:errcheck
		if entry, ok := t.ExpandedNestedTypes()[interned]; ok {
			return entry.Preferred, true
		}
	}
	if t, ok := unit.SingleTypeImports[name]; ok {
		return t, true
	}
	if unit.Package != nil {
		if t := unit.Package.Type(name); t != nil {
			return t, true
		}
	}
	for _, pkg := range unit.OnDemandTypeImports {
		if t := pkg.Type(name); t != nil {
			return t, true
		}
	}
	return nil, false
}

// lookupPackage implements cascade step 4: the identifier names a
// subpackage of the current package, or a top-level package of the
// classpath root.
func (c *Context) lookupPackage(scope *Scope, name string) (*symbol.Package, bool) {
	if scope.Type != nil && scope.Type.ContainingPackage != nil {
		if scope.Type.ContainingPackage.HasSubpackage(name) {
			return scope.Type.ContainingPackage.Subpackage(name), true
		}
	}
	if c.Root != nil && c.Root.HasSubpackage(name) {
		return c.Root.Subpackage(name), true
	}
	return nil, false
}
