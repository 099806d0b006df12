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

package semantic

import (
	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/mangling"
	"github.com/jikesgo/jikesgo/internal/symbol"
)

// ProcessMemberHeaders runs the second pass: now that every type in the
// run has its super/interfaces resolved (pass one completed for the
// whole source set before this pass starts, spec §5), install the
// synthetic scaffolding a type's own shape depends on before its
// members are closed over -- the this$0 enclosing-instance field for a
// non-static inner class, and the default constructor for an anonymous
// class. Both are idempotent: EnsureEnclosingInstanceField and the
// method-presence check below return the existing symbol unchanged on
// a repeated call.
func (c *Context) ProcessMemberHeaders(unit *Unit, t *symbol.Type) {
	if t.Flags.IsMembersProcessed() {
		return
	}
	t.Flags = t.Flags.Set(symbol.StateMembersProcessed)

	c.checkDuplicateDeclarations(unit, t)
	c.checkModifierLegality(unit, t)

	if t.ContainingType != nil && !t.Flags.IsStatic() && !t.Flags.IsInterface() {
		c.Accessors.EnsureEnclosingInstanceField(t, t.ContainingType)
	}

	if t.Flags.IsAnonymous() && !hasConstructor(t) {
		var superCtor *symbol.Method
		if t.Super != nil {
			for _, m := range t.Super.DeclaredMethods() {
				if m.IsConstructor() {
					superCtor = m
					break
				}
			}
		}
		var enclosingBase *symbol.Type
		if t.ContainingType != nil && !t.Flags.IsStatic() {
			enclosingBase = t.ContainingType
		}
		c.Accessors.AnonymousDefaultConstructor(t, superCtor, enclosingBase)
	}
}

func hasConstructor(t *symbol.Type) bool {
	for _, m := range t.DeclaredMethods() {
		if m.IsConstructor() {
			return true
		}
	}
	return false
}

// checkDuplicateDeclarations reports diag.DuplicateDeclaration for two
// of t's own declared members that would collide: two fields of the
// same name (fields, unlike methods, do not overload), two methods of
// the same name and erased descriptor, or two nested types of the same
// name. Line/offset are 0 -- t's declared-member lists carry no source
// position until a parser exists to attach one to each declaration.
func (c *Context) checkDuplicateDeclarations(unit *Unit, t *symbol.Type) {
	fields := make(map[symbol.Name]bool)
	for _, f := range t.DeclaredFields() {
		if fields[f.SimpleName] {
			c.Diags.Errorf(diag.DuplicateDeclaration, unit.FileName, 0, 0, "field %s is already defined in %s", f.SimpleName, t.ExternalName)
			continue
		}
		fields[f.SimpleName] = true
	}

	methods := make(map[string]bool)
	for _, m := range t.DeclaredMethods() {
		formals := make([]symbol.RichType, len(m.Formals))
		for i, p := range m.Formals {
			formals[i] = p.Type
		}
		key := m.SimpleName.String() + mangling.MethodDescriptor(formals, m.ReturnType)
		if methods[key] {
			c.Diags.Errorf(diag.DuplicateDeclaration, unit.FileName, 0, 0, "method %s is already defined in %s", m.SimpleName, t.ExternalName)
			continue
		}
		methods[key] = true
	}

	nested := make(map[symbol.Name]bool)
	for _, n := range t.DeclaredNestedTypes() {
		if nested[n.SimpleName] {
			c.Diags.Errorf(diag.DuplicateDeclaration, unit.FileName, 0, 0, "type %s is already defined in %s", n.SimpleName, t.ExternalName)
			continue
		}
		nested[n.SimpleName] = true
	}
}

// checkModifierLegality reports diag.IllegalModifier for the modifier
// combinations JLS 8.3.1.4/8.4.3.4/9.4 forbid outright: a field both
// final and volatile, a method both abstract and final/private/static/
// native/strictfp/synchronized, and (pre-Java-8) an interface method
// declared static.
func (c *Context) checkModifierLegality(unit *Unit, t *symbol.Type) {
	for _, f := range t.DeclaredFields() {
		if f.Flags.IsFinal() && f.Flags.Has(symbol.AccVolatile) {
			c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "field %s cannot be both final and volatile", f.SimpleName)
		}
	}
	for _, m := range t.DeclaredMethods() {
		if m.IsConstructor() {
			continue
		}
		if m.Flags.IsAbstract() {
			switch {
			case m.Flags.IsFinal():
				c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "abstract method %s cannot be final", m.SimpleName)
			case m.Flags.IsPrivate():
				c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "abstract method %s cannot be private", m.SimpleName)
			case m.Flags.IsStatic():
				c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "abstract method %s cannot be static", m.SimpleName)
			case m.Flags.Has(symbol.AccNative):
				c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "abstract method %s cannot be native", m.SimpleName)
			case m.Flags.IsStrictfp():
				c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "abstract method %s cannot be strictfp", m.SimpleName)
			case m.Flags.Has(symbol.AccSuper): // ACC_SYNCHRONIZED on a method, see flags.go
				c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "abstract method %s cannot be synchronized", m.SimpleName)
			}
		}
		if t.Flags.IsInterface() && m.Flags.IsStatic() {
			c.Diags.Errorf(diag.IllegalModifier, unit.FileName, 0, 0, "interface method %s cannot be static", m.SimpleName)
		}
	}
}
