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
	"strings"

	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/resolve"
	"github.com/jikesgo/jikesgo/internal/symbol"
)

// pendingHeader is the as-yet-unresolved supertype/superinterface
// clause of a source type, recorded by DeclareSourceType and consumed
// (exactly once) by ProcessHeaders.
type pendingHeader struct {
	superName      string // "" for a type with no extends clause (implicit Object, or an interface)
	interfaceNames []string
	line, offset   int
}

// DeclareSourceType registers t as a type declared in unit, with its
// extends/implements clauses still as raw (possibly qualified) names;
// ProcessHeaders resolves them against unit's import environment. A
// type with no extends clause (a plain class, implicitly extending
// Object) passes superName == "".
func (c *Context) DeclareSourceType(unit *Unit, t *symbol.Type, superName string, interfaceNames []string, line, offset int) {
	c.pending[t] = &pendingHeader{superName: superName, interfaceNames: interfaceNames, line: line, offset: offset}
}

// ProcessHeaders resolves t's super/interfaces clause and recurses into
// its declared nested types, per spec §5: "ProcessHeaders is
// idempotent/reentrant-but-acyclic at header level, guarded by a
// per-type state bit." A type with no pending header (an
// already-materialised classpath type, or one processed by an earlier
// call in this same run) is left untouched.
func (c *Context) ProcessHeaders(unit *Unit, t *symbol.Type) {
	if t.Flags.IsHeaderProcessed() {
		return
	}
	// Mark processed before recursing so a self-referential or
	// mutually-cyclic extends clause (a broken program, not a crash)
	// finds the bit already set and simply resolves against whatever
	// partial state exists rather than looping forever.
	t.Flags = t.Flags.Set(symbol.StateHeaderProcessed)

	if ph, ok := c.pending[t]; ok {
		delete(c.pending, t)
		scope := &resolve.Scope{Type: t}
		if ph.superName != "" {
			if super, ok := c.resolveTypeName(scope, unit, ph.superName, ph.line, ph.offset); ok {
				t.Super = super
				super.Subtypes = append(super.Subtypes, t)
			} else {
				t.Flags = t.Flags.Set(symbol.StateBad)
			}
		} else if !t.Flags.IsInterface() && t != c.WK.Object {
			t.Super = c.WK.Object
			c.WK.Object.Subtypes = append(c.WK.Object.Subtypes, t)
		}
		for _, name := range ph.interfaceNames {
			if iface, ok := c.resolveTypeName(scope, unit, name, ph.line, ph.offset); ok {
				t.Interfaces = append(t.Interfaces, iface)
				iface.Subtypes = append(iface.Subtypes, t)
			} else {
				t.Flags = t.Flags.Set(symbol.StateBad)
			}
		}
	}

	for _, n := range t.DeclaredNestedTypes() {
		c.ProcessHeaders(unit, n)
	}
}

// resolveTypeName resolves a (possibly dotted) type name against
// unit's import environment, starting from scope. It classifies the
// leading identifier with the full JLS 6.5.2 cascade
// (internal/resolve.ResolveSimpleName) and then drills down through
// any remaining qualifiers the same way a field-access chain would
// (internal/resolve.ResolveQualified), so "java.util.List" resolves
// through the "java" -> "java.util" package steps to the type exactly
// as a fully-qualified expression would.
func (c *Context) resolveTypeName(scope *resolve.Scope, unit *Unit, name string, line, offset int) (*symbol.Type, bool) {
	parts := strings.Split(name, ".")
	result := c.Resolve.ResolveSimpleName(scope, unit.Resolve, parts[0], offset, line)
	if !result.Found() {
		return nil, false
	}
	for _, p := range parts[1:] {
		result = c.Resolve.ResolveQualified(result, p, line, offset, unit.FileName)
		if !result.Found() {
			return nil, false
		}
	}
	if result.Kind != resolve.FoundType {
		c.Diags.Errorf(diag.UnresolvedSymbol, unit.FileName, line, offset, "%s does not name a type", name)
		return nil, false
	}
	return result.Type, true
}
