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
	"github.com/jikesgo/jikesgo/internal/generics"
	"github.com/jikesgo/jikesgo/internal/overload"
	"github.com/jikesgo/jikesgo/internal/resolve"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/typecheck"
	"github.com/jikesgo/jikesgo/internal/typeutil"
)

// ProcessBodies is the fourth pass: with every type's closure complete
// (spec §5 pass 3 has already run for the whole source set), type each
// executable body. A real grammar walk belongs to a front end this
// module does not implement; ProcessBodies instead recurses over t's
// declared nested types so a caller that does have a parsed tree to
// walk can drive MethodInvocation/FieldAccess/etc below per statement
// in left-to-right declaration order, the ordering spec §5 requires.
func (c *Context) ProcessBodies(unit *Unit, t *symbol.Type) {
	for _, n := range t.DeclaredNestedTypes() {
		c.ProcessBodies(unit, n)
	}
}

// TypeContext bundles what a single expression needs typed: the
// lexical scope it is typed in, the enclosing unit for diagnostics, and
// a typecheck.Context sharing this run's well-known-type table and
// diagnostics sink.
type TypeContext struct {
	Scope *resolve.Scope
	Unit  *Unit
	TC    *typecheck.Context

	// EnclosingThrows is the throws clause of the method or constructor
	// this expression is being typed inside; processThrows checks an
	// unreported checked exception against it when no try-context is
	// active.
	EnclosingThrows []*symbol.Type

	// TryExceptions, when non-nil, is the accumulating checked-exception
	// set of the innermost enclosing try block; processThrows unions a
	// called method's checked exceptions into it instead of checking
	// them against EnclosingThrows.
	TryExceptions map[*symbol.Type]bool
}

// NewTypeContext returns a TypeContext for scope within unit, reusing
// c's diagnostics sink and well-known-type table.
func (c *Context) NewTypeContext(scope *resolve.Scope, unit *Unit) *TypeContext {
	return &TypeContext{Scope: scope, Unit: unit, TC: &typecheck.Context{WK: c.WK, Diags: c.Diags}}
}

// TypeSimpleName resolves and types a bare identifier reference (spec
// §4.1/§4.6): a found variable yields its (possibly generics-substituted,
// when found through an instance qualifier upstream) declared type; a
// method group or package/type reference is not itself a typed value,
// so the caller is expected to recognise those Result kinds before
// calling TypeSimpleName in a value context. An unresolved name yields
// no_type without raising a second diagnostic (ResolveSimpleName
// already reported one).
func (c *Context) TypeSimpleName(tx *TypeContext, name string, line, offset int) typecheck.Typed {
	r := c.Resolve.ResolveSimpleName(tx.Scope, tx.Unit.Resolve, name, offset, line)
	if r.Kind != resolve.FoundVariable {
		return typecheck.NoType()
	}
	return typecheck.Typed{Type: r.Variable.Type}
}

// TypeFieldAccess types receiver.name (spec §4.1 qualified-name cascade
// plus §4.3(a) generic substitution, already folded into
// resolve.Context.ResolveQualified/ResolveInstanceMember).
func (c *Context) TypeFieldAccess(tx *TypeContext, receiver typecheck.Typed, name string, line, offset int) typecheck.Typed {
	if receiver.IsNoType() {
		return typecheck.NoType()
	}
	c.checkRawTypeUse(tx, receiver.Type, line, offset)
	if rt, ok := generics.CloneReturnType(receiver.Type, name); ok {
		return typecheck.Typed{Type: rt}
	}
	r := c.Resolve.ResolveInstanceMember(receiver.Type, name, line, offset, tx.Unit.FileName)
	if r.Kind != resolve.FoundVariable {
		c.Diags.Errorf(diag.InaccessibleMember, tx.Unit.FileName, line, offset, "cannot resolve field %s", name)
		return typecheck.NoType()
	}
	c.checkDeprecatedUse(tx, r.Variable.Flags, ownerType(r.Variable.Owner), name, line, offset)
	return typecheck.Typed{Type: r.Variable.Type}
}

// checkRawTypeUse reports diag.RawTypeUse when t is a generic type used
// raw (spec's generics-errors "raw/parameterised mixing"): a symbol.Plain
// wrapping a *symbol.Type that itself declares type parameters.
func (c *Context) checkRawTypeUse(tx *TypeContext, t symbol.RichType, line, offset int) {
	p, ok := t.(symbol.Plain)
	if !ok || p.Sym == nil || !p.Sym.IsGeneric() {
		return
	}
	c.Diags.Warnf(diag.RawTypeUse, tx.Unit.FileName, line, offset, "%s is a raw type", p.Sym.ExternalName)
}

func ownerType(owner symbol.Symbol) *symbol.Type {
	t, _ := owner.(*symbol.Type)
	return t
}

// CallResult is the outcome of typing a method invocation: the
// resolved return type plus the overload.Selection the caller (an
// eventual bytecode emitter) needs to know which phase matched and
// what per-argument conversions to materialise.
type CallResult struct {
	Typed     typecheck.Typed
	Selection *overload.Selection
}

// TypeMethodCall resolves and selects among candidates (already
// gathered by the caller via resolve.Context.MethodsNamed or a static-
// import lookup) for the given receiver and argument types, applying
// spec §4.3(a)'s generic-method inference when the chosen method
// declares its own type parameters, and spec §4.6's no_type recovery
// on failure: a NoApplicableMethodError or AmbiguousError is reported
// as a diagnostic and the call types as no_type instead of aborting the
// surrounding pass.
func (c *Context) TypeMethodCall(tx *TypeContext, name string, candidates []*symbol.Method, receiver symbol.RichType, args []typecheck.Typed, line, offset int) CallResult {
	argTypes := make([]symbol.RichType, len(args))
	for i, a := range args {
		argTypes[i] = a.Type
	}
	sel, err := c.Overload.Select(name, candidates, argTypes)
	if err != nil {
		switch e := err.(type) {
		case *overload.NoApplicableMethodError:
			c.Diags.Errorf(diag.NoApplicableMethod, tx.Unit.FileName, line, offset, "no applicable method %s", e.Name)
		case *overload.AmbiguousError:
			c.Diags.Errorf(diag.AmbiguousMethod, tx.Unit.FileName, line, offset, "reference to %s is ambiguous", e.Name)
		}
		return CallResult{Typed: typecheck.NoType()}
	}

	returnType := sel.Method.ReturnType
	if sel.Method.IsGeneric() {
		genArgs := make([]generics.Argument, len(argTypes))
		for i, a := range argTypes {
			genArgs[i] = generics.Argument{Type: a}
		}
		inferred := generics.InferMethodTypeArgs(sel.Method, genArgs)
		returnType = generics.PropagateReturnType(sel.Method, inferred)
	} else if receiver != nil {
		returnType = generics.InheritedMemberType(receiver, sel.Method.ContainingType, returnType)
	}
	if receiver != nil {
		if rt, ok := generics.CloneReturnType(receiver, name); ok {
			returnType = rt
		}
	}
	return CallResult{Typed: typecheck.Typed{Type: returnType}, Selection: sel}
}

// TypeMethodCallVia is TypeMethodCall plus the extra spec §4.2 checks
// that only apply to a fully resolved call site: deprecation (with the
// enum values()/valueOf() allow-list), throws-clause processing into
// tx's try-context set, and -- when viaSuper is set, for a call written
// as super.m() -- rejection of an abstract target, since a super call
// is a direct invocation with no virtual dispatch to fall back to.
func (c *Context) TypeMethodCallVia(tx *TypeContext, name string, candidates []*symbol.Method, receiver symbol.RichType, args []typecheck.Typed, viaSuper bool, line, offset int) CallResult {
	res := c.TypeMethodCall(tx, name, candidates, receiver, args, line, offset)
	if res.Selection == nil {
		return res
	}
	m := res.Selection.Method
	c.checkDeprecatedUse(tx, m.Flags, m.ContainingType, m.SimpleName.String(), line, offset)
	c.processThrows(tx, m, line, offset)
	if viaSuper && m.Flags.IsAbstract() {
		c.Diags.Errorf(diag.AbstractMethodViaSuper, tx.Unit.FileName, line, offset, "abstract method %s cannot be accessed directly", name)
		return CallResult{Typed: typecheck.NoType()}
	}
	return res
}

// checkDeprecatedUse reports diag.DeprecatedUse for a reference to a
// deprecated member (spec §4.2 "records deprecation ... diagnostics"),
// except the compiler-synthesized values()/valueOf() every enum type
// carries, which spec's allow-list exempts regardless of the enum
// type's own deprecation status.
func (c *Context) checkDeprecatedUse(tx *TypeContext, flags symbol.Flags, owner *symbol.Type, name string, line, offset int) {
	if !flags.IsDeprecated() {
		return
	}
	if owner != nil && owner.Flags.IsEnum() && (name == "values" || name == "valueOf") {
		return
	}
	c.Diags.Warnf(diag.DeprecatedUse, tx.Unit.FileName, line, offset, "%s is deprecated", name)
}

// processThrows implements spec §4.2's "processes its throws clause ...
// and unions its checked exceptions into the enclosing try-context
// set": each checked exception (anything that isn't a subtype of
// RuntimeException or Error) m declares either joins tx's try-context
// set, if one is active, or -- with no enclosing try and no matching
// entry in the enclosing method's own throws clause -- is reported
// unreported, mirroring javac's own "must be caught or declared to be
// thrown" diagnostic.
func (c *Context) processThrows(tx *TypeContext, m *symbol.Method, line, offset int) {
	for _, exc := range m.Throws {
		if !c.isCheckedException(exc) {
			continue
		}
		if tx.TryExceptions != nil {
			tx.TryExceptions[exc] = true
			continue
		}
		if declaredBy(tx.EnclosingThrows, exc) {
			continue
		}
		c.Diags.Errorf(diag.UnreportedException, tx.Unit.FileName, line, offset, "unreported exception %s; must be caught or declared to be thrown", exc.ExternalName)
	}
}

// isCheckedException reports whether exc must be caught or declared:
// every Throwable except RuntimeException/Error and their subtypes
// (JLS 11.2).
func (c *Context) isCheckedException(exc *symbol.Type) bool {
	if exc == nil || exc == c.WK.RuntimeException || exc == c.WK.Error {
		return false
	}
	return !typeutil.IsSubtype(exc, c.WK.RuntimeException) && !typeutil.IsSubtype(exc, c.WK.Error)
}

func declaredBy(thrown []*symbol.Type, exc *symbol.Type) bool {
	for _, t := range thrown {
		if t == exc || typeutil.IsSubtype(exc, t) {
			return true
		}
	}
	return false
}

// TypeCast implements spec §4.4's cast expression, wiring
// internal/typecheck.Cast into the driver: an incompatible cast reports
// diag.InvalidCast, and a cast to a raw-used parameterised type with
// non-wildcard arguments reports diag.UncheckedConversion, matching
// javac's own "unchecked cast" warning.
func (c *Context) TypeCast(tx *TypeContext, v typecheck.Typed, target symbol.RichType, line, offset int) typecheck.Typed {
	if v.IsNoType() {
		return typecheck.NoType()
	}
	out, ok, unchecked := tx.TC.Cast(v, target)
	if !ok {
		c.Diags.Errorf(diag.InvalidCast, tx.Unit.FileName, line, offset, "inconvertible types")
		return typecheck.NoType()
	}
	if unchecked {
		c.Diags.Warnf(diag.UncheckedConversion, tx.Unit.FileName, line, offset, "unchecked cast")
	}
	return out
}

// TypeInstanceOf implements spec §4.4's instanceof expression: a
// parameterised target with a non-wildcard or bounded-wildcard argument
// is rejected (spec's generics-errors "instanceof with parameterised
// type"), everything else types as boolean.
func (c *Context) TypeInstanceOf(tx *TypeContext, v typecheck.Typed, target symbol.RichType, line, offset int) typecheck.Typed {
	if v.IsNoType() {
		return typecheck.NoType()
	}
	if !typecheck.InstanceOf(target) {
		c.Diags.Errorf(diag.InvalidInstanceOf, tx.Unit.FileName, line, offset, "illegal generic type for instanceof")
		return typecheck.NoType()
	}
	return typecheck.Typed{Type: symbol.Plain{Sym: c.WK.Boolean}}
}

// TypeConditional implements spec §4.4's "?:" expression, wiring
// internal/typecheck.Conditional into the driver.
func (c *Context) TypeConditional(tx *TypeContext, then, els typecheck.Typed, line, offset int) typecheck.Typed {
	if then.IsNoType() || els.IsNoType() {
		return typecheck.NoType()
	}
	out := tx.TC.Conditional(then, els)
	if out.IsNoType() {
		c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "incompatible types in conditional expression")
	}
	return out
}

// TypeCompoundAssignment implements spec §4.4's compound-assignment
// expression, wiring internal/typecheck.CompoundAssign into the driver.
// JLS 15.26.2's implicit narrowing conversion back to the LHS's declared
// type is silent in the grammar, but a numeric RHS whose own declared
// type is wider than the LHS can still lose information at run time
// (`byte b = 1; b += someInt;`), so a numeric compound assignment whose
// RHS is wider than the LHS reports diag.LossyConversion.
func (c *Context) TypeCompoundAssignment(tx *TypeContext, op typecheck.CompoundOp, opSymbol string, lhs, rhs typecheck.Typed, line, offset int) typecheck.Typed {
	if lhs.IsNoType() || rhs.IsNoType() {
		return typecheck.NoType()
	}
	out, ok := tx.TC.CompoundAssign(op, opSymbol, lhs, rhs)
	if !ok {
		c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand types for %s=", opSymbol)
		return typecheck.NoType()
	}
	if op == typecheck.CompoundNumeric && rhs.Value == nil {
		lhsErased, rhsErased := lhs.Type.Erasure(), rhs.Type.Erasure()
		if lhsErased != nil && rhsErased != nil && c.WK.IsNumeric(lhsErased) && c.WK.IsNumeric(rhsErased) && lhsErased != rhsErased && c.WK.Widens(lhsErased, rhsErased) {
			c.Diags.Warnf(diag.LossyConversion, tx.Unit.FileName, line, offset, "possible loss of precision in %s=", opSymbol)
		}
	}
	return out
}

// TypeBinary implements the rest of spec §4.4's binary operators: "+"
// (arithmetic or, per internal/typecheck.StringConcat, string
// concatenation), the other arithmetic operators with constant folding,
// shifts, relational and equality comparisons, and the bitwise/logical
// operators.
func (c *Context) TypeBinary(tx *TypeContext, op string, left, right typecheck.Typed, line, offset int) typecheck.Typed {
	if left.IsNoType() || right.IsNoType() {
		return typecheck.NoType()
	}
	switch op {
	case "+":
		if out, ok := tx.TC.StringConcat(left, right); ok {
			return out
		}
		return c.typeNumericBinary(tx, op, left, right, line, offset)
	case "-", "*", "/", "%":
		return c.typeNumericBinary(tx, op, left, right, line, offset)
	case "<<", ">>", ">>>":
		return c.typeShift(tx, op, left, right, line, offset)
	case "<", "<=", ">", ">=":
		rt, ok := tx.TC.Relational(left, right)
		if !ok {
			c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand types for %s", op)
			return typecheck.NoType()
		}
		return typecheck.Typed{Type: rt}
	case "==", "!=":
		if !tx.TC.EqualityCompatible(left, right) {
			c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "incomparable types for %s", op)
			return typecheck.NoType()
		}
		return typecheck.Typed{Type: symbol.Plain{Sym: c.WK.Boolean}}
	case "&&", "||":
		if left.Type.Erasure() != c.WK.Boolean || right.Type.Erasure() != c.WK.Boolean {
			c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand types for %s", op)
			return typecheck.NoType()
		}
		return typecheck.Typed{Type: symbol.Plain{Sym: c.WK.Boolean}}
	case "&", "|", "^":
		return c.typeBitwise(tx, op, left, right, line, offset)
	}
	return typecheck.NoType()
}

func (c *Context) typeNumericBinary(tx *TypeContext, op string, left, right typecheck.Typed, line, offset int) typecheck.Typed {
	lp, rp, target := tx.TC.BinaryNumericPromote(left, right)
	if target == nil {
		c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand types for %s", op)
		return typecheck.NoType()
	}
	out := typecheck.Typed{Type: symbol.Plain{Sym: target}}
	if lp.Value != nil && rp.Value != nil {
		out.Value = tx.TC.FoldBinary(op, lp, rp, target, tx.Unit.FileName, line, offset)
	}
	return out
}

func (c *Context) typeBitwise(tx *TypeContext, op string, left, right typecheck.Typed, line, offset int) typecheck.Typed {
	if left.Type.Erasure() == c.WK.Boolean && right.Type.Erasure() == c.WK.Boolean {
		out := typecheck.Typed{Type: symbol.Plain{Sym: c.WK.Boolean}}
		if left.Value != nil && right.Value != nil {
			out.Value = tx.TC.FoldBinary(op, left, right, c.WK.Boolean, tx.Unit.FileName, line, offset)
		}
		return out
	}
	lp, rp, target := tx.TC.BinaryNumericPromote(left, right)
	if target == nil || target == c.WK.Float || target == c.WK.Double {
		c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand types for %s", op)
		return typecheck.NoType()
	}
	out := typecheck.Typed{Type: symbol.Plain{Sym: target}}
	if lp.Value != nil && rp.Value != nil {
		out.Value = tx.TC.FoldBinary(op, lp, rp, target, tx.Unit.FileName, line, offset)
	}
	return out
}

func (c *Context) typeShift(tx *TypeContext, op string, left, right typecheck.Typed, line, offset int) typecheck.Typed {
	lp := tx.TC.UnaryNumericPromote(left)
	if lp.IsNoType() {
		c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand type for %s", op)
		return typecheck.NoType()
	}
	rp := tx.TC.UnaryNumericPromote(right)
	if rp.IsNoType() {
		c.Diags.Errorf(diag.IncompatibleTypes, tx.Unit.FileName, line, offset, "bad operand type for %s", op)
		return typecheck.NoType()
	}
	target := lp.Type.Erasure()
	out := typecheck.Typed{Type: lp.Type}
	if lp.Value != nil && rp.Value != nil {
		out.Value = tx.TC.FoldShift(op, lp, rp, target, tx.Unit.FileName, line, offset)
	}
	return out
}
