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

// Package typecheck implements the expression typer of spec §4.4: numeric
// promotion, string concatenation, equality/relational/cast/instanceof
// rules, the conditional operator, compound assignment, and constant
// folding with JLS overflow reporting. It has no single-file precedent
// in the teacher (a dependency tool parses but never type-checks Java
// expressions); each rule below is grounded on the corresponding pass in
// the original sources' "expr.cpp" (binary/unary typing) and
// "binexpr.cpp"/"case_expr.cpp" (constant folding), rebuilt against
// internal/wellknown's primitive table and internal/typeutil's subtype
// relation instead of Jikes's own TypeSymbol::IsSubclassOf.
package typecheck

import (
	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

// Typed is an expression's resolved type plus its compile-time constant
// value, if any (nil for a non-constant expression). It is the
// typechecker's working representation of the ast.Node mutable slots
// "resolved_type"/"value" described in spec §6.
type Typed struct {
	Type  symbol.RichType
	Value interface{} // nil, or a Go bool/int8/int16/uint16/int32/int64/float32/float64/string
}

// NoType returns the no_type sentinel value (spec §4.6): recovery
// continues, but the caller must already have reported a diagnostic.
func NoType() Typed { return Typed{Type: symbol.Plain{Sym: symbol.NoType}} }

// IsNoType reports whether v has already failed to type-check.
func (v Typed) IsNoType() bool { return symbol.IsNoType(v.Type) }

// Context bundles the shared, per-compilation tables every typing rule
// needs: the well-known primitive/boxed-type table and the diagnostic
// sink expressions report into.
type Context struct {
	WK    *wellknown.Types
	Diags *diag.Sink
}

// ConvertToType implements spec §6's ConvertToType / testable property 2:
// converting an already-target-typed value returns it unchanged
// (pointer-equal Type field, same Value), and otherwise rewrites Type to
// target and, for a constant value, folds Value through the conversion.
func (c *Context) ConvertToType(v Typed, target symbol.RichType) Typed {
	if v.Type != nil && target != nil && v.Type.Erasure() == target.Erasure() {
		return v
	}
	out := Typed{Type: target, Value: v.Value}
	if v.Value != nil {
		out.Value = c.convertConstant(v.Value, target)
	}
	return out
}

// isString reports whether v's erasure is java.lang.String.
func (c *Context) isString(v Typed) bool {
	return v.Type != nil && v.Type.Erasure() == c.WK.String
}
