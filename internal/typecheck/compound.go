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

package typecheck

import "github.com/jikesgo/jikesgo/internal/symbol"

// CompoundOp identifies a compound-assignment operator's kind, since the
// three families (numeric, shift, bitwise) each convert their RHS
// differently.
type CompoundOp int

const (
	CompoundNumeric CompoundOp = iota // += -= *= /= %=
	CompoundShift                     // <<= >>= >>>=
	CompoundBitwise                   // &= |= ^=
)

// CompoundAssign implements spec §4.4's compound-assignment rule:
// "Numeric ones undergo binary promotion; `+=` on String converts the
// RHS; shift uses unary promotion on LHS and int conversion on RHS;
// bitwise ones accept boolean-boolean or integral-integral pairs." The
// result type is always the LHS's declared type — JLS 15.26.2's implicit
// narrowing cast back to the variable — so the returned Typed carries
// lhs.Type regardless of what the intermediate computation promoted to.
func (c *Context) CompoundAssign(op CompoundOp, opSymbol string, lhs, rhs Typed) (Typed, bool) {
	lhsErased := lhs.Type.Erasure()
	if lhsErased == nil || lhsErased == symbol.NoType {
		return NoType(), true
	}

	switch op {
	case CompoundNumeric:
		if opSymbol == "+" && c.isString(lhs) {
			return Typed{Type: lhs.Type}, true
		}
		lp, rp, target := c.BinaryNumericPromote(lhs, rhs)
		if target == nil {
			return NoType(), false
		}
		result := Typed{Type: lhs.Type}
		if lp.Value != nil && rp.Value != nil {
			folded := c.FoldBinary(opSymbol, lp, rp, target, "", 0, 0)
			if folded != nil {
				result.Value = c.convertConstant(folded, lhs.Type)
			}
		}
		return result, true

	case CompoundShift:
		if c.UnaryNumericPromote(lhs).IsNoType() {
			return NoType(), false
		}
		if c.unboxedPrimitive(rhs) == nil {
			return NoType(), false
		}
		return Typed{Type: lhs.Type}, true

	case CompoundBitwise:
		if lhsErased == c.WK.Boolean {
			if rhs.Type.Erasure() != c.WK.Boolean {
				return NoType(), false
			}
			return Typed{Type: lhs.Type}, true
		}
		_, _, target := c.BinaryNumericPromote(lhs, rhs)
		if target == nil || target == c.WK.Float || target == c.WK.Double {
			return NoType(), false
		}
		return Typed{Type: lhs.Type}, true
	}
	return NoType(), false
}
