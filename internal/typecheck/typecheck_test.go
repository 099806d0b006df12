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

import (
	"testing"

	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

func newContext() (*Context, *symbol.Interner) {
	in := symbol.NewInterner()
	wk := wellknown.Load(in, nil)
	return &Context{WK: wk, Diags: &diag.Sink{}}, in
}

func plain(t *symbol.Type) Typed { return Typed{Type: symbol.Plain{Sym: t}} }

func TestBinaryNumericPromoteToDouble(t *testing.T) {
	c, _ := newContext()
	l, r, target := c.BinaryNumericPromote(plain(c.WK.Int), plain(c.WK.Double))
	if target != c.WK.Double {
		t.Fatalf("target = %v, want double", target)
	}
	if l.Type.Erasure() != c.WK.Double || r.Type.Erasure() != c.WK.Double {
		t.Errorf("both operands should be converted to double")
	}
}

func TestBinaryNumericPromoteUnboxes(t *testing.T) {
	c, _ := newContext()
	_, _, target := c.BinaryNumericPromote(plain(c.WK.BoxedInt), plain(c.WK.Long))
	if target != c.WK.Long {
		t.Fatalf("target = %v, want long", target)
	}
}

func TestUnaryNumericPromotePromotesByteToInt(t *testing.T) {
	c, _ := newContext()
	out := c.UnaryNumericPromote(plain(c.WK.Byte))
	if out.Type.Erasure() != c.WK.Int {
		t.Errorf("UnaryNumericPromote(byte) = %v, want int", out.Type.Erasure())
	}
}

func TestConvertToTypeIdempotent(t *testing.T) {
	c, _ := newContext()
	v := plain(c.WK.Int)
	v.Value = int32(5)
	converted := c.ConvertToType(v, plain(c.WK.Int).Type)
	if converted.Type != v.Type || converted.Value != v.Value {
		t.Errorf("ConvertToType to the same type should return v unchanged, got %+v", converted)
	}
}

func TestConvertToTypeFoldsConstant(t *testing.T) {
	c, _ := newContext()
	v := plain(c.WK.Int)
	v.Value = int32(65)
	out := c.ConvertToType(v, plain(c.WK.Char).Type)
	ch, ok := out.Value.(uint16)
	if !ok || ch != 65 {
		t.Errorf("ConvertToType(65, char) = %#v, want uint16(65)", out.Value)
	}
}

func TestStringConcat(t *testing.T) {
	c, _ := newContext()
	l := plain(c.WK.String)
	l.Value = "a"
	r := plain(c.WK.Int)
	r.Value = int32(1)
	out, ok := c.StringConcat(l, r)
	if !ok {
		t.Fatalf("StringConcat: not applicable")
	}
	if out.Type.Erasure() != c.WK.String {
		t.Errorf("StringConcat type = %v, want String", out.Type.Erasure())
	}
	if out.Value != "a1" {
		t.Errorf("StringConcat value = %v, want a1", out.Value)
	}
}

func TestStringConcatNotApplicable(t *testing.T) {
	c, _ := newContext()
	_, ok := c.StringConcat(plain(c.WK.Int), plain(c.WK.Long))
	if ok {
		t.Errorf("StringConcat(int, long) should not be applicable")
	}
}

func TestEqualityCompatibleNullWithReference(t *testing.T) {
	c, _ := newContext()
	if !c.EqualityCompatible(plain(c.WK.NullPseudoType), plain(c.WK.String)) {
		t.Errorf("null should be equality-compatible with String")
	}
}

func TestEqualityCompatibleNullWithPrimitiveRejected(t *testing.T) {
	c, _ := newContext()
	if c.EqualityCompatible(plain(c.WK.NullPseudoType), plain(c.WK.Int)) {
		t.Errorf("null should not be equality-compatible with int")
	}
}

func TestEqualityCompatibleNumericPair(t *testing.T) {
	c, _ := newContext()
	if !c.EqualityCompatible(plain(c.WK.Int), plain(c.WK.Double)) {
		t.Errorf("int and double should be equality-compatible after promotion")
	}
}

func TestRelationalRejectsNonNumeric(t *testing.T) {
	c, _ := newContext()
	if _, ok := c.Relational(plain(c.WK.String), plain(c.WK.String)); ok {
		t.Errorf("Relational(String, String) should be rejected")
	}
}

func TestCastPrimitiveNarrowing(t *testing.T) {
	c, _ := newContext()
	v := plain(c.WK.Int)
	v.Value = int32(65)
	out, ok, unchecked := c.Cast(v, plain(c.WK.Byte).Type)
	if !ok || unchecked {
		t.Fatalf("Cast(int, byte): ok=%v unchecked=%v", ok, unchecked)
	}
	if out.Type.Erasure() != c.WK.Byte {
		t.Errorf("Cast result type = %v, want byte", out.Type.Erasure())
	}
}

func TestCastPrimitiveToReferenceRejected(t *testing.T) {
	c, _ := newContext()
	_, ok, _ := c.Cast(plain(c.WK.Int), plain(c.WK.String).Type)
	if ok {
		t.Errorf("Cast(int, String) should be rejected")
	}
}

func TestInstanceOfRejectsNonWildcardParameterized(t *testing.T) {
	list := symbol.NewType(symbol.NewInterner().Intern("List"), nil, nil)
	list.ExternalName = "List"
	target := &symbol.Parameterized{Generic: list, Args: []symbol.RichType{symbol.Plain{Sym: symbol.NoType}}}
	if InstanceOf(target) {
		t.Errorf("instanceof List<ConcreteType> should be rejected")
	}
}

func TestInstanceOfAllowsUnboundedWildcard(t *testing.T) {
	in := symbol.NewInterner()
	list := symbol.NewType(in.Intern("List"), nil, nil)
	list.ExternalName = "List"
	target := &symbol.Parameterized{Generic: list, Args: []symbol.RichType{symbol.Wildcard{Kind: symbol.WildcardUnbounded}}}
	if !InstanceOf(target) {
		t.Errorf("instanceof List<?> should be allowed")
	}
}

func TestConditionalBothNumericPromotes(t *testing.T) {
	c, _ := newContext()
	out := c.Conditional(plain(c.WK.Int), plain(c.WK.Double))
	if out.Type.Erasure() != c.WK.Double {
		t.Errorf("Conditional(int, double) = %v, want double", out.Type.Erasure())
	}
}

func TestConditionalConstantFitsNarrowerArm(t *testing.T) {
	c, _ := newContext()
	constArm := plain(c.WK.Int)
	constArm.Value = int32(1)
	out := c.Conditional(constArm, plain(c.WK.Byte))
	if out.Type.Erasure() != c.WK.Byte {
		t.Errorf("Conditional(1, byte-arm) = %v, want byte (narrowing constant rule)", out.Type.Erasure())
	}
}

func TestConditionalBooleanMismatchRejected(t *testing.T) {
	c, _ := newContext()
	out := c.Conditional(plain(c.WK.Boolean), plain(c.WK.Int))
	if !out.IsNoType() {
		t.Errorf("Conditional(boolean, int) should be no_type")
	}
}

func TestConditionalReferenceCommonSuperclass(t *testing.T) {
	c, in := newContext()
	a := symbol.NewType(in.Intern("A"), nil, nil)
	a.ExternalName = "A"
	a.Super = c.WK.Object
	b := symbol.NewType(in.Intern("B"), nil, nil)
	b.ExternalName = "B"
	b.Super = c.WK.Object
	out := c.Conditional(plain(a), plain(b))
	if out.Type.Erasure() != c.WK.Object {
		t.Errorf("Conditional(A, B) = %v, want common superclass Object", out.Type.Erasure())
	}
}

// int i = 1/0: constant division by zero is warned, but the expression
// keeps its declared type and compilation continues.
func TestFoldBinaryIntDivideByZeroWarnsButContinues(t *testing.T) {
	c, _ := newContext()
	l := plain(c.WK.Int)
	l.Value = int32(1)
	r := plain(c.WK.Int)
	r.Value = int32(0)
	folded := c.FoldBinary("/", l, r, c.WK.Int, "E.java", 1, 20)
	if folded != nil {
		t.Errorf("FoldBinary(1/0) = %v, want nil (not folded)", folded)
	}
	diags := c.Diags.All()
	if len(diags) != 1 || diags[0].Kind != diag.ConstantOverflow || diags[0].Severity != diag.Warning {
		t.Errorf("diagnostics = %+v, want a single ConstantOverflow warning", diags)
	}
}

func TestFoldBinaryIntOverflowWarns(t *testing.T) {
	c, _ := newContext()
	l := plain(c.WK.Int)
	l.Value = int32(2147483647)
	r := plain(c.WK.Int)
	r.Value = int32(1)
	folded := c.FoldBinary("+", l, r, c.WK.Int, "E.java", 2, 5)
	if folded.(int32) != -2147483648 {
		t.Errorf("FoldBinary(MaxInt32+1) = %v, want wrapped -2147483648", folded)
	}
	if len(c.Diags.All()) != 1 {
		t.Errorf("expected one overflow diagnostic, got %v", c.Diags.All())
	}
}

func TestFoldBinaryIntNoOverflowNoWarning(t *testing.T) {
	c, _ := newContext()
	l := plain(c.WK.Int)
	l.Value = int32(2)
	r := plain(c.WK.Int)
	r.Value = int32(3)
	folded := c.FoldBinary("+", l, r, c.WK.Int, "E.java", 1, 1)
	if folded.(int32) != 5 {
		t.Errorf("FoldBinary(2+3) = %v, want 5", folded)
	}
	if len(c.Diags.All()) != 0 {
		t.Errorf("unexpected diagnostics: %v", c.Diags.All())
	}
}

func TestFoldShiftMasksOverWidthCount(t *testing.T) {
	c, _ := newContext()
	l := plain(c.WK.Int)
	l.Value = int32(1)
	shiftCount := plain(c.WK.Int)
	shiftCount.Value = int32(33) // masked to 1 for a 32-bit operand
	folded := c.FoldShift("<<", l, shiftCount, c.WK.Int, "E.java", 3, 9)
	if folded.(int32) != 2 {
		t.Errorf("FoldShift(1 << 33) = %v, want 2 (masked to 1 << 1)", folded)
	}
	if len(c.Diags.All()) != 1 {
		t.Errorf("expected one shift-range diagnostic, got %v", c.Diags.All())
	}
}

func TestFoldShiftNegativeCountWarns(t *testing.T) {
	c, _ := newContext()
	l := plain(c.WK.Int)
	l.Value = int32(4)
	shiftCount := plain(c.WK.Int)
	shiftCount.Value = int32(-1)
	c.FoldShift(">>", l, shiftCount, c.WK.Int, "E.java", 4, 1)
	if len(c.Diags.All()) != 1 {
		t.Errorf("expected a negative-shift-count diagnostic, got %v", c.Diags.All())
	}
}

func TestFoldUnaryNegateMinIntWarns(t *testing.T) {
	c, _ := newContext()
	v := plain(c.WK.Int)
	v.Value = int32(-2147483648)
	folded := c.FoldUnary("-", v, c.WK.Int, "E.java", 5, 1)
	if folded.(int32) != -2147483648 {
		t.Errorf("FoldUnary(-MinInt32) = %v, want itself (wraps)", folded)
	}
	if len(c.Diags.All()) != 1 {
		t.Errorf("expected one overflow diagnostic, got %v", c.Diags.All())
	}
}

func TestCompoundAssignNumericPromotesAndFolds(t *testing.T) {
	c, _ := newContext()
	lhs := plain(c.WK.Int)
	lhs.Value = int32(5)
	rhs := plain(c.WK.Int)
	rhs.Value = int32(3)
	out, ok := c.CompoundAssign(CompoundNumeric, "+", lhs, rhs)
	if !ok {
		t.Fatalf("CompoundAssign(+=) should be applicable")
	}
	if out.Type.Erasure() != c.WK.Int {
		t.Errorf("CompoundAssign result type = %v, want the LHS's int", out.Type.Erasure())
	}
	if out.Value.(int32) != 8 {
		t.Errorf("CompoundAssign folded value = %v, want 8", out.Value)
	}
}

func TestCompoundAssignStringPlusEquals(t *testing.T) {
	c, _ := newContext()
	lhs := plain(c.WK.String)
	rhs := plain(c.WK.Int)
	_, ok := c.CompoundAssign(CompoundNumeric, "+", lhs, rhs)
	if !ok {
		t.Errorf("s += 1 should be applicable (String += converts the RHS)")
	}
}

func TestCompoundAssignBitwiseRejectsFloat(t *testing.T) {
	c, _ := newContext()
	lhs := plain(c.WK.Float)
	rhs := plain(c.WK.Int)
	_, ok := c.CompoundAssign(CompoundBitwise, "&", lhs, rhs)
	if ok {
		t.Errorf("f &= 1 should be rejected, bitwise operators are boolean/integral only")
	}
}

func TestCompoundAssignShiftUsesIntRHS(t *testing.T) {
	c, _ := newContext()
	lhs := plain(c.WK.Long)
	rhs := plain(c.WK.Byte)
	out, ok := c.CompoundAssign(CompoundShift, "<<", lhs, rhs)
	if !ok {
		t.Fatalf("l <<= (byte) should be applicable")
	}
	if out.Type.Erasure() != c.WK.Long {
		t.Errorf("CompoundAssign shift result = %v, want long (the LHS's type)", out.Type.Erasure())
	}
}
