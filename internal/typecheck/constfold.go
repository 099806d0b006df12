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
	"math"

	"github.com/jikesgo/jikesgo/internal/diag"
	"github.com/jikesgo/jikesgo/internal/symbol"
)

// FoldBinary implements spec §4.4's constant folding for primitive
// binary operators, given both operands already binary-promoted to
// target. Returns nil (no constant value — the expression is still
// typed, just not foldable) for integer division/remainder by zero,
// which spec §8's "class E { int i = 1/0; }" scenario requires: a
// "zero divide" diagnostic, but the expression's type is still int and
// processing continues.
func (c *Context) FoldBinary(op string, l, r Typed, target *symbol.Type, fileName string, line, offset int) interface{} {
	if l.Value == nil || r.Value == nil {
		return nil
	}
	switch target {
	case c.WK.Int:
		return c.foldInt(op, int32(toInt64(l.Value)), int32(toInt64(r.Value)), fileName, line, offset)
	case c.WK.Long:
		return c.foldLong(op, toInt64(l.Value), toInt64(r.Value), fileName, line, offset)
	case c.WK.Float:
		return foldFloat(op, float32(toFloat64(l.Value)), float32(toFloat64(r.Value)))
	case c.WK.Double:
		return foldDouble(op, toFloat64(l.Value), toFloat64(r.Value))
	case c.WK.Boolean:
		return foldBoolean(op, l.Value, r.Value)
	default:
		return nil
	}
}

func (c *Context) foldInt(op string, l, r int32, fileName string, line, offset int) interface{} {
	switch op {
	case "+":
		wide := int64(l) + int64(r)
		c.warnIfOutOfInt32Range(wide, fileName, line, offset)
		return int32(wide)
	case "-":
		wide := int64(l) - int64(r)
		c.warnIfOutOfInt32Range(wide, fileName, line, offset)
		return int32(wide)
	case "*":
		wide := int64(l) * int64(r)
		c.warnIfOutOfInt32Range(wide, fileName, line, offset)
		return int32(wide)
	case "/":
		if r == 0 {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "zero divide")
			return nil
		}
		if l == math.MinInt32 && r == -1 {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "integer overflow in constant division %d / %d", l, r)
			return l // wraps to itself, as JVM idiv does
		}
		return l / r
	case "%":
		if r == 0 {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "zero divide")
			return nil
		}
		return l % r
	case "&":
		return l & r
	case "|":
		return l | r
	case "^":
		return l ^ r
	}
	return nil
}

func (c *Context) warnIfOutOfInt32Range(wide int64, fileName string, line, offset int) {
	if wide < math.MinInt32 || wide > math.MaxInt32 {
		c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "integer overflow in constant expression (%d)", wide)
	}
}

func (c *Context) foldLong(op string, l, r int64, fileName string, line, offset int) interface{} {
	switch op {
	case "+":
		sum := l + r
		if (r > 0 && sum < l) || (r < 0 && sum > l) {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "long overflow in constant expression")
		}
		return sum
	case "-":
		diff := l - r
		if (r < 0 && diff < l) || (r > 0 && diff > l) {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "long overflow in constant expression")
		}
		return diff
	case "*":
		prod := l * r
		if l != 0 && prod/l != r {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "long overflow in constant expression")
		}
		return prod
	case "/":
		if r == 0 {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "zero divide")
			return nil
		}
		if l == math.MinInt64 && r == -1 {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "long overflow in constant division")
			return l
		}
		return l / r
	case "%":
		if r == 0 {
			c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "zero divide")
			return nil
		}
		return l % r
	case "&":
		return l & r
	case "|":
		return l | r
	case "^":
		return l ^ r
	}
	return nil
}

func foldFloat(op string, l, r float32) interface{} {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	case "%":
		return float32(math.Mod(float64(l), float64(r)))
	}
	return nil
}

func foldDouble(op string, l, r float64) interface{} {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	case "%":
		return math.Mod(l, r)
	}
	return nil
}

func foldBoolean(op string, l, r interface{}) interface{} {
	lb, lok := l.(bool)
	rb, rok := r.(bool)
	if !lok || !rok {
		return nil
	}
	switch op {
	case "&", "&&":
		return lb && rb
	case "|", "||":
		return lb || rb
	case "^":
		return lb != rb
	case "==":
		return lb == rb
	case "!=":
		return lb != rb
	}
	return nil
}

// FoldUnary implements constant folding for the unary operators -, ~,
// and ! on an already-unary-promoted operand.
func (c *Context) FoldUnary(op string, v Typed, target *symbol.Type, fileName string, line, offset int) interface{} {
	if v.Value == nil {
		return nil
	}
	switch target {
	case c.WK.Int:
		n := int32(toInt64(v.Value))
		switch op {
		case "-":
			if n == math.MinInt32 {
				c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "integer overflow negating %d", n)
			}
			return -n
		case "~":
			return ^n
		}
	case c.WK.Long:
		n := toInt64(v.Value)
		switch op {
		case "-":
			if n == math.MinInt64 {
				c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "long overflow negating %d", n)
			}
			return -n
		case "~":
			return ^n
		}
	case c.WK.Float:
		if op == "-" {
			return -float32(toFloat64(v.Value))
		}
	case c.WK.Double:
		if op == "-" {
			return -toFloat64(v.Value)
		}
	case c.WK.Boolean:
		if op == "!" {
			b, _ := v.Value.(bool)
			return !b
		}
	}
	return nil
}

// FoldShift implements spec §4.4's shift-count masking: "Shift counts
// are masked by operand width (32 or 64). Negative or over-width
// constant shift counts are warned."
func (c *Context) FoldShift(op string, l, shiftCount Typed, target *symbol.Type, fileName string, line, offset int) interface{} {
	if l.Value == nil || shiftCount.Value == nil {
		return nil
	}
	mask := int64(31)
	if target == c.WK.Long {
		mask = 63
	}
	raw := toInt64(shiftCount.Value)
	if raw < 0 || raw > mask {
		c.Diags.Warnf(diag.ConstantOverflow, fileName, line, offset, "shift count %d out of range, masked to %d", raw, raw&mask)
	}
	count := uint(raw & mask)

	if target == c.WK.Long {
		lv := toInt64(l.Value)
		switch op {
		case "<<":
			return lv << count
		case ">>":
			return lv >> count
		case ">>>":
			return int64(uint64(lv) >> count)
		}
		return nil
	}
	lv := int32(toInt64(l.Value))
	switch op {
	case "<<":
		return lv << count
	case ">>":
		return lv >> count
	case ">>>":
		return int32(uint32(lv) >> count)
	}
	return nil
}
