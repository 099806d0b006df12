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
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/typeutil"
)

// Conditional implements spec §4.4's "?:" rule.
func (c *Context) Conditional(then, els Typed) Typed {
	te, ee := then.Type.Erasure(), els.Type.Erasure()
	if te == nil || ee == nil || te == symbol.NoType || ee == symbol.NoType {
		return NoType()
	}
	if te == ee {
		return Typed{Type: then.Type}
	}

	tPrim := c.WK.IsPrimitive(te)
	ePrim := c.WK.IsPrimitive(ee)
	switch {
	case tPrim && ePrim:
		return c.conditionalBothPrimitive(then, els, te, ee)
	case tPrim && !ePrim:
		return c.conditionalMixed(then, els)
	case !tPrim && ePrim:
		return c.conditionalMixed(els, then)
	default:
		return c.conditionalBothReference(te, ee)
	}
}

func (c *Context) conditionalBothPrimitive(then, els Typed, te, ee *symbol.Type) Typed {
	if te == c.WK.Boolean || ee == c.WK.Boolean {
		if te == c.WK.Boolean && ee == c.WK.Boolean {
			return Typed{Type: then.Type}
		}
		return NoType()
	}
	if !c.WK.IsNumeric(te) || !c.WK.IsNumeric(ee) {
		return NoType()
	}
	// "the narrower when a constant arm fits": a constant arm of a wider
	// declared type that nonetheless fits the other arm's narrower range
	// takes that narrower type (JLS 15.25's byte/short/char special case).
	if then.Value != nil && fitsIn(then.Value, ee) {
		return Typed{Type: els.Type}
	}
	if els.Value != nil && fitsIn(els.Value, te) {
		return Typed{Type: then.Type}
	}
	return Typed{Type: symbol.Plain{Sym: c.WK.BinaryPromote(te, ee)}}
}

// conditionalMixed handles one primitive arm and one reference arm:
// unbox the reference arm to match first, else box the primitive arm
// and take the least upper bound.
func (c *Context) conditionalMixed(primArm, refArm Typed) Typed {
	primErased := primArm.Type.Erasure()
	refErased := refArm.Type.Erasure()
	if unboxed := c.WK.Unboxed(refErased); unboxed == primErased {
		return Typed{Type: primArm.Type}
	}
	boxed := c.WK.Boxed(primErased)
	if boxed == nil {
		return NoType()
	}
	return c.conditionalBothReference(boxed, refErased)
}

func (c *Context) conditionalBothReference(a, b *symbol.Type) Typed {
	if typeutil.IsSubtype(a, b) {
		return Typed{Type: symbol.Plain{Sym: b}}
	}
	if typeutil.IsSubtype(b, a) {
		return Typed{Type: symbol.Plain{Sym: a}}
	}
	common := typeutil.CommonSuperclass(a, b)
	if common == nil {
		return NoType()
	}
	return Typed{Type: symbol.Plain{Sym: common}}
}

// fitsIn reports whether constant value v (already typed as some wider
// numeric primitive) fits within target's range, for target one of
// byte/short/char; used by the conditional operator's narrowing-constant
// special case. Non-integral targets never "fit" a narrower constant.
func fitsIn(v interface{}, target *symbol.Type) bool {
	n := toInt64(v)
	switch target.ExternalName {
	case "byte":
		return n >= -128 && n <= 127
	case "short":
		return n >= -32768 && n <= 32767
	case "char":
		return n >= 0 && n <= 65535
	default:
		return false
	}
}
