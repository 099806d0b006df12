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

// unboxedPrimitive returns the primitive a value's type unboxes or
// already is, or nil if it is neither (a reference type with no
// unboxing conversion, or no_type).
func (c *Context) unboxedPrimitive(v Typed) *symbol.Type {
	e := v.Type.Erasure()
	if e == nil || e == symbol.NoType {
		return nil
	}
	if c.WK.IsPrimitive(e) {
		return e
	}
	return c.WK.Unboxed(e)
}

// UnaryNumericPromote implements spec §4.4 "Unary: unbox wrappers;
// promote byte/short/char to int."
func (c *Context) UnaryNumericPromote(v Typed) Typed {
	prim := c.unboxedPrimitive(v)
	if prim == nil {
		return NoType()
	}
	target := c.WK.UnaryPromote(prim)
	return c.ConvertToType(v, symbol.Plain{Sym: target})
}

// BinaryNumericPromote implements spec §4.4 "Binary: unbox both sides;
// if either is double/float/long, both become that; else both become
// int," returning both operands converted to the common promoted type.
func (c *Context) BinaryNumericPromote(l, r Typed) (Typed, Typed, *symbol.Type) {
	lp := c.unboxedPrimitive(l)
	rp := c.unboxedPrimitive(r)
	if lp == nil || rp == nil || !c.WK.IsNumeric(lp) || !c.WK.IsNumeric(rp) {
		return NoType(), NoType(), nil
	}
	target := c.WK.BinaryPromote(lp, rp)
	rich := symbol.Plain{Sym: target}
	return c.ConvertToType(l, rich), c.ConvertToType(r, rich), target
}
