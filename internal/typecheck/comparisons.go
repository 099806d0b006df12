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

// EqualityCompatible implements spec §4.4's equality/relational rule:
// "Allow numeric pairs after promotion; reference pairs if one is
// cast-convertible to the other; null comparable with any reference."
func (c *Context) EqualityCompatible(l, r Typed) bool {
	le, re := l.Type.Erasure(), r.Type.Erasure()
	if le == nil || re == nil || le == symbol.NoType || re == symbol.NoType {
		return true
	}
	if le == c.WK.NullPseudoType {
		return !c.WK.IsPrimitive(re)
	}
	if re == c.WK.NullPseudoType {
		return !c.WK.IsPrimitive(le)
	}
	if lp, rp := c.unboxedPrimitive(l), c.unboxedPrimitive(r); lp != nil && rp != nil {
		if lp == c.WK.Boolean || rp == c.WK.Boolean {
			return lp == c.WK.Boolean && rp == c.WK.Boolean
		}
		return true
	}
	if !c.WK.IsPrimitive(le) && !c.WK.IsPrimitive(re) {
		return typeutil.CastCompatible(le, re)
	}
	return false
}

// Relational implements "<, <=, >, >=": numeric pairs only, after binary
// promotion.
func (c *Context) Relational(l, r Typed) (symbol.RichType, bool) {
	_, _, promoted := c.BinaryNumericPromote(l, r)
	if promoted == nil {
		return nil, false
	}
	return symbol.Plain{Sym: c.WK.Boolean}, true
}
