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

// convertConstant folds a constant Go value through a primitive
// conversion to target, when target is one of the eight primitives.
// Reference-typed constants (interned Strings) pass through unchanged.
func (c *Context) convertConstant(v interface{}, target symbol.RichType) interface{} {
	prim := target.Erasure()
	if prim == nil {
		return v
	}
	switch prim {
	case c.WK.Byte:
		return int8(toInt64(v))
	case c.WK.Short:
		return int16(toInt64(v))
	case c.WK.Char:
		return uint16(toInt64(v))
	case c.WK.Int:
		return int32(toInt64(v))
	case c.WK.Long:
		return toInt64(v)
	case c.WK.Float:
		return float32(toFloat64(v))
	case c.WK.Double:
		return toFloat64(v)
	case c.WK.Boolean:
		if b, ok := v.(bool); ok {
			return b
		}
		return v
	default:
		return v
	}
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case uint16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float32:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case uint16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// Cast implements spec §4.4's cast rule: widening/narrowing between
// primitives (always allowed, materialised as a ConvertToType), or
// cast-compatible reference types (typeutil.CastCompatible), reporting
// an unchecked-cast warning when the target carries type arguments
// (spec: "Unchecked-cast warnings are raised for casts whose target has
// type arguments").
func (c *Context) Cast(v Typed, target symbol.RichType) (Typed, bool, bool) {
	targetErased := target.Erasure()
	srcErased := v.Type.Erasure()
	if srcErased == nil || targetErased == nil || srcErased == symbol.NoType || targetErased == symbol.NoType {
		return NoType(), true, false
	}

	srcPrim := c.WK.IsPrimitive(srcErased)
	dstPrim := c.WK.IsPrimitive(targetErased)
	if srcPrim != dstPrim {
		return NoType(), false, false
	}
	if srcPrim && dstPrim {
		return c.ConvertToType(v, target), true, false
	}

	ok := typeutil.CastCompatible(srcErased, targetErased)
	unchecked := false
	if p, isParam := target.(*symbol.Parameterized); isParam && len(p.Args) > 0 {
		if _, anyWildcard := p.Args[0].(symbol.Wildcard); !anyWildcard {
			unchecked = true
		}
	}
	return c.ConvertToType(v, target), ok, unchecked
}

// InstanceOf implements spec §4.4's instanceof rule: rejects a
// parameterised target whose arguments are not all unbounded wildcards
// (spec: "Rejects parameterised target with non-wildcard or bounded-
// wildcard arguments (unbounded `?` is allowed)").
func InstanceOf(target symbol.RichType) bool {
	p, ok := target.(*symbol.Parameterized)
	if !ok {
		return true
	}
	for _, arg := range p.Args {
		w, isWildcard := arg.(symbol.Wildcard)
		if !isWildcard || w.Kind != symbol.WildcardUnbounded {
			return false
		}
	}
	return true
}
