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
	"fmt"

	"github.com/jikesgo/jikesgo/internal/symbol"
)

// StringConcat implements spec §4.4's "+" concatenation rule: if either
// operand is String, the result is String; when both sides are constant
// the concatenation is folded, each value turned into text by stringOf;
// otherwise the conversion is left to the bytecode
// emitter (which chooses StringBuilder vs StringBuffer by target JVM
// level — out of this core's scope per spec §1).
func (c *Context) StringConcat(l, r Typed) (Typed, bool) {
	lString := c.isString(l)
	rString := c.isString(r)
	if !lString && !rString {
		return Typed{}, false
	}
	stringType := symbol.Plain{Sym: c.WK.String}
	out := Typed{Type: stringType}
	if l.Value != nil && r.Value != nil {
		out.Value = stringOf(l.Value) + stringOf(r.Value)
	}
	return out, true
}

func stringOf(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
