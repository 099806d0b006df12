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

package overload

import "github.com/jikesgo/jikesgo/internal/symbol"

// selectMaximallySpecific implements spec §4.2's maximally-specific-set
// algorithm: each applicable candidate either replaces the set (it is
// more specific than everything currently in it), joins the set
// (incomparable with everything in it), or is discarded (dominated by
// something already in the set).
func selectMaximallySpecific(applicable []*symbol.Method, args []symbol.RichType, phase Phase, r *Resolver) []*symbol.Method {
	var maximal []*symbol.Method
	for _, m := range applicable {
		if moreSpecificThanAll(m, maximal, len(args), r) {
			maximal = []*symbol.Method{m}
		} else if noneMoreSpecific(maximal, m, len(args), r) {
			maximal = append(maximal, m)
		}
	}
	return maximal
}

func moreSpecificThanAll(m *symbol.Method, set []*symbol.Method, argCount int, r *Resolver) bool {
	for _, s := range set {
		if !moreSpecific(m, s, argCount, r) {
			return false
		}
	}
	return true
}

func noneMoreSpecific(set []*symbol.Method, m *symbol.Method, argCount int, r *Resolver) bool {
	for _, s := range set {
		if moreSpecific(s, m, argCount, r) {
			return false
		}
	}
	return true
}

// moreSpecific reports whether a is more specific than b: for every
// parameter position (up to argCount, so a varargs method's repeated
// tail type is compared against the call's actual arity), a's formal is
// subtype-convertible to b's formal with no boxing (spec §4.2: "The
// declaring-type test is omitted" — we never compare a.ContainingType
// vs b.ContainingType, matching the note about pre-empting Sun bug
// 4761586's clarification).
func moreSpecific(a, b *symbol.Method, argCount int, r *Resolver) bool {
	for i := 0; i < argCount; i++ {
		fa := formalTypeAt(a, i)
		fb := formalTypeAt(b, i)
		if fa == nil || fb == nil {
			return false
		}
		if _, ok := r.convertible(fa, fb, PhaseStrict); !ok {
			return false
		}
	}
	return true
}

// formalTypeAt returns m's formal type at position i, treating a
// varargs method's final array formal as repeating for every position
// beyond the fixed prefix (so specificity comparisons line up even when
// the call supplies more actuals than m has formals).
func formalTypeAt(m *symbol.Method, i int) symbol.RichType {
	if i < len(m.Formals) {
		if i == len(m.Formals)-1 && m.Flags.IsVarargs() {
			if arr, ok := m.Formals[i].Type.(symbol.ArrayOf); ok {
				return arr.Component
			}
		}
		return m.Formals[i].Type
	}
	if m.Flags.IsVarargs() && len(m.Formals) > 0 {
		if arr, ok := m.Formals[len(m.Formals)-1].Type.(symbol.ArrayOf); ok {
			return arr.Component
		}
	}
	return nil
}
