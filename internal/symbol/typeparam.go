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

package symbol

// TypeParameter is a single declared type variable, e.g. the "T" in
// "class Box<T extends Number & Comparable<T>>". Bounds preserves
// declaration order; the first bound is the erasure target (JLS 4.4),
// and any remaining bounds must be interface types (the "intersection
// type" case).
type TypeParameter struct {
	SimpleName Name
	Owner      Symbol // *Type or *Method that declares this parameter
	Index      int    // position within Owner's TypeParameters list

	Bounds []RichType // empty means "extends Object" implicitly

	erased *Type // memoized first-bound erasure
}

// ErasedType returns the plain Type substituted for this parameter
// wherever generics are erased: the erasure of the first bound. Callers that need Object must
// supply it themselves when Bounds is empty; this method returns nil in
// that case so it never silently fabricates a symbol it doesn't own.
func (p *TypeParameter) ErasedType() *Type {
	if len(p.Bounds) == 0 {
		return nil
	}
	if p.erased != nil {
		return p.erased
	}
	p.erased = p.Bounds[0].Erasure()
	return p.erased
}

// SecondaryBounds returns the bounds after the first, i.e. the
// additional interface types of an intersection bound like
// "T extends A & B". Field and method lookup on a type-variable-typed
// expression must also search these (supplementing the erasure-only
// view with the secondary-bound interfaces a plain erasure would drop).
func (p *TypeParameter) SecondaryBounds() []RichType {
	if len(p.Bounds) <= 1 {
		return nil
	}
	return p.Bounds[1:]
}
