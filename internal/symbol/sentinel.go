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

// NoType is the sentinel erasure stamped on an expression once it fails
// to type-check (spec §4.6): freely convertible to and from any type so
// a single error does not cascade into dozens of secondary diagnostics.
// Unlike the per-compilation Interner and diag.Sink, NoType carries no
// mutable state of its own — it is a fixed identity marker, the
// "untyped nil" of this model — so, unlike those, a single package-level
// value is safe to share across compilations.
var NoType = &Type{ExternalName: "<no type>"}

// IsNoType reports whether t's erasure is the NoType sentinel (including
// t itself being nil, which callers treat the same way: nothing further
// to check).
func IsNoType(t RichType) bool {
	if t == nil {
		return true
	}
	return t.Erasure() == NoType
}
