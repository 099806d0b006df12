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

// Package typeutil holds the plain reference-type relations
// (subtyping, common superclass, array-element compatibility) that
// internal/overload's applicability tests, internal/typecheck's cast and
// conditional-operator rules, and internal/generics's substitution walk
// all need, so none of them re-implements its own supertype-DAG walk.
package typeutil

import "github.com/jikesgo/jikesgo/internal/symbol"

// IsSubtype reports whether sub <: sup, walking sub's superclass and
// superinterfaces transitively. Every type is its own subtype.
func IsSubtype(sub, sup *symbol.Type) bool {
	if sub == nil || sup == nil {
		return false
	}
	return isSubtype(sub, sup, make(map[*symbol.Type]bool))
}

func isSubtype(sub, sup *symbol.Type, visited map[*symbol.Type]bool) bool {
	if sub == sup {
		return true
	}
	if sub == symbol.NoType || sup == symbol.NoType {
		return true // spec §4.6: no_type is freely convertible to/from anything
	}
	if visited[sub] {
		return false
	}
	visited[sub] = true
	if sub.Super != nil && isSubtype(sub.Super, sup, visited) {
		return true
	}
	for _, iface := range sub.Interfaces {
		if isSubtype(iface, sup, visited) {
			return true
		}
	}
	// An array's only non-Object reference supertypes are Cloneable and
	// Serializable, and one array type is a subtype of another when their
	// components are reference types in a subtype relationship
	// (covariance, JLS 10.10); that component-wise case is checked here
	// through ArrayComponent.
	if comp := sub.ArrayComponent(); comp != nil {
		if supComp := sup.ArrayComponent(); supComp != nil {
			return isSubtype(comp, supComp, visited)
		}
	}
	return false
}

// CommonSuperclass returns the closest shared ancestor considering only
// the class chain (ignoring interfaces, per spec §4.4's conditional-
// operator rule: "find the common superclass (ignore interfaces to match
// observed behavior)"), or nil if a or b is nil.
func CommonSuperclass(a, b *symbol.Type) *symbol.Type {
	if a == nil || b == nil {
		return nil
	}
	ancestors := make(map[*symbol.Type]bool)
	for cur := a; cur != nil; cur = cur.Super {
		ancestors[cur] = true
	}
	for cur := b; cur != nil; cur = cur.Super {
		if ancestors[cur] {
			return cur
		}
	}
	return nil
}

// CastCompatible reports whether a value of type from may be cast to
// type to without being statically impossible: one is a subtype of the
// other (widening or narrowing reference cast), either one is an
// interface (a third type implementing it might exist; the method
// signatures of the two types are not compared), or both are arrays
// whose component types are cast-compatible.
func CastCompatible(from, to *symbol.Type) bool {
	if from == nil || to == nil {
		return true // one side already no_type: never cascade a second error
	}
	if IsSubtype(from, to) || IsSubtype(to, from) {
		return true
	}
	if from.Flags.IsInterface() || to.Flags.IsInterface() {
		return true
	}
	if fc, tc := from.ArrayComponent(), to.ArrayComponent(); fc != nil && tc != nil {
		return CastCompatible(fc, tc)
	}
	return false
}
