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

// Package generics implements the two substitution responsibilities of
// spec §4.3: propagating a receiver's parameterised-type arguments down
// through its inheritance chain to type a member access, and inferring a
// generic method's own type parameters from an invocation's actual
// arguments. Both are direct descendants of the original sources'
// paramtype.cpp/typ.cpp substitution walks, rebuilt against the
// RichType sum type in internal/symbol/gentype.go instead of a mutable
// TypeSymbol substitution table.
package generics

import "github.com/jikesgo/jikesgo/internal/symbol"

// Substitution maps a TypeParameter to the RichType it stands for at one
// particular use site (a receiver's type arguments, or a method call's
// inferred type arguments).
type Substitution map[*symbol.TypeParameter]symbol.RichType

// Substitute rewrites every TypeVarRef in t found in sub to its mapped
// RichType, recursively. Types with no mentioned parameter are returned
// unchanged (identity, not a defensive copy) so repeated substitution of
// a non-generic member's type is a cheap no-op.
func Substitute(t symbol.RichType, sub Substitution) symbol.RichType {
	if len(sub) == 0 || t == nil {
		return t
	}
	switch v := t.(type) {
	case symbol.TypeVarRef:
		if repl, ok := sub[v.Param]; ok {
			return repl
		}
		return t
	case *symbol.Parameterized:
		args := make([]symbol.RichType, len(v.Args))
		changed := false
		for i, a := range v.Args {
			na := Substitute(a, sub)
			args[i] = na
			if na != a {
				changed = true
			}
		}
		var enc *symbol.Parameterized
		if v.Enclosing != nil {
			if e := Substitute(v.Enclosing, sub); e != v.Enclosing {
				changed = true
				enc = e.(*symbol.Parameterized)
			} else {
				enc = v.Enclosing
			}
		}
		if !changed {
			return t
		}
		return &symbol.Parameterized{Generic: v.Generic, Args: args, Enclosing: enc}
	case symbol.Wildcard:
		if v.Bound == nil {
			return t
		}
		if nb := Substitute(v.Bound, sub); nb != v.Bound {
			return symbol.Wildcard{Kind: v.Kind, Bound: nb}
		}
		return t
	case symbol.ArrayOf:
		if nc := Substitute(v.Component, sub); nc != v.Component {
			return symbol.ArrayOf{Component: nc}
		}
		return t
	default: // Plain
		return t
	}
}

// InheritedMemberType implements spec §4.3(a): given a receiver of
// static type recv (a direct Box<String>, or a plain S whose declared
// supertype is Box<String>) and a member declared with type declaredType
// on declaringType, walk the super chain from recv's erasure until it
// finds a parameterised-super or parameterised-interface whose erasure
// is declaringType, composing substitutions hop by hop, and returns
// declaredType rewritten through that composed substitution.
//
// A receiver that is not itself Parameterized still has its supertypes'
// type arguments applied. When no parameterised link to declaringType is
// found (declaringType is not generic, or was reached only through a raw
// supertype), declaredType
// is returned unchanged: substitution only ever narrows, it never
// invents type arguments out of nothing.
func InheritedMemberType(recv symbol.RichType, declaringType *symbol.Type, declaredType symbol.RichType) symbol.RichType {
	sub := pathSubstitution(recv, declaringType)
	if sub == nil {
		return declaredType
	}
	return Substitute(declaredType, sub)
}

// pathSubstitution finds the chain of parameterised supers/interfaces
// from recv's erasure down to declaringType and composes the
// TypeParameter->RichType maps along the way. Returns nil if
// declaringType is not reachable through any parameterised link (so the
// caller knows to leave the member's type as declared).
func pathSubstitution(recv symbol.RichType, declaringType *symbol.Type) Substitution {
	start := recv.Erasure()
	if start == nil {
		return nil
	}
	var recvArgs Substitution
	if p, ok := recv.(*symbol.Parameterized); ok {
		recvArgs = bindArgs(p.Generic, p.Args)
	}
	return walk(start, recvArgs, declaringType, make(map[*symbol.Type]bool))
}

// walk performs a DFS from "cur" (already substituted by curSub, which
// maps cur's own type parameters to concrete RichTypes at this point in
// the search) toward declaringType, composing substitutions hop by hop
// as spec §4.3(a) requires ("substituting type-parameter references hop
// by hop"). It covers both the single super and the parameterised
// interface list (spec: "Walks cover both single super and
// parameterised interfaces").
func walk(cur *symbol.Type, curSub Substitution, target *symbol.Type, visited map[*symbol.Type]bool) Substitution {
	if cur == target {
		return curSub
	}
	if visited[cur] {
		return nil
	}
	visited[cur] = true
	defer delete(visited, cur)

	if cur.Super != nil {
		next, nextSub := hop(cur, cur.Super, cur.ParamSuper, curSub)
		if r := walk(next, nextSub, target, visited); r != nil {
			return r
		}
	}
	for i, iface := range cur.Interfaces {
		var pi *symbol.Parameterized
		if i < len(cur.ParamInterfaces) {
			pi = cur.ParamInterfaces[i]
		}
		next, nextSub := hop(cur, iface, pi, curSub)
		if r := walk(next, nextSub, target, visited); r != nil {
			return r
		}
	}
	return nil
}

// hop computes the substitution visible one level up the chain: the
// supertype's own type parameters bound to (curSub-substituted)
// arguments recorded on param, the parameterised-super descriptor.
func hop(cur, super *symbol.Type, param *symbol.Parameterized, curSub Substitution) (*symbol.Type, Substitution) {
	if param == nil {
		return super, nil // raw/plain supertype: no further substitution possible
	}
	args := make([]symbol.RichType, len(param.Args))
	for i, a := range param.Args {
		args[i] = Substitute(a, curSub)
	}
	return super, bindArgs(param.Generic, args)
}

// bindArgs zips generic's own TypeParameters with the concrete args a
// parameterised use supplied, positionally (JLS: type arguments are
// ordered to match the declaration's type-parameter list).
func bindArgs(generic *symbol.Type, args []symbol.RichType) Substitution {
	sub := make(Substitution, len(args))
	for i, tp := range generic.TypeParameters {
		if i < len(args) {
			sub[tp] = args[i]
		}
	}
	return sub
}

// CloneReturnType implements the array.clone() special case noted in
// spec §4.3(b): clone()'s declared return type on java.lang.Object is
// Object, but the resolved type of a call through an array receiver is
// the array's own type.
func CloneReturnType(receiver symbol.RichType, methodName string) (symbol.RichType, bool) {
	if methodName != "clone" {
		return nil, false
	}
	if receiver.Erasure() != nil && receiver.Erasure().IsArray() {
		return receiver, true
	}
	return nil, false
}
