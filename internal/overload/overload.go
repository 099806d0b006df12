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

// Package overload implements the three-phase applicable-method search
// and specificity lattice of spec §4.2 (JLS 15.12.2): phase 1
// (subtyping only), phase 2 (boxing/unboxing), phase 3 (varargs). It has
// no precedent in the teacher repo (a dependency-graph tool has no
// overload resolution of its own); it is grounded instead on the
// original sources' bind.cpp MemberTable::FindMethodOrConstructor three-
// pass structure, rebuilt against internal/typeutil's subtype relation
// and internal/wellknown's boxing table.
package overload

import (
	"fmt"

	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/typeutil"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

// Phase identifies which of the three passes selected a method.
type Phase int

const (
	PhaseStrict Phase = iota
	PhaseLoose
	PhaseVarargs
)

// ConvKind classifies the implicit conversion applied to one argument.
type ConvKind int

const (
	ConvIdentity ConvKind = iota
	ConvWidening
	ConvBoxing
	ConvUnboxing
	ConvVarargsWrap        // args -1)+ actuals packed into a new array literal
	ConvVarargsPassThrough // caller already supplied the array itself
)

// ArgConversion records what ConvertToType must materialise for one
// actual argument once a method has been selected.
type ArgConversion struct {
	Kind   ConvKind
	Target symbol.RichType
}

// Selection is a successful resolution.
type Selection struct {
	Method      *symbol.Method
	Phase       Phase
	Conversions []ArgConversion
}

// Resolver carries the well-known-type table every applicability test
// needs (boxing pairs, primitive widening ranks).
type Resolver struct {
	WK *wellknown.Types
}

// NoApplicableMethodError and AmbiguousError are returned by Select;
// internal/typecheck turns them into diag.NoApplicableMethod /
// diag.AmbiguousMethod diagnostics and stamps the call's resolved type
// no_type (spec §4.6).
type NoApplicableMethodError struct{ Name string }

func (e *NoApplicableMethodError) Error() string {
	return fmt.Sprintf("no applicable method %s", e.Name)
}

type AmbiguousError struct {
	Name       string
	Candidates []*symbol.Method
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("reference to %s is ambiguous (%d candidates)", e.Name, len(e.Candidates))
}

// Select runs the three-phase search over candidates (all same-named
// overloads) against the actual argument types, in left-to-right order
// for diagnostics, and returns the chosen method plus its per-argument
// conversions, or an error.
func (r *Resolver) Select(name string, candidates []*symbol.Method, args []symbol.RichType) (*Selection, error) {
	for _, phase := range []Phase{PhaseStrict, PhaseLoose, PhaseVarargs} {
		type hit = struct {
			m    *symbol.Method
			conv []ArgConversion
		}
		var applicable []hit
		for _, m := range candidates {
			if conv, ok := r.applicable(m, args, phase); ok {
				applicable = append(applicable, hit{m, conv})
			}
		}
		if len(applicable) == 0 {
			continue
		}
		maximal := selectMaximallySpecific(toMethods(applicable), args, phase, r)
		if len(maximal) == 1 {
			for _, h := range applicable {
				if h.m == maximal[0] {
					return &Selection{Method: h.m, Phase: phase, Conversions: h.conv}, nil
				}
			}
		}
		return nil, &AmbiguousError{Name: name, Candidates: maximal}
	}
	return nil, &NoApplicableMethodError{Name: name}
}

func toMethods(hits []struct {
	m    *symbol.Method
	conv []ArgConversion
}) []*symbol.Method {
	out := make([]*symbol.Method, len(hits))
	for i, h := range hits {
		out[i] = h.m
	}
	return out
}

// applicable tests whether m can be invoked with args in the given
// phase, returning the per-argument conversions on success.
func (r *Resolver) applicable(m *symbol.Method, args []symbol.RichType, phase Phase) ([]ArgConversion, bool) {
	if phase != PhaseVarargs || !m.Flags.IsVarargs() || m.IsConstructor() {
		if phase == PhaseVarargs {
			return nil, false // varargs phase only considers varargs methods, never constructors
		}
		if len(args) != len(m.Formals) {
			return nil, false
		}
		convs := make([]ArgConversion, len(args))
		for i, a := range args {
			c, ok := r.convertible(a, m.Formals[i].Type, phase)
			if !ok {
				return nil, false
			}
			convs[i] = c
		}
		if m.Flags.IsVarargs() && len(convs) > 0 {
			// An array supplied in the varargs slot is passed through as is.
			last := len(convs) - 1
			convs[last] = ArgConversion{Kind: ConvVarargsPassThrough, Target: m.Formals[last].Type}
		}
		return convs, true
	}

	// Varargs phase, varargs method: fixed prefix plus a variable tail.
	fixed := len(m.Formals) - 1
	if len(args) < fixed {
		return nil, false
	}
	convs := make([]ArgConversion, len(args))
	for i := 0; i < fixed; i++ {
		c, ok := r.convertible(args[i], m.Formals[i].Type, PhaseLoose)
		if !ok {
			return nil, false
		}
		convs[i] = c
	}
	varargsFormal, ok := m.Formals[fixed].Type.(symbol.ArrayOf)
	if !ok {
		return nil, false
	}
	if len(args) == len(m.Formals) {
		// Try pass-through: the lone trailing actual is itself assignment
		// compatible with the array type.
		if _, ok := r.convertible(args[fixed], m.Formals[fixed].Type, PhaseLoose); ok {
			convs[fixed] = ArgConversion{Kind: ConvVarargsPassThrough, Target: m.Formals[fixed].Type}
			return convs, true
		}
	}
	for i := fixed; i < len(args); i++ {
		if _, ok := r.convertible(args[i], varargsFormal.Component, PhaseLoose); !ok {
			return nil, false
		}
	}
	convs = convs[:fixed]
	convs = append(convs, ArgConversion{Kind: ConvVarargsWrap, Target: m.Formals[fixed].Type})
	return convs, true
}

// convertible implements one argument/formal applicability test for a
// non-varargs phase (spec §4.2 Phase 1 / Phase 2 definitions).
func (r *Resolver) convertible(arg, formal symbol.RichType, phase Phase) (ArgConversion, bool) {
	argErased := arg.Erasure()
	formalErased := formal.Erasure()
	if argErased == nil || formalErased == nil || argErased == symbol.NoType || formalErased == symbol.NoType {
		return ArgConversion{Kind: ConvIdentity}, true // no_type: never cascade (spec §4.6)
	}

	if argErased == r.WK.NullPseudoType {
		if !r.WK.IsPrimitive(formalErased) {
			return ArgConversion{Kind: ConvIdentity, Target: formal}, true
		}
		return ArgConversion{}, false
	}

	argPrim := r.WK.IsPrimitive(argErased)
	formalPrim := r.WK.IsPrimitive(formalErased)

	switch {
	case argPrim && formalPrim:
		if r.WK.Widens(argErased, formalErased) {
			kind := ConvIdentity
			if argErased != formalErased {
				kind = ConvWidening
			}
			return ArgConversion{Kind: kind, Target: formal}, true
		}
		return ArgConversion{}, false

	case argPrim && !formalPrim:
		if phase == PhaseStrict {
			return ArgConversion{}, false
		}
		boxed := r.WK.Boxed(argErased)
		if boxed == nil {
			return ArgConversion{}, false
		}
		if typeutil.IsSubtype(boxed, formalErased) {
			return ArgConversion{Kind: ConvBoxing, Target: formal}, true
		}
		return ArgConversion{}, false

	case !argPrim && formalPrim:
		if phase == PhaseStrict {
			return ArgConversion{}, false
		}
		if prim := r.WK.Unboxed(argErased); prim == formalErased {
			return ArgConversion{Kind: ConvUnboxing, Target: formal}, true
		}
		return ArgConversion{}, false

	default: // both reference types
		if typeutil.IsSubtype(argErased, formalErased) {
			return ArgConversion{Kind: ConvIdentity, Target: formal}, true
		}
		return ArgConversion{}, false
	}
}
