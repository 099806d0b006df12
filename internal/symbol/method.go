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

// Method represents a method or constructor (spec §3). Constructors use
// the reserved simple name "<init>", matching the JVM constant-pool
// convention, so overload resolution can treat them uniformly with
// ordinary methods keyed by name.
type Method struct {
	SimpleName     Name
	ContainingType *Type

	ReturnType RichType // nil for constructors
	Formals    []*Variable
	Throws     []*Type

	Flags Flags

	TypeParameters []*TypeParameter // method-level generics, e.g. <T> T id(T x)

	Block *Block // nil until the body is parsed/attached

	// AccessedMember is set on a synthetic accessor method (spec §3
	// synthetic pools): the private/protected member it exists to expose.
	AccessedMember Symbol

	// NextOverload chains same-named methods declared in the same type,
	// newest first, so overload resolution can walk them without
	// allocating a slice per lookup.
	NextOverload *Method

	GenericSignature string // cached Signature attribute string, if any
}

// IsConstructor reports whether m is a constructor.
func (m *Method) IsConstructor() bool {
	return m.ContainingType != nil && m.ReturnType == nil
}

// Arity returns the declared number of formal parameters. For a varargs
// method this counts the trailing array parameter once.
func (m *Method) Arity() int { return len(m.Formals) }

// IsGeneric reports whether m declares its own type parameters, distinct
// from any the containing type declares.
func (m *Method) IsGeneric() bool { return len(m.TypeParameters) > 0 }

const constructorName = "<init>"
