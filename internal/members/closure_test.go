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

package members

import (
	"context"
	"testing"

	"github.com/jikesgo/jikesgo/internal/symbol"
)

func newTestType(in *symbol.Interner, name string, super *symbol.Type, ifaces ...*symbol.Type) *symbol.Type {
	t := symbol.NewType(in.Intern(name), nil, nil)
	t.ExternalName = name
	t.Super = super
	t.Interfaces = ifaces
	return t
}

func addField(in *symbol.Interner, t *symbol.Type, name string) *symbol.Variable {
	v := &symbol.Variable{SimpleName: in.Intern(name), Owner: t}
	t.AddField(v)
	return v
}

func TestComputeClosureInheritsFields(t *testing.T) {
	in := symbol.NewInterner()
	base := newTestType(in, "Base", nil)
	addField(in, base, "x")

	derived := newTestType(in, "Derived", base)
	addField(in, derived, "y")

	if err := ComputeClosure(derived); err != nil {
		t.Fatalf("ComputeClosure: %v", err)
	}

	fields := derived.ExpandedFields()
	if _, ok := fields[in.Intern("x")]; !ok {
		t.Errorf("Derived's expanded fields missing inherited field %q", "x")
	}
	if _, ok := fields[in.Intern("y")]; !ok {
		t.Errorf("Derived's expanded fields missing own field %q", "y")
	}
}

func TestComputeClosureOwnFieldShadowsInherited(t *testing.T) {
	in := symbol.NewInterner()
	base := newTestType(in, "Base", nil)
	baseX := addField(in, base, "x")

	derived := newTestType(in, "Derived", base)
	derivedX := addField(in, derived, "x")

	if err := ComputeClosure(derived); err != nil {
		t.Fatalf("ComputeClosure: %v", err)
	}

	got := derived.ExpandedFields()[in.Intern("x")].Preferred
	if got != derivedX {
		t.Errorf("Derived's field %q resolved to %v, want the shadowing declaration %v (base's %v should be hidden)", "x", got, derivedX, baseX)
	}
}

func TestComputeClosureDiamondInterfaceFieldIsAmbiguous(t *testing.T) {
	in := symbol.NewInterner()
	ifaceA := newTestType(in, "A", nil)
	addField(in, ifaceA, "CONST")
	ifaceB := newTestType(in, "B", nil)
	addField(in, ifaceB, "CONST")

	impl := newTestType(in, "Impl", nil, ifaceA, ifaceB)

	if err := ComputeClosure(impl); err != nil {
		t.Fatalf("ComputeClosure: %v", err)
	}

	entry := impl.ExpandedFields()[in.Intern("CONST")]
	if len(entry.Conflicts) == 0 {
		t.Errorf("expected CONST inherited from both A and B to record a conflict, got none")
	}
}

func TestComputeClosureDetectsCycle(t *testing.T) {
	in := symbol.NewInterner()
	a := newTestType(in, "A", nil)
	b := newTestType(in, "B", a)
	a.Super = b // illegal cycle: A extends B extends A

	if err := ComputeClosure(a); err == nil {
		t.Errorf("ComputeClosure on a cyclic hierarchy: got nil error, want a cycle error")
	}
}

func TestComputeClosuresConcurrent(t *testing.T) {
	in := symbol.NewInterner()
	base := newTestType(in, "Base", nil)
	addField(in, base, "shared")

	var derived []*symbol.Type
	for i := 0; i < 8; i++ {
		derived = append(derived, newTestType(in, "Derived", base))
	}

	if err := ComputeClosures(context.Background(), derived); err != nil {
		t.Fatalf("ComputeClosures: %v", err)
	}
	for _, d := range derived {
		if !d.HasExpandedTables() {
			t.Errorf("type %p did not get expanded tables", d)
		}
	}
}
