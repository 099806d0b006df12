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

import (
	"testing"

	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

func newResolver() (*Resolver, *symbol.Interner, *wellknown.Types) {
	in := symbol.NewInterner()
	wk := wellknown.Load(in, nil)
	return &Resolver{WK: wk}, in, wk
}

func method(in *symbol.Interner, name string, varargs bool, formals ...symbol.RichType) *symbol.Method {
	m := &symbol.Method{SimpleName: in.Intern(name)}
	for i, f := range formals {
		m.Formals = append(m.Formals, &symbol.Variable{SimpleName: in.Intern("p"), Type: f, LocalSlot: i})
	}
	if varargs {
		m.Flags = m.Flags.Set(symbol.AccVarargs)
	}
	return m
}

// f(int) vs f(long); call f(1) resolves to f(int): phase 1 exact match
// beats widening.
func TestSelectExactBeatsWidening(t *testing.T) {
	r, in, wk := newResolver()
	fInt := method(in, "f", false, symbol.Plain{Sym: wk.Int})
	fLong := method(in, "f", false, symbol.Plain{Sym: wk.Long})

	sel, err := r.Select("f", []*symbol.Method{fInt, fLong}, []symbol.RichType{symbol.Plain{Sym: wk.Int}})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Method != fInt {
		t.Errorf("Select chose %v, want f(int)", sel.Method)
	}
	if sel.Phase != PhaseStrict {
		t.Errorf("Select phase = %v, want PhaseStrict", sel.Phase)
	}
}

// f(Integer) vs f(long); call f(1) resolves to f(long): phase 1 widening
// beats phase 2 boxing (phase 1 terminates the search before boxing is
// even considered).
func TestSelectWideningBeatsBoxing(t *testing.T) {
	r, in, wk := newResolver()
	fInteger := method(in, "f", false, symbol.Plain{Sym: wk.BoxedInt})
	fLong := method(in, "f", false, symbol.Plain{Sym: wk.Long})

	sel, err := r.Select("f", []*symbol.Method{fInteger, fLong}, []symbol.RichType{symbol.Plain{Sym: wk.Int}})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Method != fLong {
		t.Errorf("Select chose %v, want f(long)", sel.Method)
	}
	if sel.Phase != PhaseStrict {
		t.Errorf("Select phase = %v, want PhaseStrict (boxing never consulted)", sel.Phase)
	}
}

// void g(String... xs): g(), g("a"), g("a","b") each wrap their actuals
// into a synthesized array; g(new String[]{"a"}) passes the array
// through unchanged.
func TestSelectVarargsWrapAndPassThrough(t *testing.T) {
	r, in, wk := newResolver()
	stringType := symbol.NewType(in.Intern("String"), nil, nil)
	stringType.ExternalName = "String"
	g := method(in, "g", true, symbol.ArrayOf{Component: symbol.Plain{Sym: stringType}})
	_ = wk

	for _, n := range []int{0, 1, 2} {
		var args []symbol.RichType
		for i := 0; i < n; i++ {
			args = append(args, symbol.Plain{Sym: stringType})
		}
		sel, err := r.Select("g", []*symbol.Method{g}, args)
		if err != nil {
			t.Fatalf("Select with %d args: %v", n, err)
		}
		if sel.Phase != PhaseVarargs {
			t.Errorf("Select with %d args: phase = %v, want PhaseVarargs", n, sel.Phase)
		}
		if len(sel.Conversions) == 0 || sel.Conversions[len(sel.Conversions)-1].Kind != ConvVarargsWrap {
			t.Errorf("Select with %d args: last conversion = %+v, want ConvVarargsWrap", n, sel.Conversions)
		}
	}

	// Passing the array itself through.
	arrayArg := symbol.ArrayOf{Component: symbol.Plain{Sym: stringType}}
	sel, err := r.Select("g", []*symbol.Method{g}, []symbol.RichType{arrayArg})
	if err != nil {
		t.Fatalf("Select with array arg: %v", err)
	}
	if len(sel.Conversions) != 1 || sel.Conversions[0].Kind != ConvVarargsPassThrough {
		t.Errorf("Select with array arg: conversions = %+v, want a single ConvVarargsPassThrough", sel.Conversions)
	}
}

func TestSelectNoApplicableMethod(t *testing.T) {
	r, in, wk := newResolver()
	fInt := method(in, "f", false, symbol.Plain{Sym: wk.Int})
	_, err := r.Select("f", []*symbol.Method{fInt}, []symbol.RichType{symbol.Plain{Sym: wk.Object}})
	if err == nil {
		t.Fatalf("Select: got nil error, want NoApplicableMethodError")
	}
	if _, ok := err.(*NoApplicableMethodError); !ok {
		t.Errorf("Select error = %T, want *NoApplicableMethodError", err)
	}
}

func TestSelectAmbiguous(t *testing.T) {
	r, in, wk := newResolver()
	a := symbol.NewType(in.Intern("A"), nil, nil)
	a.ExternalName = "A"
	b := symbol.NewType(in.Intern("B"), nil, nil)
	b.ExternalName = "B"
	m1 := method(in, "f", false, symbol.Plain{Sym: a})
	m2 := method(in, "f", false, symbol.Plain{Sym: b})

	_, err := r.Select("f", []*symbol.Method{m1, m2}, []symbol.RichType{symbol.Plain{Sym: wk.NullPseudoType}})
	if err == nil {
		t.Fatalf("Select: got nil error, want AmbiguousError")
	}
	if _, ok := err.(*AmbiguousError); !ok {
		t.Errorf("Select error = %T, want *AmbiguousError", err)
	}
}
