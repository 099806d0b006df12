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

package accessors

import "github.com/jikesgo/jikesgo/internal/symbol"

// EnsureEnclosingInstanceField installs inner's this$0 field (spec §4.5:
// "the first time a non-static inner class is processed, a synthetic
// final this$0 of the enclosing type is inserted; it is initialised in
// every constructor by prepending an extra first argument"), returning
// the existing field unchanged on a later call for the same type.
func (s *Synthesizer) EnsureEnclosingInstanceField(inner, enclosing *symbol.Type) *symbol.Variable {
	if inner.EnclosingInstanceField != nil {
		return inner.EnclosingInstanceField
	}
	field := &symbol.Variable{
		SimpleName: s.In.Intern("this$0"),
		Type:       symbol.Plain{Sym: enclosing},
		Owner:      inner,
		Flags:      symbol.AccFinal | symbol.AccSynthetic,
	}
	inner.EnclosingInstanceField = field
	inner.AddField(field)
	for _, ctor := range inner.DeclaredMethods() {
		if ctor.IsConstructor() {
			prependFormal(ctor, enclosing)
		}
	}
	return field
}

// prependFormal inserts a new formal of type paramType at position 0,
// shifting every existing formal's LocalSlot up by one.
func prependFormal(m *symbol.Method, paramType *symbol.Type) *symbol.Variable {
	for _, f := range m.Formals {
		f.LocalSlot++
	}
	extra := &symbol.Variable{
		Type:      symbol.Plain{Sym: paramType},
		Owner:     m,
		LocalSlot: 0,
	}
	m.Formals = append([]*symbol.Variable{extra}, m.Formals...)
	return extra
}

// CaptureLocal installs a val$x field for local on outermost, the
// enclosing local/anonymous class the captured use lives in (spec §4.5:
// "a synthetic final val$x field is added to the outermost local/
// anonymous class enclosing the use, and the class's constructor gains a
// corresponding extra parameter"). Requesting the same local a second
// time returns the field already installed.
func (s *Synthesizer) CaptureLocal(outermost *symbol.Type, local *symbol.Variable) *symbol.Variable {
	for _, existing := range outermost.CapturedLocals {
		if existing.CapturedFrom == local {
			return existing
		}
	}
	field := &symbol.Variable{
		SimpleName:   s.In.Intern("val$" + local.SimpleName.String()),
		Type:         local.Type,
		Owner:        outermost,
		Flags:        symbol.AccFinal | symbol.AccSynthetic,
		CapturedFrom: local,
	}
	outermost.AddField(field)
	outermost.CapturedLocals = append(outermost.CapturedLocals, field)
	for _, ctor := range outermost.DeclaredMethods() {
		if ctor.IsConstructor() {
			appendFormal(ctor, local.Type)
		}
	}
	return field
}

// appendFormal adds a new trailing formal of type paramType, used for
// val$x capture parameters (appended after this$0 and the constructor's
// own declared parameters, matching the order javac emits them in).
func appendFormal(m *symbol.Method, paramType symbol.RichType) *symbol.Variable {
	extra := &symbol.Variable{
		Type:      paramType,
		Owner:     m,
		LocalSlot: len(m.Formals),
	}
	m.Formals = append(m.Formals, extra)
	return extra
}

// DrainDeferredConstructorCalls patches every constructor call that was
// registered against t before its capture set was known (spec §4.5/§6:
// "local_constructor_call_environments... patched when the class
// completes"), then clears the queue.
func DrainDeferredConstructorCalls(t *symbol.Type, extraArgs []*symbol.Variable) {
	for _, call := range t.LocalConstructorCalls {
		call.Patch(extraArgs)
	}
	t.LocalConstructorCalls = nil
}

// AnonymousDefaultConstructor synthesizes the default constructor for an
// anonymous class (spec §4.5: "forwards all parameters to the super
// constructor and, when the anonymous class has an enclosing-instance
// base..., routes the base through a fresh first parameter").
// superCtor may be nil when the anonymous class implements an interface
// (super is Object's implicit no-arg constructor).
func (s *Synthesizer) AnonymousDefaultConstructor(anon *symbol.Type, superCtor *symbol.Method, enclosingBase *symbol.Type) *symbol.Method {
	ctor := &symbol.Method{
		SimpleName:     s.In.Intern("<init>"),
		ContainingType: anon,
		Flags:          symbol.AccSynthetic,
	}
	slot := 0
	if enclosingBase != nil {
		ctor.Formals = append(ctor.Formals, &symbol.Variable{
			SimpleName: s.In.Intern("x0"),
			Type:       symbol.Plain{Sym: enclosingBase},
			Owner:      ctor,
			LocalSlot:  slot,
		})
		slot++
	}
	if superCtor != nil {
		for _, f := range superCtor.Formals {
			ctor.Formals = append(ctor.Formals, &symbol.Variable{
				SimpleName: f.SimpleName,
				Type:       f.Type,
				Owner:      ctor,
				LocalSlot:  slot,
			})
			slot++
		}
	}
	anon.AddMethod(ctor)
	return ctor
}
