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

// Package members materialises a Type's expanded field/method/nested-type
// tables: the closure of its own declarations plus everything visible
// through its superclass and superinterfaces. It generalises the
// per-container local symbol tables xrefs.buildSymbolTables computes
// (declared members only, one container at a time) into the full
// inherited closure spec §3 describes, and is the one place that walks
// the supertype DAG instead of a single AST subtree.
package members

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jikesgo/jikesgo/internal/symbol"
)

// ComputeClosure materialises t's expanded tables if they are not
// already present, first computing its supertypes' closures (they are
// memoized on the Type itself, so repeated calls across a batch are
// cheap). It is safe to call concurrently on independent types; two
// goroutines racing to expand the same shared supertype may each build
// a table set, but symbol.Type.SetExpandedTables's internal lock and
// first-write-wins rule mean only one actually gets installed.
func ComputeClosure(t *symbol.Type) error {
	return computeClosure(t, make(map[*symbol.Type]bool))
}

// computeClosure takes a visiting set to detect a cyclic inheritance
// graph (an illegal but possible state while recovering from a broken
// "class A extends B" / "class B extends A" program) instead of
// recursing forever.
func computeClosure(t *symbol.Type, visiting map[*symbol.Type]bool) error {
	if t.HasExpandedTables() {
		return nil
	}
	if visiting[t] {
		return fmt.Errorf("members: cyclic inheritance involving %s", t.ExternalName)
	}
	visiting[t] = true
	defer delete(visiting, t)

	supers := directSupertypes(t)
	for _, s := range supers {
		if err := computeClosure(s, visiting); err != nil {
			return err
		}
	}

	fields := make(map[symbol.Name]*symbol.FieldEntry)
	methods := make(map[symbol.Name][]*symbol.Method)
	nested := make(map[symbol.Name]*symbol.NestedEntry)

	// Inherited members first, in declaration order of the supertype
	// list (superclass before interfaces, matching JLS 8.4.8's
	// left-to-right precedence for resolving an inherited conflict).
	for _, s := range supers {
		mergeFields(fields, s.ExpandedFields())
		mergeNested(nested, s.ExpandedNestedTypes())
		for name, ms := range s.ExpandedMethods() {
			methods[name] = append(methods[name], ms...)
		}
	}

	// Own declarations shadow/override everything inherited.
	for _, f := range t.DeclaredFields() {
		fields[f.SimpleName] = &symbol.FieldEntry{Preferred: f}
	}
	for _, n := range t.DeclaredNestedTypes() {
		nested[n.SimpleName] = &symbol.NestedEntry{Preferred: n}
	}
	for _, m := range t.DeclaredMethods() {
		methods[m.SimpleName] = prependOverride(methods[m.SimpleName], m)
	}

	t.SetExpandedTables(fields, methods, nested)
	return nil
}

// directSupertypes returns t's superclass (if any) and superinterfaces,
// in that order, treating java.lang.Object-level types (Super == nil)
// as having none.
func directSupertypes(t *symbol.Type) []*symbol.Type {
	var out []*symbol.Type
	if t.Super != nil {
		out = append(out, t.Super)
	}
	out = append(out, t.Interfaces...)
	return out
}

// mergeFields folds an already-computed supertype's field closure into
// the accumulator. A name inherited from more than one unrelated
// supertype (the classic diamond-interface-constant case) becomes a
// Conflicts entry: legal to inherit, illegal to reference unqualified
// (JLS 8.3/9.3 "inherited field ... ambiguous").
func mergeFields(acc map[symbol.Name]*symbol.FieldEntry, inherited map[symbol.Name]*symbol.FieldEntry) {
	for name, entry := range inherited {
		existing, ok := acc[name]
		if !ok {
			acc[name] = &symbol.FieldEntry{Preferred: entry.Preferred, Conflicts: append([]*symbol.Variable(nil), entry.Conflicts...)}
			continue
		}
		if existing.Preferred == entry.Preferred {
			continue // same field reached through two paths (e.g. shared grandparent)
		}
		existing.Conflicts = append(existing.Conflicts, entry.Preferred)
	}
}

func mergeNested(acc map[symbol.Name]*symbol.NestedEntry, inherited map[symbol.Name]*symbol.NestedEntry) {
	for name, entry := range inherited {
		existing, ok := acc[name]
		if !ok {
			acc[name] = &symbol.NestedEntry{Preferred: entry.Preferred, Conflicts: append([]*symbol.Type(nil), entry.Conflicts...)}
			continue
		}
		if existing.Preferred == entry.Preferred {
			continue
		}
		existing.Conflicts = append(existing.Conflicts, entry.Preferred)
	}
}

// prependOverride adds m to a same-named overload chain, newest
// (most-derived) first, matching Method.NextOverload's stated order.
func prependOverride(chain []*symbol.Method, m *symbol.Method) []*symbol.Method {
	return append([]*symbol.Method{m}, chain...)
}

// ComputeClosures expands every type in types concurrently, returning
// the first error encountered (if any). It generalizes
// parser.ReferencedClasses's bounded fan-out: each type's own closure
// computation is independent once its supertypes are available. Two
// goroutines racing on a shared supertype (diamond inheritance) may
// both build its closure; both builds are pure functions of the
// supertype's own already-expanded tables and produce an identical
// result, and symbol.Type.SetExpandedTables is mutex-guarded and
// first-write-wins, so the loser's result is simply discarded rather
// than racing the winner's fields.
func ComputeClosures(ctx context.Context, types []*symbol.Type) error {
	g, _ := errgroup.WithContext(ctx)
	for _, t := range types {
		t := t
		g.Go(func() error {
			return computeClosure(t, make(map[*symbol.Type]bool))
		})
	}
	return g.Wait()
}
