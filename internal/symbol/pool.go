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

// Package symbol implements the typed symbol model of the semantic core:
// packages, types, methods, variables, type parameters, and the
// discriminated generic Type surface, plus their lifecycle and
// containment relationships.
package symbol

// Name is an interned identifier: two Names produced by the same
// Interner compare equal in O(1) iff the underlying text is equal. Per
// the "global mutable state" design note, the pool that produces Names
// is explicit (an *Interner carried by semantic.Context) rather than
// a process-wide singleton. Name carries its own text so call sites that
// only need to print or compare a name (diagnostics, mangling) don't
// have to thread an *Interner around just for that.
type Name struct {
	id   int32
	text string
}

// IsValid reports whether n was produced by an Interner (the zero Name is
// invalid, so zero-valued struct fields don't silently alias real names).
func (n Name) IsValid() bool { return n.id != 0 }

// String returns n's underlying text.
func (n Name) String() string { return n.text }

// Interner deduplicates identifier text into small comparable Names. One
// Interner is owned per compilation (semantic.Context), not shared process-
// wide, so test cases never interfere with each other's Name space.
type Interner struct {
	ids   map[string]int32
	texts []string
}

// NewInterner returns an empty Interner. Name{} (id 0) is reserved so it
// never aliases an interned string.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]int32), texts: []string{""}}
}

// Intern returns the Name for text, creating one if this is the first
// occurrence.
func (in *Interner) Intern(text string) Name {
	if id, ok := in.ids[text]; ok {
		return Name{id: id, text: text}
	}
	id := int32(len(in.texts))
	in.texts = append(in.texts, text)
	in.ids[text] = id
	return Name{id: id, text: text}
}

// Text returns the original string for a Name produced by this Interner.
func (in *Interner) Text(n Name) string {
	if int(n.id) >= len(in.texts) {
		return ""
	}
	return in.texts[n.id]
}
