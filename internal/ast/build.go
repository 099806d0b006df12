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

package ast

// Builder assembles a Tree from the flat stream of (kind, offset, end)
// ranges a parser reports in left-to-right, parent-after-children order —
// the exact contract of parsers.ParserListener in the teacher's parsing
// toolkit (see jadep/thirdparty/golang/parsers/parsers). The lexer/parser
// that drives a Builder is outside this package's scope (spec §6 names it
// an external collaborator); Builder only owns turning that event stream
// into a Tree the semantic core can walk.
type Builder struct {
	tree  *Tree
	stack []int32 // completed subtree roots not yet attached to a parent
}

// NewBuilder starts building a Tree for the named file.
func NewBuilder(fileName string) *Builder {
	return &Builder{tree: NewTree(fileName)}
}

// Add reports one completed node. Any previously-added nodes whose range
// is contained in [offset, end) and not yet attached to a parent become
// this node's children, in their original left-to-right order.
func (b *Builder) Add(kind Kind, offset, end int) {
	t := b.tree

	var children []int32
	for len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		r := &t.records[top]
		if r.offset < offset || r.end > end {
			break
		}
		children = append(children, top)
		b.stack = b.stack[:len(b.stack)-1]
	}

	id := int32(len(t.records))
	t.records = append(t.records, record{kind: kind, offset: offset, end: end})

	// children was collected top-of-stack first (rightmost child first);
	// reverse to restore left-to-right order before linking.
	for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
		children[i], children[j] = children[j], children[i]
	}
	var prev int32
	for _, c := range children {
		t.records[c].parent = id
		t.records[c].prev = prev
		if prev != invalidID {
			t.records[prev].next = c
		} else {
			t.records[id].firstChild = c
		}
		prev = c
	}
	t.records[id].lastChild = prev

	b.stack = append(b.stack, id)
}

// Tree finishes construction and returns the assembled Tree. Any nodes
// still on the stack (there should be exactly one: the JavaFile node)
// become, in order, children of an implicit root if more than one
// top-level node was reported.
func (b *Builder) Tree() *Tree {
	t := b.tree
	if len(b.stack) == 1 {
		return t
	}
	if len(b.stack) == 0 {
		return t
	}
	// More than one top-level range (e.g. a fragment with no single
	// JavaFile wrapper): synthesize a BrokenFile root so Tree.Root()
	// still returns something walkable.
	first := t.records[b.stack[0]]
	last := t.records[b.stack[len(b.stack)-1]]
	rootID := int32(len(t.records))
	t.records = append(t.records, record{kind: BrokenFile, offset: first.offset, end: last.end})
	var prev int32
	for _, c := range b.stack {
		t.records[c].parent = rootID
		t.records[c].prev = prev
		if prev != invalidID {
			t.records[prev].next = c
		} else {
			t.records[rootID].firstChild = c
		}
		prev = c
	}
	t.records[rootID].lastChild = prev
	b.stack = []int32{rootID}
	return t
}
