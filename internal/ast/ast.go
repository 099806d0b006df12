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

// Tree is a single compilation unit's AST, stored as an arena of nodes
// rather than a pointer graph, per the "cyclic symbol graph" design note:
// nodes are compared and hashed by their numeric id, and parent/child/
// sibling links are plain int32 indices into record.
type Tree struct {
	FileName string
	records  []record
}

type record struct {
	kind        Kind
	offset, end int // byte range in the source, as reported by the parser

	parent, firstChild, lastChild, next, prev int32

	// Mutable semantic slots, set by the core while processing this node.
	// Exactly one AST per compilation unit exists, so these live directly
	// on the record instead of in a side table.
	Symbol                  interface{}
	Value                   interface{} // constant value, if this expression is constant
	ResolvedType            interface{}
	ResolvedParameterizedType interface{}
	WriteMethod             interface{} // synthetic accessor used for a compound-assignment target
}

const invalidID int32 = 0

// NewTree returns an empty tree for the named file. Node 0 is reserved as
// the permanent "invalid" sentinel so zero-valued Node values compare as
// invalid without a nil check.
func NewTree(fileName string) *Tree {
	t := &Tree{FileName: fileName}
	t.records = append(t.records, record{kind: NoKind}) // id 0: sentinel
	return t
}

// Node is a lightweight handle into a Tree: a (tree, id) pair, cheap to
// copy and compare by value.
type Node struct {
	tree *Tree
	id   int32
}

// Root returns the tree's root node (the JavaFile node), or an invalid
// node for an empty tree.
func (t *Tree) Root() Node {
	if len(t.records) <= 1 {
		return Node{}
	}
	return Node{tree: t, id: int32(len(t.records) - 1)}
}

// IsValid reports whether n refers to a real node.
func (n Node) IsValid() bool { return n.tree != nil && n.id != invalidID }

func (n Node) rec() *record { return &n.tree.records[n.id] }

// Kind returns the node's syntactic kind, or NoKind for an invalid node.
func (n Node) Kind() Kind {
	if !n.IsValid() {
		return NoKind
	}
	return n.rec().kind
}

// Type is an alias for Kind, matching the vocabulary used throughout the
// semantic core ("node.Type()").
func (n Node) Type() Kind { return n.Kind() }

// Offset and End return the node's byte range within the source file.
func (n Node) Offset() int {
	if !n.IsValid() {
		return 0
	}
	return n.rec().offset
}

func (n Node) End() int {
	if !n.IsValid() {
		return 0
	}
	return n.rec().end
}

// Text returns the node's source text. It requires the originating
// source string, since Tree itself does not retain it (only offsets).
func (n Node) Text(source string) string {
	if !n.IsValid() {
		return ""
	}
	r := n.rec()
	if r.offset < 0 || r.end > len(source) || r.offset > r.end {
		return ""
	}
	return source[r.offset:r.end]
}

func (n Node) Parent() Node {
	if !n.IsValid() {
		return Node{}
	}
	return Node{tree: n.tree, id: n.rec().parent}
}

func (n Node) FirstChild() Node {
	if !n.IsValid() {
		return Node{}
	}
	return Node{tree: n.tree, id: n.rec().firstChild}
}

func (n Node) LastChild() Node {
	if !n.IsValid() {
		return Node{}
	}
	return Node{tree: n.tree, id: n.rec().lastChild}
}

func (n Node) NextSibling() Node {
	if !n.IsValid() {
		return Node{}
	}
	return Node{tree: n.tree, id: n.rec().next}
}

func (n Node) PrevSibling() Node {
	if !n.IsValid() {
		return Node{}
	}
	return Node{tree: n.tree, id: n.rec().prev}
}

// FirstChildOfType returns the first direct child of the given kind.
func (n Node) FirstChildOfType(k Kind) Node {
	for c := n.FirstChild(); c.IsValid(); c = c.NextSibling() {
		if c.Kind() == k {
			return c
		}
	}
	return Node{}
}

// LastChildOfType returns the last direct child of the given kind.
func (n Node) LastChildOfType(k Kind) Node {
	var found Node
	for c := n.FirstChild(); c.IsValid(); c = c.NextSibling() {
		if c.Kind() == k {
			found = c
		}
	}
	return found
}

// ChildrenOfType returns every direct child of the given kind, in order.
func (n Node) ChildrenOfType(k Kind) []Node {
	var out []Node
	for c := n.FirstChild(); c.IsValid(); c = c.NextSibling() {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// Children returns every direct child, in order.
func (n Node) Children() []Node {
	var out []Node
	for c := n.FirstChild(); c.IsValid(); c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// Prev returns the closest preceding node in the whole tree (in
// parent-after-children / document order) matching sel, searching
// backwards from n. Used to find, e.g., the declared type node that
// precedes a JavaVarDecl within the same JavaField/JavaLocalVars.
func (n Node) Prev(sel Selector) Node {
	if !n.IsValid() {
		return Node{}
	}
	for id := n.id - 1; id > invalidID; id-- {
		if sel(n.tree.records[id].kind) {
			return Node{tree: n.tree, id: id}
		}
	}
	return Node{}
}

// Equal reports whether two nodes refer to the same tree position.
func (n Node) Equal(o Node) bool { return n.tree == o.tree && n.id == o.id }
