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

// Block is a lexical scope nested inside a method body: the method's
// top-level block, or a nested { } / for / catch block within it. The
// chain of Parent blocks up to the owning Method's top block is the
// scope stack internal/resolve walks for JLS 6.5 simple-name resolution.
type Block struct {
	Owner  *Method
	Parent *Block // nil for the method's outermost block

	locals map[string]*Variable // declaration-order lookup by simple name
	order  []*Variable
}

// NewBlock creates a block nested under parent (nil for a method's
// outermost block) and owned by owner.
func NewBlock(owner *Method, parent *Block) *Block {
	return &Block{
		Owner:  owner,
		Parent: parent,
		locals: make(map[string]*Variable),
	}
}

// Declare adds a local variable to this block's scope. Callers are
// expected to have already checked for a duplicate in the same block
// (JLS 14.4.2); Declare itself does not reject shadowing.
func (b *Block) Declare(name string, v *Variable) {
	b.locals[name] = v
	b.order = append(b.order, v)
}

// Lookup returns the variable declared by name directly in this block,
// or nil if none. It does not search Parent; internal/resolve walks the
// Parent chain itself so it can stop at the first enclosing declaration.
func (b *Block) Lookup(name string) *Variable {
	return b.locals[name]
}

// Locals returns this block's own locals in declaration order.
func (b *Block) Locals() []*Variable { return b.order }
