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

// Variable represents a field, formal parameter, or local variable (spec
// §3). All three share one struct: a field additionally has a non-nil
// Owner of kind *Type, a formal's Owner is the *Method it belongs to, and
// a local's Owner is its enclosing *Block.
type Variable struct {
	SimpleName Name
	Type       RichType
	Owner      Symbol // *Type, *Method, or *Block

	Flags Flags

	// ConstantValue holds the compile-time constant value for a
	// "static final" field initialised with a constant expression, or a
	// local declared final and assigned a constant expression; nil
	// otherwise (spec §6 constant folding).
	ConstantValue interface{}

	// CapturedFrom is set on a val$x synthetic field (spec §3 synthetic
	// pools): the outer local variable it was generated to capture.
	CapturedFrom *Variable

	// LocalSlot is the 0-based index of a local variable / formal within
	// its method's local-variable array; unused (-1) for fields.
	LocalSlot int

	// DeclOrder is the field's position within its containing type's own
	// declaration order (AddField sets it); meaningless for formals and
	// locals. internal/resolve compares it against the enclosing
	// initializer's own position to detect a forward reference to a
	// not-yet-initialised field (JLS 8.3.3).
	DeclOrder int
}

// IsField reports whether v's owner is a type.
func (v *Variable) IsField() bool {
	_, ok := v.Owner.(*Type)
	return ok
}

// IsLocal reports whether v's owner is a block (as opposed to being a
// formal parameter, whose owner is the *Method directly).
func (v *Variable) IsLocal() bool {
	_, ok := v.Owner.(*Block)
	return ok
}

// IsCapturedLocal reports whether v is a val$x synthetic field.
func (v *Variable) IsCapturedLocal() bool { return v.CapturedFrom != nil }
