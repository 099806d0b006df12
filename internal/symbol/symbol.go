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

// Symbol is implemented by every kind of semantic entity: Package, Type,
// Method, Variable, Block, and TypeParameter. Per the "polymorphism across
// symbol kinds" design note, call sites recover the concrete kind with a
// type switch rather than a virtual dispatch table, so an illegal cast
// ("used as a Type when it's really a Method") is a compile error instead
// of a runtime panic.
type Symbol interface {
	symbolKind() string
}

func (*Package) symbolKind() string         { return "package" }
func (*Type) symbolKind() string            { return "type" }
func (*Method) symbolKind() string          { return "method" }
func (*Variable) symbolKind() string        { return "variable" }
func (*Block) symbolKind() string           { return "block" }
func (*TypeParameter) symbolKind() string   { return "type-parameter" }
