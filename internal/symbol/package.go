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

// Package is a node in the tree of packages rooted at the unnamed
// package. It owns its subpackages and types, discovered lazily as the
// classpath directories and archives backing it are scanned (spec §3).
type Package struct {
	Name Name // simple name, e.g. "util" for java.util
	Dotted string // fully-dotted name, e.g. "java.util" ("" for the unnamed package)

	Parent *Package

	subpackages map[string]*Package
	types       map[string]*Type
}

// NewPackage creates a package node. Parent may be nil only for the
// unnamed (root) package.
func NewPackage(name Name, dotted string, parent *Package) *Package {
	return &Package{
		Name:        name,
		Dotted:      dotted,
		Parent:      parent,
		subpackages: make(map[string]*Package),
		types:       make(map[string]*Type),
	}
}

// Subpackage returns the named direct subpackage, creating it if it does
// not exist yet (package nodes are discovered lazily from the classpath,
// so merely asking for "com.example" should not require "com" and
// "com.example" to already have been scanned).
func (p *Package) Subpackage(simpleName string) *Package {
	if sub, ok := p.subpackages[simpleName]; ok {
		return sub
	}
	dotted := simpleName
	if p.Dotted != "" {
		dotted = p.Dotted + "." + simpleName
	}
	sub := NewPackage(Name{}, dotted, p)
	p.subpackages[simpleName] = sub
	return sub
}

// HasSubpackage reports whether simpleName names an already-registered
// subpackage, without creating one.
func (p *Package) HasSubpackage(simpleName string) bool {
	_, ok := p.subpackages[simpleName]
	return ok
}

// Type returns the named top-level type declared directly in this
// package, or nil.
func (p *Package) Type(simpleName string) *Type {
	return p.types[simpleName]
}

// AddType registers a top-level type under this package.
func (p *Package) AddType(simpleName string, t *Type) {
	p.types[simpleName] = t
}

// Types returns every top-level type registered in this package so far.
func (p *Package) Types() map[string]*Type {
	return p.types
}
