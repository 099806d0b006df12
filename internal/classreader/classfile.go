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

// Package classreader decodes the subset of the JVM .class file format
// (JVMS chapter 4) the semantic core needs to materialise an external
// *symbol.Type without a source file: the constant pool, access flags,
// super/interfaces, field and method descriptors, and the Signature /
// Synthetic / Deprecated attributes that carry generics and accessor
// metadata. It deliberately does not decode Code attributes; method
// bodies from the classpath are never re-analyzed.
package classreader

import "fmt"

const magic = 0xCAFEBABE

// ClassFile is the decoded subset of a .class file this package cares
// about, modeled as a plain struct the way the constant-pool/access-flag
// shape of a real class file decoder is, rather than as a parsed tree.
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16

	ConstantPool ConstantPool

	AccessFlags uint16
	ThisClass   string // fully-qualified, slash-separated internal name
	SuperClass  string // "" for java/lang/Object

	Interfaces []string
	Fields     []*FieldInfo
	Methods    []*MethodInfo

	Signature  string // generic Signature attribute, if present
	Deprecated bool
}

// FieldInfo is a single field_info entry.
type FieldInfo struct {
	AccessFlags uint16
	Name        string
	Descriptor  string
	Signature   string // generic Signature attribute, if present
	Deprecated  bool
	Synthetic   bool

	// ConstantValue is the decoded ConstantValue attribute for a static
	// final field initialised with a compile-time constant, or nil.
	ConstantValue interface{}
}

// MethodInfo is a single method_info entry, not including its Code
// attribute.
type MethodInfo struct {
	AccessFlags uint16
	Name        string
	Descriptor  string
	Signature   string
	Deprecated  bool
	Synthetic   bool

	Exceptions []string // checked exceptions from the Exceptions attribute
}

// IsInterface, IsAbstract, IsSynthetic, IsAnnotation, IsEnum mirror the
// ACC_* bits relevant to semantic analysis.
func (c *ClassFile) IsInterface() bool { return c.AccessFlags&0x0200 != 0 }
func (c *ClassFile) IsAbstract() bool  { return c.AccessFlags&0x0400 != 0 }
func (c *ClassFile) IsSynthetic() bool { return c.AccessFlags&0x1000 != 0 }
func (c *ClassFile) IsAnnotation() bool { return c.AccessFlags&0x2000 != 0 }
func (c *ClassFile) IsEnum() bool      { return c.AccessFlags&0x4000 != 0 }

func badMagic(got uint32) error {
	return fmt.Errorf("classreader: not a class file: magic = %#x, want %#x", got, uint32(magic))
}
