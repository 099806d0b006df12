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

package classreader

import "fmt"

// Constant pool tag values (JVMS 4.4).
const (
	tagUTF8              = 1
	tagInteger           = 3
	tagFloat             = 4
	tagLong              = 5
	tagDouble            = 6
	tagClass             = 7
	tagString            = 8
	tagFieldref          = 9
	tagMethodref         = 10
	tagInterfaceMethodref = 11
	tagNameAndType       = 12
	tagMethodHandle      = 15
	tagMethodType        = 16
	tagInvokeDynamic     = 18
)

// cpEntry is one raw constant pool slot. Only the fields relevant to its
// tag are populated; long/double entries occupy two slots (JVMS 4.4.5)
// and the second slot is left as a zero-value unusable entry, matching
// the real format's deliberate waste.
type cpEntry struct {
	tag      byte
	utf8     string
	intVal   int32
	longVal  int64
	floatVal float32
	doubleVal float64
	ref1     uint16 // class index of a CONSTANT_Class, name_index of a NameAndType, etc.
	ref2     uint16 // descriptor_index of a NameAndType, etc.
}

// ConstantPool is the decoded constant pool, indexed 1..size-1 as the
// format itself does (entry 0 is never valid).
type ConstantPool struct {
	entries []cpEntry
}

func (p *ConstantPool) get(index uint16) (cpEntry, error) {
	if int(index) <= 0 || int(index) >= len(p.entries) {
		return cpEntry{}, fmt.Errorf("classreader: constant pool index %d out of range [1,%d)", index, len(p.entries))
	}
	return p.entries[index], nil
}

// UTF8 returns the string stored at index, expecting a CONSTANT_Utf8.
func (p *ConstantPool) UTF8(index uint16) (string, error) {
	e, err := p.get(index)
	if err != nil {
		return "", err
	}
	if e.tag != tagUTF8 {
		return "", fmt.Errorf("classreader: constant pool index %d is tag %d, want Utf8", index, e.tag)
	}
	return e.utf8, nil
}

// ClassName returns the internal (slash-separated) name of the class
// referenced by the CONSTANT_Class entry at index. index == 0 means "no
// class" (used for java/lang/Object's super_class).
func (p *ConstantPool) ClassName(index uint16) (string, error) {
	if index == 0 {
		return "", nil
	}
	e, err := p.get(index)
	if err != nil {
		return "", err
	}
	if e.tag != tagClass {
		return "", fmt.Errorf("classreader: constant pool index %d is tag %d, want Class", index, e.tag)
	}
	return p.UTF8(e.ref1)
}

// ConstantValue returns the Go value for the Integer/Float/Long/Double/
// String constant at index, used to decode a field's ConstantValue
// attribute.
func (p *ConstantPool) ConstantValue(index uint16) (interface{}, error) {
	e, err := p.get(index)
	if err != nil {
		return nil, err
	}
	switch e.tag {
	case tagInteger:
		return e.intVal, nil
	case tagFloat:
		return e.floatVal, nil
	case tagLong:
		return e.longVal, nil
	case tagDouble:
		return e.doubleVal, nil
	case tagString:
		return p.UTF8(e.ref1)
	default:
		return nil, fmt.Errorf("classreader: constant pool index %d is tag %d, not a constant value", index, e.tag)
	}
}
