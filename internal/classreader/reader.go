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

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Read decodes a .class file from r. It stops after the fields, methods
// and class-level attributes; method Code attributes are skipped
// without being decoded, since the semantic core never re-analyzes a
// classpath method's body.
func Read(r io.Reader) (*ClassFile, error) {
	d := &decoder{r: r}

	magicVal := d.u4()
	if d.err != nil {
		return nil, d.err
	}
	if magicVal != magic {
		return nil, badMagic(magicVal)
	}

	cf := &ClassFile{}
	cf.MinorVersion = d.u2()
	cf.MajorVersion = d.u2()

	pool, err := d.readConstantPool()
	if err != nil {
		return nil, err
	}
	cf.ConstantPool = *pool

	cf.AccessFlags = d.u2()
	thisIdx := d.u2()
	superIdx := d.u2()
	if d.err != nil {
		return nil, d.err
	}
	if cf.ThisClass, err = pool.ClassName(thisIdx); err != nil {
		return nil, err
	}
	if cf.SuperClass, err = pool.ClassName(superIdx); err != nil {
		return nil, err
	}

	ifaceCount := d.u2()
	for i := 0; i < int(ifaceCount); i++ {
		name, err := pool.ClassName(d.u2())
		if err != nil {
			return nil, err
		}
		cf.Interfaces = append(cf.Interfaces, name)
	}

	fieldCount := d.u2()
	for i := 0; i < int(fieldCount); i++ {
		f, err := d.readField(pool)
		if err != nil {
			return nil, err
		}
		cf.Fields = append(cf.Fields, f)
	}

	methodCount := d.u2()
	for i := 0; i < int(methodCount); i++ {
		m, err := d.readMethod(pool)
		if err != nil {
			return nil, err
		}
		cf.Methods = append(cf.Methods, m)
	}

	attrCount := d.u2()
	for i := 0; i < int(attrCount); i++ {
		name, data, err := d.readAttribute(pool)
		if err != nil {
			return nil, err
		}
		switch name {
		case "Signature":
			cf.Signature, err = pool.UTF8(be16(data))
			if err != nil {
				return nil, err
			}
		case "Deprecated":
			cf.Deprecated = true
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	return cf, nil
}

type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) readN(n int) []byte {
	if d.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		d.fail(fmt.Errorf("classreader: %w", err))
		return nil
	}
	return buf
}

func (d *decoder) u1() uint8  { b := d.readN(1); if b == nil { return 0 }; return b[0] }
func (d *decoder) u2() uint16 { b := d.readN(2); if b == nil { return 0 }; return binary.BigEndian.Uint16(b) }
func (d *decoder) u4() uint32 { b := d.readN(4); if b == nil { return 0 }; return binary.BigEndian.Uint32(b) }
func (d *decoder) u8() uint64 { b := d.readN(8); if b == nil { return 0 }; return binary.BigEndian.Uint64(b) }

func be16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

func (d *decoder) readConstantPool() (*ConstantPool, error) {
	size := d.u2()
	if d.err != nil {
		return nil, d.err
	}
	entries := make([]cpEntry, size)
	for i := 1; i < int(size); i++ {
		tag := d.u1()
		switch tag {
		case tagUTF8:
			length := d.u2()
			raw := d.readN(int(length))
			entries[i] = cpEntry{tag: tag, utf8: string(raw)}
		case tagInteger:
			entries[i] = cpEntry{tag: tag, intVal: int32(d.u4())}
		case tagFloat:
			entries[i] = cpEntry{tag: tag, floatVal: math.Float32frombits(d.u4())}
		case tagLong:
			entries[i] = cpEntry{tag: tag, longVal: int64(d.u8())}
			i++ // occupies two slots, JVMS 4.4.5
		case tagDouble:
			entries[i] = cpEntry{tag: tag, doubleVal: math.Float64frombits(d.u8())}
			i++
		case tagClass, tagString, tagMethodType:
			entries[i] = cpEntry{tag: tag, ref1: d.u2()}
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagInvokeDynamic:
			entries[i] = cpEntry{tag: tag, ref1: d.u2(), ref2: d.u2()}
		case tagMethodHandle:
			d.u1()
			d.u2()
			entries[i] = cpEntry{tag: tag}
		default:
			if d.err == nil {
				d.err = fmt.Errorf("classreader: unknown constant pool tag %d at index %d", tag, i)
			}
			return nil, d.err
		}
		if d.err != nil {
			return nil, d.err
		}
	}
	return &ConstantPool{entries: entries}, nil
}

func (d *decoder) readField(pool *ConstantPool) (*FieldInfo, error) {
	f := &FieldInfo{}
	f.AccessFlags = d.u2()
	nameIdx := d.u2()
	descIdx := d.u2()
	if d.err != nil {
		return nil, d.err
	}
	var err error
	if f.Name, err = pool.UTF8(nameIdx); err != nil {
		return nil, err
	}
	if f.Descriptor, err = pool.UTF8(descIdx); err != nil {
		return nil, err
	}
	attrCount := d.u2()
	for i := 0; i < int(attrCount); i++ {
		name, data, err := d.readAttribute(pool)
		if err != nil {
			return nil, err
		}
		switch name {
		case "Signature":
			if f.Signature, err = pool.UTF8(be16(data)); err != nil {
				return nil, err
			}
		case "Deprecated":
			f.Deprecated = true
		case "Synthetic":
			f.Synthetic = true
		case "ConstantValue":
			if f.ConstantValue, err = pool.ConstantValue(be16(data)); err != nil {
				return nil, err
			}
		}
	}
	return f, d.err
}

func (d *decoder) readMethod(pool *ConstantPool) (*MethodInfo, error) {
	m := &MethodInfo{}
	m.AccessFlags = d.u2()
	nameIdx := d.u2()
	descIdx := d.u2()
	if d.err != nil {
		return nil, d.err
	}
	var err error
	if m.Name, err = pool.UTF8(nameIdx); err != nil {
		return nil, err
	}
	if m.Descriptor, err = pool.UTF8(descIdx); err != nil {
		return nil, err
	}
	attrCount := d.u2()
	for i := 0; i < int(attrCount); i++ {
		name, data, err := d.readAttribute(pool)
		if err != nil {
			return nil, err
		}
		switch name {
		case "Signature":
			if m.Signature, err = pool.UTF8(be16(data)); err != nil {
				return nil, err
			}
		case "Deprecated":
			m.Deprecated = true
		case "Synthetic":
			m.Synthetic = true
		case "Exceptions":
			count := be16(data)
			for j := 0; j < int(count); j++ {
				idx := be16(data[2+2*j:])
				exName, err := pool.ClassName(idx)
				if err != nil {
					return nil, err
				}
				m.Exceptions = append(m.Exceptions, exName)
			}
		}
	}
	return m, d.err
}

// readAttribute reads one attribute_info's name and raw bytes; the
// caller interprets data according to name. Attributes this package
// does not understand (notably Code) are skipped whole.
func (d *decoder) readAttribute(pool *ConstantPool) (name string, data []byte, err error) {
	nameIdx := d.u2()
	length := d.u4()
	if d.err != nil {
		return "", nil, d.err
	}
	name, err = pool.UTF8(nameIdx)
	if err != nil {
		return "", nil, err
	}
	data = d.readN(int(length))
	return name, data, d.err
}
