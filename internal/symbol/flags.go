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

// Flags is a bitmask of JVM access flags plus the extra bits the
// semantic core needs to track, matching spec §3's "flags" field:
// public/protected/private/static/final/abstract/interface/synthetic/
// enum/varargs/strictfp, and processing-state bits.
type Flags uint32

// Access and modifier flags. Values match the JVM ACC_* constants so a
// Flags value can be written directly into a class file without
// translation.
const (
	AccPublic    Flags = 0x0001
	AccPrivate   Flags = 0x0002
	AccProtected Flags = 0x0004
	AccStatic    Flags = 0x0008
	AccFinal     Flags = 0x0010
	AccSuper     Flags = 0x0020 // also ACC_SYNCHRONIZED on methods
	AccVolatile  Flags = 0x0040 // also ACC_BRIDGE on methods
	AccTransient Flags = 0x0080 // also ACC_VARARGS on methods
	AccNative    Flags = 0x0100
	AccInterface Flags = 0x0200
	AccAbstract  Flags = 0x0400
	AccStrict    Flags = 0x0800
	AccSynthetic Flags = 0x1000
	AccAnnotation Flags = 0x2000
	AccEnum      Flags = 0x4000

	AccVarargs Flags = AccTransient // alias, for methods
	AccBridge  Flags = AccVolatile  // alias, for methods
)

// Processing-state bits. These never appear in an emitted class file;
// they only track where a Type is in its own lifecycle (spec §3
// "Lifecycle").
const (
	stateBit Flags = 1 << (16 + iota)
	StateHeaderProcessed
	StateMembersProcessed
	StateSourcePending
	StateAnonymous
	StateLocal
	StateBad

	// AccDeprecated is not a real JVM access flag (deprecation is a
	// class-file attribute, not a flag bit); it is tracked alongside the
	// real ACC_* bits because spec §4.2 wants it checked at every use
	// site the same way an access flag is, and classreader decodes the
	// Deprecated attribute into exactly this shape for classpath types.
	AccDeprecated
)

// Has reports whether every bit set in want is also set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

func (f Flags) IsPublic() bool    { return f.Has(AccPublic) }
func (f Flags) IsPrivate() bool   { return f.Has(AccPrivate) }
func (f Flags) IsProtected() bool { return f.Has(AccProtected) }
func (f Flags) IsPackagePrivate() bool {
	return !f.IsPublic() && !f.IsPrivate() && !f.IsProtected()
}
func (f Flags) IsStatic() bool    { return f.Has(AccStatic) }
func (f Flags) IsFinal() bool     { return f.Has(AccFinal) }
func (f Flags) IsAbstract() bool  { return f.Has(AccAbstract) }
func (f Flags) IsInterface() bool { return f.Has(AccInterface) }
func (f Flags) IsSynthetic() bool { return f.Has(AccSynthetic) }
func (f Flags) IsEnum() bool      { return f.Has(AccEnum) }
func (f Flags) IsVarargs() bool   { return f.Has(AccVarargs) }
func (f Flags) IsBridge() bool    { return f.Has(AccBridge) }
func (f Flags) IsStrictfp() bool  { return f.Has(AccStrict) }

func (f Flags) IsHeaderProcessed() bool  { return f.Has(StateHeaderProcessed) }
func (f Flags) IsMembersProcessed() bool { return f.Has(StateMembersProcessed) }
func (f Flags) IsSourcePending() bool    { return f.Has(StateSourcePending) }
func (f Flags) IsAnonymous() bool        { return f.Has(StateAnonymous) }
func (f Flags) IsLocal() bool            { return f.Has(StateLocal) }
func (f Flags) IsBad() bool              { return f.Has(StateBad) }
func (f Flags) IsDeprecated() bool       { return f.Has(AccDeprecated) }

// Set returns f with every bit in add also set.
func (f Flags) Set(add Flags) Flags { return f | add }

// Clear returns f with every bit in remove unset.
func (f Flags) Clear(remove Flags) Flags { return f &^ remove }
