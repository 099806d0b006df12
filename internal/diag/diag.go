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

// Package diag models the semantic core's diagnostics as data, the way
// parsers.SyntaxError is a plain value with a Line/Offset/Description,
// rather than as Go errors: a type-header pass that finds an unresolved
// supertype must still produce a (broken but navigable) Type and keep
// going, collecting the diagnostic for later instead of aborting.
package diag

import "fmt"

// Severity classifies a Diagnostic the way javac distinguishes errors
// that prevent class-file output from warnings that do not.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Kind identifies the specific diagnostic, so callers (tests, -Werror
// policy, IDE integrations) can match on it without parsing Message.
type Kind string

// Diagnostic kinds produced by the semantic core. Names describe what
// was found, not which pass found it.
const (
	UnresolvedSymbol       Kind = "unresolved-symbol"
	AmbiguousReference     Kind = "ambiguous-reference"
	InaccessibleMember     Kind = "inaccessible-member"
	NoApplicableMethod     Kind = "no-applicable-method"
	AmbiguousMethod        Kind = "ambiguous-method"
	UncheckedConversion    Kind = "unchecked-conversion"
	RawTypeUse             Kind = "raw-type-use"
	DeprecatedUse          Kind = "deprecated-use"
	LossyConversion        Kind = "lossy-conversion"
	UnreportedException    Kind = "unreported-exception"
	DuplicateDeclaration   Kind = "duplicate-declaration"
	IllegalModifier        Kind = "illegal-modifier"
	ConstantOverflow       Kind = "constant-overflow"
	MisspelledName         Kind = "misspelled-name"

	// Structural errors (spec §7): instance-member access that JLS 8.3.3
	// and 8.8.7.1 forbid because the receiver is not yet available.
	ForwardReference                               Kind = "forward-reference"
	InstanceMemberInStaticRegion                   Kind = "instance-member-in-static-region"
	InstanceMemberInExplicitConstructorInvocation  Kind = "instance-member-in-explicit-constructor-invocation"

	// Type errors (spec §7).
	IncompatibleTypes Kind = "incompatible-types"
	InvalidCast       Kind = "invalid-cast"
	InvalidInstanceOf Kind = "invalid-instanceof"

	// AbstractMethodViaSuper is spec §4.2's "when the call is via
	// super.m() the resolver rejects abstract method invocation."
	AbstractMethodViaSuper Kind = "abstract-method-via-super"
)

// Diagnostic is one reported problem. FileName/Line/Offset locate it;
// Suggestion carries the spelling-suggestion text for MisspelledName
// (and is empty otherwise).
type Diagnostic struct {
	Severity   Severity
	Kind       Kind
	FileName   string
	Line       int
	Offset     int
	Message    string
	Suggestion string
}

func (d Diagnostic) String() string {
	if d.Suggestion != "" {
		return fmt.Sprintf("%s:%d: %s: %s (did you mean %q?)", d.FileName, d.Line, d.Severity, d.Message, d.Suggestion)
	}
	return fmt.Sprintf("%s:%d: %s: %s", d.FileName, d.Line, d.Severity, d.Message)
}

// Sink accumulates diagnostics across an entire compilation. It is not
// safe for concurrent use; internal/semantic keeps a single Sink for a
// whole run and shares it with its resolver.
type Sink struct {
	diagnostics []Diagnostic
}

// Add records d.
func (s *Sink) Add(d Diagnostic) { s.diagnostics = append(s.diagnostics, d) }

// Errorf records an Error-severity diagnostic of the given kind.
func (s *Sink) Errorf(kind Kind, fileName string, line, offset int, format string, args ...interface{}) {
	s.Add(Diagnostic{Severity: Error, Kind: kind, FileName: fileName, Line: line, Offset: offset, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a Warning-severity diagnostic of the given kind.
func (s *Sink) Warnf(kind Kind, fileName string, line, offset int, format string, args ...interface{}) {
	s.Add(Diagnostic{Severity: Warning, Kind: kind, FileName: fileName, Line: line, Offset: offset, Message: fmt.Sprintf(format, args...)})
}

// All returns every diagnostic recorded so far, in the order added.
func (s *Sink) All() []Diagnostic { return s.diagnostics }

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Merge appends other's diagnostics onto s.
func (s *Sink) Merge(other *Sink) {
	s.diagnostics = append(s.diagnostics, other.diagnostics...)
}
