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

// Package semlog implements conditional verbose/debug logging for the
// semantic core's four passes, so -v can turn on a running trace of
// which type is being header-processed, which method body is being
// typed, and so on, without adding a logging framework dependency.
package semlog

import (
	"log"
)

// Level controls which verbose logging statements execute. It is the
// minimal number for which V(x) returns true.
var Level = 0

// Verbose is a boolean type that implements log methods; see V().
type Verbose bool

// V reports whether verbosity at the call site is at least x. The
// returned value is a Verbose, which implements Printf, so "V(2).Printf"
// only formats its arguments when logging is actually enabled.
func V(x int) Verbose {
	return Level >= x
}

// Printf is equivalent to log.Printf, guarded by the value of v.
func (v Verbose) Printf(format string, values ...interface{}) {
	if v {
		log.Printf(format, values...)
	}
}
