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

// Package semcompat isolates the handful of calls that behave
// differently depending on whether the binary is running under "go
// test"/"go run" or as a Bazel-built target, so the rest of the module
// never has to special-case it.
package semcompat

import (
	"os"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
)

// RunfilesPath resolves path against the Bazel runfiles tree when
// running as a Bazel target, and returns path unchanged otherwise (e.g.
// rt.jar stand-ins bundled under testdata/ for "go test").
func RunfilesPath(path string) string {
	if r, err := bazel.Runfile(path); err == nil {
		return r
	}
	return path
}

// FileExists reports whether path names a regular file, used by the
// classpath scanner to skip missing -bootclasspath / -cp entries with a
// diagnostic instead of failing the whole compilation.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
