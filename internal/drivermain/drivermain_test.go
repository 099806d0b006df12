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

package drivermain

import (
	"path/filepath"
	"testing"
)

func TestFilesToParseJoinsRelativeAgainstWorkingDir(t *testing.T) {
	got := FilesToParse([]string{"Foo.java", "/abs/Bar.java"}, "/work")
	want := []string{filepath.Join("/work", "Foo.java"), "/abs/Bar.java"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("FilesToParse = %v, want %v", got, want)
	}
}

func TestWorkspaceUsesExplicitFlag(t *testing.T) {
	got, err := Workspace(".")
	if err != nil {
		t.Fatalf("Workspace: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Workspace(%q) = %q, want an absolute path", ".", got)
	}
}

func TestStartProfilerNoOpWithoutOutFile(t *testing.T) {
	stop := StartProfiler("")
	stop() // must not panic
}

func TestNewSemanticContextBuildsSharedInterner(t *testing.T) {
	ctx := NewSemanticContext(Config{})
	if ctx.Interner == nil {
		t.Fatal("expected a non-nil Interner")
	}
	if ctx.Resolve.Interner != ctx.Interner {
		t.Errorf("semantic.Context.Resolve must share the same Interner as Context.Interner")
	}
	if ctx.WK.Object == nil {
		t.Errorf("expected well-known java.lang.Object to be loaded")
	}
}
