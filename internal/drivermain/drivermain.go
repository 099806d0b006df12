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

// Package drivermain provides the ambient command-line scaffolding a
// jikesgo-style main package needs: finding the workspace a relative
// source argument is rooted at, turning a possibly-relative source
// argument into an absolute file list, CPU profiling, and assembling a
// internal/semantic.Context from a resolved classpath. It generalises
// cli.Workspace/cli.FilesToParse/cli.StartProfiler from a BUILD-rule-
// aware dependency tool into the plainer "list of source files plus a
// list of classpath entries" shape this compiler's front end needs.
package drivermain

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/jikesgo/jikesgo/internal/classreader"
	"github.com/jikesgo/jikesgo/internal/semantic"
	"github.com/jikesgo/jikesgo/internal/symbol"
	"github.com/jikesgo/jikesgo/internal/wellknown"
)

// Workspace returns the absolute directory a relative source path
// should be resolved against: workspaceFlag if the user supplied one
// (-workspace), otherwise the process's current working directory.
// Unlike cli.Workspace, there is no WORKSPACE-file marker to search
// for here -- this compiler has no Bazel package-loading dependency of
// its own -- so an explicit flag or the current directory are the only
// two sources.
func Workspace(workspaceFlag string) (string, error) {
	if workspaceFlag != "" {
		abs, err := filepath.Abs(workspaceFlag)
		if err != nil {
			return "", fmt.Errorf("couldn't make %q absolute: %v", workspaceFlag, err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("couldn't get working directory: %v", err)
	}
	return wd, nil
}

// FilesToParse resolves each of args against workingDir, the way
// cli.FilesToParse resolves a single argument: an absolute path is
// returned unchanged, a relative one is joined to workingDir.
func FilesToParse(args []string, workingDir string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if filepath.IsAbs(a) {
			out[i] = a
			continue
		}
		out[i] = filepath.Join(workingDir, a)
	}
	return out
}

// StartProfiler starts CPU profiling to outFile and returns a function
// that stops it; if outFile is empty, the returned function is a no-op,
// matching cli.StartProfiler's shape exactly.
func StartProfiler(outFile string) (stopProfiler func()) {
	if outFile == "" {
		return func() {}
	}
	f, err := os.Create(outFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatal(err)
	}
	return pprof.StopCPUProfile
}

// Config is the set of flags a jikesgo-style main package collects
// before it can build a semantic.Context: the classpath entries to
// scan (directories and jar files, in search order) and the source
// files to compile.
type Config struct {
	Classpath []string
	Sources   []string
}

// NewSemanticContext builds the classreader.Classpath, loads the
// well-known java.lang types, and returns a semantic.Context ready for
// its caller to register compilation units on via
// semantic.Context.DeclareSourceType and run via semantic.Context.Run.
// The unnamed root package and its "java.lang" descendant are created
// fresh per call, matching internal/semantic.NewContext's own
// no-package-level-singleton posture.
func NewSemanticContext(cfg Config) *semantic.Context {
	cp := classreader.NewClasspath(cfg.Classpath)
	in := symbol.NewInterner()
	root := symbol.NewPackage(symbol.Name{}, "", nil)
	javaLang := root.Subpackage("java").Subpackage("lang")
	wk := wellknown.Load(in, javaLang)

	return semantic.NewContext(in, cp, wk, root)
}

// PreloadClasses eagerly materialises internalNames from cfg's
// classpath, surfacing I/O errors before the semantic passes begin
// rather than failing lazily mid-pass on whichever type happened to be
// dereferenced first.
func PreloadClasses(ctx context.Context, cp *classreader.Classpath, internalNames []string) error {
	_, err := cp.Load(ctx, internalNames)
	return err
}
