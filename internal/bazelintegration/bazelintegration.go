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

// Package bazelintegration lets jikesgo take a Bazel rule label on the
// command line instead of a bare list of .java files, and lets it write
// back a missing classpath dependency once the resolver has found one.
// It generalises jadep's cli.FilesToParse (reading a rule's srcs) and
// buildozer.AddDepsToRules (writing a rule's deps) away from the
// dependency-fixing tool they were built for and onto this compiler's
// "which files do I compile, which jars do I need" questions.
package bazelintegration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bazelbuild/buildtools/build"
	"github.com/bazelbuild/buildtools/edit"

	"github.com/jikesgo/jikesgo/bazel"
)

// LoadPackage parses the BUILD file for pkgName under workspaceRoot and
// returns every rule it declares, keyed by rule name, the way
// jadep/pkgloading materialises a bazel.Package from a BUILD file before
// any rule inside it is inspected.
func LoadPackage(workspaceRoot, pkgName string) (map[string]*build.Rule, error) {
	buildFile := findBuildFile(workspaceRoot, pkgName)
	if buildFile == "" {
		return nil, fmt.Errorf("no BUILD file found for package %q under %q", pkgName, workspaceRoot)
	}
	data, err := os.ReadFile(buildFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", buildFile, err)
	}
	f, err := build.Parse(buildFile, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %v", buildFile, err)
	}
	rules := make(map[string]*build.Rule)
	for _, r := range f.Rules("") {
		rules[r.Name()] = r
	}
	return rules, nil
}

func findBuildFile(workspaceRoot, pkgName string) string {
	for _, name := range []string{"BUILD.bazel", "BUILD"} {
		p := filepath.Join(workspaceRoot, pkgName, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// SourcesForRule resolves ruleLabel (a "//pkg:rule" label; a label with
// no ':', such as "//pkg/foo", names rule "foo" in package "pkg/foo") to the absolute
// paths of its "srcs" attribute, generalising cli.FilesToParse's
// label-argument branch away from Buildozer's own rule representation
// and onto this package's build.Rule.
func SourcesForRule(workspaceRoot string, label bazel.Label) ([]string, error) {
	pkgName, ruleName := label.Split()
	rules, err := LoadPackage(workspaceRoot, pkgName)
	if err != nil {
		return nil, err
	}
	rule, ok := rules[ruleName]
	if !ok {
		return nil, fmt.Errorf("no rule named %q in package %q", ruleName, pkgName)
	}
	var out []string
	for _, src := range rule.AttrStrings("srcs") {
		out = append(out, filepath.Join(workspaceRoot, pkgName, src))
	}
	return out, nil
}

// DepsForRule returns ruleLabel's "deps" attribute as parsed Labels,
// relative to the rule's own package -- the read-side counterpart of
// AddDeps below.
func DepsForRule(workspaceRoot string, label bazel.Label) ([]bazel.Label, error) {
	pkgName, ruleName := label.Split()
	rules, err := LoadPackage(workspaceRoot, pkgName)
	if err != nil {
		return nil, err
	}
	rule, ok := rules[ruleName]
	if !ok {
		return nil, fmt.Errorf("no rule named %q in package %q", ruleName, pkgName)
	}
	var out []bazel.Label
	for _, s := range rule.AttrStrings("deps") {
		l, err := bazel.ParseRelativeLabel(pkgName, s)
		if err != nil {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// AddDeps adds labels to rule's "deps" attribute via Buildozer, the way
// buildozer.AddDepsToRules patches a missing-dependency finding back
// into the BUILD file; here the caller is jikesgo's own resolver
// reporting that a classname it couldn't find on the configured
// classpath resolves to one of labels.
func AddDeps(workspaceRoot string, rule bazel.Label, labels []bazel.Label) error {
	if len(labels) == 0 {
		return nil
	}
	var deps strings.Builder
	for _, l := range labels {
		deps.WriteString(string(l))
		deps.WriteString(" ")
	}
	return buildozer(workspaceRoot, []string{
		fmt.Sprintf("add deps %s", deps.String()),
		string(rule),
	}, []int{0, 3})
}

// buildozer invokes the Buildozer BUILD-file editor in-process and
// returns an error if its exit code isn't one of allowedReturnCodes,
// exactly as jadep/buildozer/buildozer.go's unexported exec helper.
func buildozer(workspaceRoot string, args []string, allowedReturnCodes []int) error {
	opts := &edit.Options{
		NumIO:             200,
		KeepGoing:         true,
		PreferEOLComments: true,
		RootDir:           workspaceRoot,
		Quiet:             true,
	}
	retval := edit.Buildozer(opts, args)
	for _, allowed := range allowedReturnCodes {
		if retval == allowed {
			return nil
		}
	}
	return fmt.Errorf("buildozer returned %d, want one of %v, while executing %v", retval, allowedReturnCodes, args)
}
