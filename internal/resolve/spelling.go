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

package resolve

import "github.com/jikesgo/jikesgo/internal/members"

// suggest implements the misspelling half of spec §4.1 step 5: search
// every candidate name visible at scope (locals, enclosing types'
// members, imported types) for the closest match to name by character-
// bag similarity, accepting it only within a length-dependent threshold
// so "x" does not "correct" to an unrelated one-letter local.
func (c *Context) suggest(scope *Scope, unit *Unit, name string) string {
	var candidates []string
	for b := scope.Block; b != nil; b = b.Parent {
		for _, v := range b.Locals() {
			candidates = append(candidates, v.SimpleName.String())
		}
	}
	for t := scope.Type; t != nil; t = t.ContainingType {
		members.ComputeClosure(t) //nolint:errcheck
		for n := range t.ExpandedFields() {
			candidates = append(candidates, n.String())
		}
		for n := range t.ExpandedMethods() {
			candidates = append(candidates, n.String())
		}
	}
	for n := range unit.SingleTypeImports {
		candidates = append(candidates, n)
	}

	best := ""
	bestScore := -1
	threshold := bagThreshold(len(name))
	for _, cand := range candidates {
		if cand == name {
			continue // exact matches can't be what produced "not found"
		}
		score := bagSimilarity(name, cand)
		if score >= threshold && score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}

// bagThreshold scales how much character-bag overlap is required before
// a candidate counts as a plausible misspelling: short identifiers need
// a near-exact match (one typo in "id" matches nothing useful), while
// longer ones tolerate more edits.
func bagThreshold(nameLen int) int {
	switch {
	case nameLen <= 3:
		return nameLen - 1
	case nameLen <= 6:
		return nameLen - 2
	default:
		return nameLen - 3
	}
}

// bagSimilarity returns the size of the multiset intersection of a's and
// b's characters minus the multiset symmetric-difference size (the
// characters left over on either side, one point each), i.e. how many
// characters the two names have in common in the same quantity,
// penalized for extras. This is the "character-bag
// similarity" spec §4.1 names: cheap, order-insensitive, and good enough
// to catch transpositions and single-character typos without pulling in
// a full edit-distance dependency for one diagnostic hint.
func bagSimilarity(a, b string) int {
	bag := make(map[rune]int)
	for _, r := range a {
		bag[r]++
	}
	common := 0
	for _, r := range b {
		if bag[r] > 0 {
			bag[r]--
			common++
		}
	}
	extra := (len(a) - common) + (len(b) - common)
	return common - extra
}
