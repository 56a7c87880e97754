// Package remap computes collision-free identifier assignments for moving
// objects between two domains whose identifier spaces overlap.
package remap

import (
	"sort"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Gaps returns the unused identifiers below and between the members of
// inUse, ascending: everything from 1 up to (but excluding) the smallest
// member, then every hole between consecutive members. inUse must be sorted
// ascending with no duplicates, which is what Union produces.
func Gaps(inUse []api.ID) []api.ID {
	var gaps []api.ID

	if len(inUse) == 0 {
		return gaps
	}

	for id := api.ID(1); id < inUse[0]; id++ {
		gaps = append(gaps, id)
	}

	for i := 1; i < len(inUse); i++ {
		for id := inUse[i-1] + 1; id < inUse[i]; id++ {
			gaps = append(gaps, id)
		}
	}

	return gaps
}

// Union merges two identifier sets into a single sorted slice with no
// duplicates.
func Union(a, b []api.ID) []api.ID {
	seen := make(map[api.ID]bool, len(a)+len(b))
	out := make([]api.ID, 0, len(a)+len(b))

	for _, ids := range [][]api.ID{a, b} {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Compute decides a new identifier for each candidate being moved into the
// domain that currently holds existingA. existingB is the identifier set of
// the domain the candidates come from; candidates are normally its members.
//
// Candidates whose identifier does not collide with existingA keep it.
// Colliding candidates are assigned the lowest identifier unused by either
// domain, preferring holes in the combined identifier space before
// extending past its maximum. The result maps every candidate, remapped or
// not, and is unique with respect to existingA and internally.
//
// The high-water mark is taken once from the union of both sets and never
// re-checked, so the mapping can collide if the destination gains
// identifiers while it is being applied. Callers hold exclusive access for
// the whole remap-and-apply sequence.
func Compute(existingA, existingB []api.ID, candidates []api.ID) map[api.ID]api.ID {
	taken := make(map[api.ID]bool, len(existingA))
	for _, id := range existingA {
		taken[id] = true
	}

	inUse := Union(existingA, existingB)
	gaps := Gaps(inUse)

	max := api.ZeroID
	if len(inUse) > 0 {
		max = inUse[len(inUse)-1]
	}

	mapping := make(map[api.ID]api.ID, len(candidates))

	for _, id := range candidates {
		if !taken[id] {
			mapping[id] = id
			continue
		}

		if len(gaps) > 0 {
			mapping[id] = gaps[0]
			gaps = gaps[1:]
		} else {
			max += 1
			mapping[id] = max
		}
	}

	return mapping
}
