package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmlibs/zincutil/pkg/api"
)

func TestGaps(t *testing.T) {
	examples := []struct {
		name   string
		input  []api.ID
		output []api.ID
	}{
		{
			name:   "empty",
			input:  []api.ID{},
			output: nil,
		},
		{
			name:   "leading gap only",
			input:  []api.ID{4, 5},
			output: []api.ID{1, 2, 3},
		},
		{
			name:   "interior holes",
			input:  []api.ID{1, 2, 5, 9},
			output: []api.ID{3, 4, 6, 7, 8},
		},
		{
			name:   "dense",
			input:  []api.ID{1, 2, 3},
			output: nil,
		},
	}

	for _, ex := range examples {
		t.Run(ex.name, func(t *testing.T) {
			out := Gaps(ex.input)

			if len(ex.output) == 0 {
				assert.Empty(t, out)
				return
			}

			assert.Equal(t, ex.output, out)
		})
	}
}

func TestUnion(t *testing.T) {
	out := Union([]api.ID{5, 1, 3}, []api.ID{2, 3, 9})
	assert.Equal(t, []api.ID{1, 2, 3, 5, 9}, out)

	out = Union(nil, nil)
	assert.Empty(t, out)
}

func TestComputeStability(t *testing.T) {
	// Candidates that don't collide keep their identifiers.
	m := Compute([]api.ID{10, 20}, []api.ID{1, 2, 3}, []api.ID{1, 2, 3})

	assert.Equal(t, map[api.ID]api.ID{1: 1, 2: 2, 3: 3}, m)
}

func TestComputeGapPreference(t *testing.T) {
	// 3 is the only hole; it must be used before anything above 5.
	m := Compute([]api.ID{1, 2, 4, 5}, []api.ID{1}, []api.ID{1})

	assert.Equal(t, api.ID(3), m[1])
}

func TestComputeHighWaterMark(t *testing.T) {
	// No holes at all: colliding candidates go past the maximum, in order.
	m := Compute([]api.ID{1, 2, 3}, []api.ID{1, 2, 3}, []api.ID{1, 2, 3})

	assert.Equal(t, map[api.ID]api.ID{1: 4, 2: 5, 3: 6}, m)
}

func TestComputeMixed(t *testing.T) {
	// existingA = nodes, existingB = datapoints. Union {1,2,3,5,6,8},
	// gaps [4, 7]. Datapoints 2 and 3 collide and take the gaps; 5 doesn't
	// collide and stays; 8 collides and overflows past the max.
	existingA := []api.ID{1, 2, 3, 8}
	existingB := []api.ID{2, 3, 5, 6, 8}

	m := Compute(existingA, existingB, []api.ID{2, 3, 5, 6, 8})

	assert.Equal(t, map[api.ID]api.ID{
		2: 4,
		3: 7,
		5: 5,
		6: 6,
		8: 9,
	}, m)
}

func TestComputeUniqueness(t *testing.T) {
	existingA := []api.ID{1, 2, 3, 4, 10, 11}
	existingB := []api.ID{2, 3, 4, 5, 11, 12}

	m := Compute(existingA, existingB, existingB)
	assert.Len(t, m, len(existingB))

	inA := map[api.ID]bool{}
	for _, id := range existingA {
		inA[id] = true
	}

	seen := map[api.ID]bool{}
	for _, to := range m {
		assert.False(t, inA[to], "remapped id %s collides with destination", to)
		assert.False(t, seen[to], "remapped id %s assigned twice", to)
		seen[to] = true
	}
}

func TestComputeEmptyDestination(t *testing.T) {
	// Nothing to collide with: identity mapping.
	m := Compute(nil, []api.ID{7, 8}, []api.ID{7, 8})

	assert.Equal(t, map[api.ID]api.ID{7: 7, 8: 8}, m)
}
