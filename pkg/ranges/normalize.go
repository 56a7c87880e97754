// Package ranges converts identifier range lists between their three
// representations: free-form text, normalized []Range, and the ascending
// identifier sequences produced by domain iteration.
package ranges

import (
	"fmt"
	"sort"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Normalize sorts the given ranges by start and merges overlapping and
// adjacent pairs, returning the minimal ordered list covering the same
// identifiers. The input is not modified. Returns api.ErrInvalidRange if
// any range has Start > Stop or a negative endpoint.
func Normalize(rs []api.Range) (api.RangeList, error) {
	for _, r := range rs {
		if r.Start < 0 || r.Start > r.Stop {
			return nil, fmt.Errorf("%w: [%s, %s]", api.ErrInvalidRange, r.Start, r.Stop)
		}
	}

	out := make(api.RangeList, len(rs))
	copy(out, rs)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Stop < out[j].Stop
	})

	// Merge left to right. A range starting at most one past the previous
	// stop continues the previous range.
	i := 1
	for i < len(out) {
		if out[i].Start <= out[i-1].Stop+1 {
			if out[i].Stop > out[i-1].Stop {
				out[i-1].Stop = out[i].Stop
			}
			out = append(out[:i], out[i+1:]...)
		} else {
			i += 1
		}
	}

	return out, nil
}
