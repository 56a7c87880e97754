package api

import (
	"fmt"
	"strings"
)

// Range is an inclusive interval of object identifiers. Single identifiers
// are represented as [n, n]. Anything produced by this module has
// Start <= Stop; construct ranges by hand at your own risk.
type Range struct {
	Start ID // inclusive
	Stop  ID // inclusive
}

// String returns a string like: 1-30, or just 1 for single identifiers.
func (r Range) String() string {
	if r.Start == r.Stop {
		return r.Start.String()
	}

	return fmt.Sprintf("%s-%s", r.Start, r.Stop)
}

// Count returns the number of identifiers the range covers.
func (r Range) Count() int64 {
	return int64(r.Stop-r.Start) + 1
}

// Contains returns true if the given identifier is within the range.
func (r Range) Contains(id ID) bool {
	return id >= r.Start && id <= r.Stop
}

// RangeList is an ordered list of identifier ranges. A normalized list is
// sorted ascending by Start, with no two ranges overlapping or adjacent.
type RangeList []Range

// String returns the compact form, e.g. "1-30,55,66-70".
func (rl RangeList) String() string {
	s := make([]string, len(rl))

	for i, r := range rl {
		s[i] = r.String()
	}

	return strings.Join(s, ",")
}

// Count returns the total number of identifiers covered.
func (rl RangeList) Count() int64 {
	var n int64

	for _, r := range rl {
		n += r.Count()
	}

	return n
}

// Contains returns true if any range in the list covers the identifier.
func (rl RangeList) Contains(id ID) bool {
	for _, r := range rl {
		if r.Contains(id) {
			return true
		}
	}

	return false
}

// IDs expands the list into the identifiers it covers, in list order.
// For a normalized list this is ascending with no duplicates.
func (rl RangeList) IDs() []ID {
	ids := make([]ID, 0, rl.Count())

	for _, r := range rl {
		for id := r.Start; id <= r.Stop; id++ {
			ids = append(ids, id)
		}
	}

	return ids
}
