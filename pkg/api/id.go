package api

import (
	"fmt"
)

// ID is the integer identifier of a single object (node, datapoint or
// element) within one domain. Identifiers are unique within a domain, not
// across a region.
type ID int64

// ZeroID is not a valid ID. Valid identifiers start at 1.
const ZeroID ID = 0

func (id ID) String() string {
	return fmt.Sprintf("%d", id)
}
