package ranges

import (
	"errors"
	"fmt"

	"github.com/cmlibs/zincutil/pkg/api"
)

// ErrUnsorted is returned by FromSorted when the input sequence is not
// strictly ascending.
var ErrUnsorted = errors.New("identifier sequence not strictly ascending")

// FromSorted converts a strictly ascending identifier sequence into the
// normalized range list covering exactly those identifiers. Domain
// iterators yield identifiers in exactly this shape, so no sorting happens
// here; out-of-order or duplicate input is an error. A single linear pass,
// no allocation beyond the output.
func FromSorted(ids []api.ID) (api.RangeList, error) {
	var rl api.RangeList

	if len(ids) == 0 {
		return rl, nil
	}

	if ids[0] < 0 {
		return nil, fmt.Errorf("%w: %s", api.ErrInvalidRange, ids[0])
	}

	run := api.Range{Start: ids[0], Stop: ids[0]}

	for _, id := range ids[1:] {
		if id <= run.Stop {
			return nil, fmt.Errorf("%w: %s after %s", ErrUnsorted, id, run.Stop)
		}

		if id == run.Stop+1 {
			run.Stop = id
			continue
		}

		rl = append(rl, run)
		run = api.Range{Start: id, Stop: id}
	}

	return append(rl, run), nil
}
