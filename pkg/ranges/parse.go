package ranges

import (
	"strconv"
	"strings"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Parse converts free-form range text like "1-30,55,66-70" into a
// normalized range list. It is built for hand-typed input: whitespace is
// trimmed, each endpoint is truncated at its first non-digit, reversed
// ranges like "30-1" are swapped, and tokens with no usable number are
// dropped. Parse never fails; callers needing strict validation must check
// their input some other way.
//
// TODO: Accept ".." as a separator too, for compatibility with EX file
// group declarations.
func Parse(s string) api.RangeList {
	var rs []api.Range

	for _, tok := range strings.Split(s, ",") {
		ends := strings.Split(tok, "-")

		start, ok := parseEndpoint(ends[0])
		if !ok {
			continue
		}

		stop := start
		if len(ends) > 1 {
			stop, ok = parseEndpoint(ends[1])
			if !ok {
				continue
			}

			// Ensure the range is low-high.
			if stop < start {
				start, stop = stop, start
			}
		}

		rs = append(rs, api.Range{Start: start, Stop: stop})
	}

	// Endpoints were swapped low-high above, so this cannot fail.
	out, _ := Normalize(rs)

	return out
}

// parseEndpoint reads one end of a range token: strip whitespace, then keep
// only the leading run of digits, so " 70s" still reads as 70.
func parseEndpoint(s string) (api.ID, bool) {
	digits := strings.TrimSpace(s)

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			digits = digits[:i]
			break
		}
	}

	if digits == "" {
		return api.ZeroID, false
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return api.ZeroID, false
	}

	return api.ID(n), true
}
