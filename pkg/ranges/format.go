package ranges

import (
	"strings"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Format renders a normalized range list in the compact form understood by
// Parse, e.g. "1-30,55,66-70". Single-identifier ranges render as the bare
// identifier; an empty list renders as the empty string. For normalized
// input this is the exact left inverse of Parse.
func Format(rl api.RangeList) string {
	s := make([]string, len(rl))

	for i, r := range rl {
		s[i] = r.String()
	}

	return strings.Join(s, ",")
}
