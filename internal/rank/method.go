// Package rank assigns ranks to array elements and discretizes ranks into
// equal-count buckets, over whole arrays or independently per axis slice.
//
// Rank and bucket 0 are reserved for elements outside the total order (NaN
// for floating-point types). The lowest assigned rank and bucket are 1.
package rank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = errors.New("rank: unknown method")

// Method selects how tied elements are ranked.
type Method int

// Supported tie-breaking methods.
const (
	// Minimum gives every member of a tie-group the lowest rank in the group.
	Minimum Method = iota
	// Maximum gives every member the highest rank in the group.
	Maximum
	// Average gives every member the floor of the mean of the group's ranks.
	Average
)

// String returns a human-readable name for the method.
func (m Method) String() string {
	switch m {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case Average:
		return "average"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name as returned by String ("min", "max" and
// "avg" are accepted as well). Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimum", "min":
		return Minimum, nil
	case "maximum", "max":
		return Maximum, nil
	case "average", "avg":
		return Average, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// assign returns the rank given to a tie-group of size g whose first member
// sits at 1-based sorted position r.
func (m Method) assign(r, g uint) uint {
	switch m {
	case Minimum:
		return r
	case Maximum:
		return r + g - 1
	case Average:
		return r + (g-1)/2
	default:
		panic(fmt.Sprintf("rank: invalid method %d", int(m)))
	}
}
