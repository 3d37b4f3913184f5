package style

import (
	"fmt"
	"strings"
)

// Parse finds the member of all whose String matches value, ignoring case
// and surrounding whitespace.
func Parse[V fmt.Stringer](value string, all []V) (V, bool) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range all {
		if strings.ToLower(candidate.String()) == needle {
			return candidate, true
		}
	}
	var zero V
	return zero, false
}

// Labels returns the String of every member of all.
func Labels[V fmt.Stringer](all []V) []string {
	labels := make([]string, 0, len(all))
	for _, v := range all {
		labels = append(labels, v.String())
	}
	return labels
}
