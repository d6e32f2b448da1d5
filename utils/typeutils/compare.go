package typeutils

import "strings"

// CompareCursors orders two cursor values. Values that parse as timestamps
// compare on the instant they denote; anything else falls back to plain
// string ordering.
func CompareCursors(a, b string) int {
	ta, errA := ParseTimestamp(a)
	tb, errB := ParseTimestamp(b)
	if errA == nil && errB == nil {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}

func MaxCursor(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if CompareCursors(a, b) >= 0 {
		return a
	}
	return b
}
