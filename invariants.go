package msgalloc

import "golang.org/x/exp/constraints"

// nonDecreasing reports whether s is sorted in non-decreasing order. It is
// generic the same way go-catrate's ringBuffer[E constraints.Ordered] is:
// one comparison helper usable against uint32 write cursors, Offset values,
// or plain ints, rather than duplicating the loop per call site.
func nonDecreasing[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
