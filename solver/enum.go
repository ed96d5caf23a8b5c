package solver

import (
	"strconv"
	"strings"
)

// enumerate returns every candidate of the n-color search space, i.e. the
// integers 0..2^n-1 in increasing order. For n = 0 the single candidate 0 is
// returned. n is assumed non-negative.
func enumerate(n int) []uint64 {
	cands := make([]uint64, 1<<uint(n))
	for i := range cands {
		cands[i] = uint64(i)
	}
	return cands
}

// encode returns the minimal-width base-2 representation of k, e.g. "0" for
// 0 and "101" for 5.
func encode(k uint64) string {
	return strconv.FormatUint(k, 2)
}

// padLeft left-pads s with pad up to width w.
// Strings of length w or more are returned unchanged.
func padLeft(s string, w int, pad byte) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(string(pad), w-len(s)) + s
}
