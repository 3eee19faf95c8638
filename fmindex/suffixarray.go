package fmindex

import "golang.org/x/exp/slices"

// sentinel is the synthetic terminator appended to a reference before it is
// suffix-sorted. It must compare less than every DNA symbol; '$' (0x24)
// does, so ordinary byte/string comparison already gives the right answer
// without any special-cased comparator.
const sentinel = '$'

// BuildSuffixArray returns the suffix array of ref with a terminal sentinel
// appended: a permutation of {0,...,len(ref)} such that the suffix of
// ref+"$" starting at SA[i] is the i-th smallest in lexicographic order.
// ref must not itself contain the sentinel byte.
//
// This sorts suffix-start offsets directly (no substrings are
// materialized ahead of time), following the naive sort the reference
// implementation uses; it is O(n^2 log n) and is intended for test-scale
// references. Any suffix-sorting algorithm producing the same permutation
// may be substituted.
func BuildSuffixArray(ref string) []int {
	extended := ref + string(byte(sentinel))
	n := len(extended)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(a, b int) bool {
		return extended[a:] < extended[b:]
	})
	return sa
}
