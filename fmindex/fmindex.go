/*
Package fmindex builds a bidirectional FM-index over a DNA reference and
performs bounded-error backward search against it.

The FM-index pairs a Burrows-Wheeler transform of the reference with a
rank table so that a pattern can be matched right-to-left while only ever
narrowing a contiguous range of rows in the sorted rotation matrix (the
suffix-array interval). Exact matching this way is the well known
"backward search"; this package's Search additionally tolerates a budget
of mismatches and, optionally, affine-gap insertions and deletions, using
a branch-and-bound recursion pruned by a per-position lower bound (the
D-array) computed over the reverse reference.

A minimal walkthrough:

	idx, err := fmindex.New("ACGTACGTACGT")
	results, prunes, err := idx.Search("ACGT", 0, fmindex.DefaultConfig())
	pos, score := idx.BestPosition(results)
	// pos == 9 (1-based), score == 0: all three exact hits tie on score,
	// and the tie goes to the lowest SA row, the suffix "ACGT$"

Building the index is O(n^2 log n) with the default suffix sort, which is
fine for test-scale references; swap in fmindex/compact's RankTable for a
memory-efficient rank representation on larger inputs.
*/
package fmindex

// dnaSymbols fixes the alphabet iteration order used throughout this
// package: A < C < G < T. Every recursion, rank table, and C computation
// below iterates in exactly this order so that result ordering is
// reproducible.
var dnaSymbols = [4]byte{'A', 'C', 'G', 'T'}

func reverseString(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = s[i]
	}
	return string(b)
}
