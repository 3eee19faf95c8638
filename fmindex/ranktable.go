package fmindex

// RankTable answers occurrence-count queries over a BWT string for the
// fixed DNA alphabet {A,C,G,T}. It is the seam between the branch-and-bound
// search in search.go and however the counts are actually stored; the
// default is NewDenseRankTable (one full array per symbol). Package
// fmindex/compact provides a run-length/wavelet-tree alternative for
// larger references, per the rank-table substitution the design notes
// explicitly allow.
type RankTable interface {
	// Rank returns the number of occurrences of c in bwt[0..i] inclusive.
	// By convention Rank must return 0 for i < 0.
	Rank(c byte, i int) int
	// Total returns the number of occurrences of c across the whole BWT,
	// i.e. Rank(c, length-1).
	Total(c byte) int
}

// RankTableFunc builds a RankTable from a BWT string.
type RankTableFunc func(bwt string) RankTable

// denseRankTable stores O[c][i] as one full []int per symbol. Memory cost
// is 4*len(bwt)*sizeof(int); fine for test-scale references.
type denseRankTable struct {
	totals map[byte]int
	counts map[byte][]int
}

// NewDenseRankTable builds a RankTable by a single left-to-right pass over
// bwt, recording the running occurrence count of each of A, C, G, T at
// every position. The sentinel is skipped: it never needs a rank since
// the search recursion never transitions on it.
func NewDenseRankTable(bwt string) RankTable {
	totals := map[byte]int{'A': 0, 'C': 0, 'G': 0, 'T': 0}
	counts := map[byte][]int{
		'A': make([]int, len(bwt)),
		'C': make([]int, len(bwt)),
		'G': make([]int, len(bwt)),
		'T': make([]int, len(bwt)),
	}

	for i := 0; i < len(bwt); i++ {
		c := bwt[i]
		if c != sentinel {
			totals[c]++
		}
		for _, sym := range dnaSymbols {
			counts[sym][i] = totals[sym]
		}
	}

	return &denseRankTable{totals: totals, counts: counts}
}

func (rt *denseRankTable) Rank(c byte, i int) int {
	if i < 0 {
		return 0
	}
	col, ok := rt.counts[c]
	if !ok {
		return 0
	}
	return col[i]
}

func (rt *denseRankTable) Total(c byte) int {
	return rt.totals[c]
}

// computeC computes the first-column table C[c] := number of symbols
// lexicographically smaller than c in the reference (per the canonical
// alphabet order A < C < G < T). Every alphabet symbol is always present,
// defaulting to 0.
func computeC(totals map[byte]int) map[byte]int {
	c := map[byte]int{'A': 0, 'C': 0, 'G': 0, 'T': 0}
	for _, sym := range dnaSymbols {
		for _, other := range dnaSymbols {
			if other < sym {
				c[sym] += totals[other]
			}
		}
	}
	return c
}

func totalsOf(rt RankTable) map[byte]int {
	totals := make(map[byte]int, len(dnaSymbols))
	for _, sym := range dnaSymbols {
		totals[sym] = rt.Total(sym)
	}
	return totals
}
