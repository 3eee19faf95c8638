package compact

import "github.com/bebop/seqalign/fmindex"

// runLengthRankTable answers the same occurrence-count queries as
// fmindex.NewDenseRankTable, but is built from a run-length encoding of
// the BWT instead of one full []int per symbol: runs of identical
// consecutive characters are stored once, a wavelet tree over the
// sequence of run characters answers "which run is this", and a dense
// per-symbol cumulative-count array indexed by *run* number (not by
// character position) answers "how many of this symbol occurred before
// this run". For references with long runs of the same base this is
// dramatically smaller than the dense backend; it answers the identical
// query contract, so the search engine in package fmindex is indifferent
// to which backend it is handed.
type runLengthRankTable struct {
	bwtLen       int
	runs         waveletTree
	runStarts    []int
	cumulativeOf map[byte][]int
	totals       map[byte]int
}

// NewRankTable builds a compact RankTable over bwt by run-length encoding
// it. It satisfies fmindex.RankTableFunc, so it can be passed directly to
// fmindex.NewWithRankTable.
func NewRankTable(bwt string) fmindex.RankTable {
	if len(bwt) == 0 {
		panic("compact: cannot build a rank table over an empty BWT")
	}

	var runChars []byte
	var runStarts []int
	var runLengths []int

	prev := bwt[0]
	runStart := 0
	for i := 1; i <= len(bwt); i++ {
		if i == len(bwt) || bwt[i] != prev {
			runChars = append(runChars, prev)
			runStarts = append(runStarts, runStart)
			runLengths = append(runLengths, i-runStart)
			if i < len(bwt) {
				prev = bwt[i]
				runStart = i
			}
		}
	}

	runTree, err := newWaveletTreeFromString(string(runChars))
	if err != nil {
		panic(err)
	}

	cumulativeOf := make(map[byte][]int)
	totals := make(map[byte]int)
	seenRunsOf := make(map[byte]int)
	for i, c := range runChars {
		if _, ok := cumulativeOf[c]; !ok {
			cumulativeOf[c] = []int{0}
		}
		cumulativeOf[c] = append(cumulativeOf[c], cumulativeOf[c][seenRunsOf[c]]+runLengths[i])
		seenRunsOf[c]++
		totals[c] += runLengths[i]
	}
	delete(totals, sentinelByte)

	return &runLengthRankTable{
		bwtLen:       len(bwt),
		runs:         runTree,
		runStarts:    runStarts,
		cumulativeOf: cumulativeOf,
		totals:       totals,
	}
}

// sentinelByte mirrors fmindex's unexported sentinel constant; it is not
// ranked, matching the dense backend's convention that the search
// recursion never transitions on it.
const sentinelByte = '$'

func (rt *runLengthRankTable) findRun(i int) int {
	lo, hi := 0, len(rt.runStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if rt.runStarts[mid] <= i {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Rank returns the number of occurrences of c in bwt[0..i] inclusive.
func (rt *runLengthRankTable) Rank(c byte, i int) int {
	if i < 0 {
		return 0
	}
	if c == sentinelByte {
		return 0
	}

	cum, ok := rt.cumulativeOf[c]
	if !ok {
		return 0
	}

	run := rt.findRun(i)
	runRank := rt.runs.Rank(c, run)
	before := cum[runRank]

	if rt.runs.Access(run) == c {
		countInRun := i - rt.runStarts[run] + 1
		return before + countInRun
	}
	return before
}

// Total returns the number of occurrences of c across the whole BWT.
func (rt *runLengthRankTable) Total(c byte) int {
	return rt.totals[c]
}
