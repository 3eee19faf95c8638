package compact

import (
	"testing"

	"github.com/bebop/seqalign/fmindex"
)

func bwtOf(ref string) string {
	sa := fmindex.BuildSuffixArray(ref)
	return fmindex.BuildBWT(ref, sa)
}

func naiveRank(bwt string, c byte, i int) int {
	if i < 0 {
		return 0
	}
	count := 0
	for j := 0; j <= i && j < len(bwt); j++ {
		if bwt[j] == c {
			count++
		}
	}
	return count
}

func TestRunLengthRankTableAgainstNaive(t *testing.T) {
	refs := []string{
		"ACGTACGTACGT",
		"CGATCCGCGCTGCTGATGATCGATG",
		"AAAAAAAAAAAA",
		"A",
	}

	for _, ref := range refs {
		bwt := bwtOf(ref)
		rt := NewRankTable(bwt).(*runLengthRankTable)

		for _, c := range []byte("ACGT") {
			for i := 0; i < len(bwt); i++ {
				want := naiveRank(bwt, c, i)
				got := rt.Rank(c, i)
				if got != want {
					t.Errorf("ref %q: Rank(%c, %d) = %d, want %d", ref, c, i, got, want)
				}
			}
		}
	}
}

func TestRunLengthRankTableTotals(t *testing.T) {
	ref := "ACGTACGTACGT"
	bwt := bwtOf(ref)
	rt := NewRankTable(bwt).(*runLengthRankTable)

	for _, c := range []byte("ACGT") {
		want := naiveRank(bwt, c, len(bwt)-1)
		if got := rt.Total(c); got != want {
			t.Errorf("Total(%c) = %d, want %d", c, got, want)
		}
	}
}

func TestRunLengthRankTableSentinelNeverRanked(t *testing.T) {
	ref := "ACGT"
	bwt := bwtOf(ref)
	rt := NewRankTable(bwt).(*runLengthRankTable)

	if got := rt.Rank(sentinelByte, len(bwt)-1); got != 0 {
		t.Errorf("Rank(sentinel, %d) = %d, want 0", len(bwt)-1, got)
	}
	if got := rt.Total(sentinelByte); got != 0 {
		t.Errorf("Total(sentinel) = %d, want 0", got)
	}
}

func TestRunLengthRankTableNegativeIndex(t *testing.T) {
	ref := "ACGTACGT"
	bwt := bwtOf(ref)
	rt := NewRankTable(bwt).(*runLengthRankTable)

	if got := rt.Rank('A', -1); got != 0 {
		t.Errorf("Rank('A', -1) = %d, want 0", got)
	}
}

func TestNewRankTablePanicsOnEmptyBWT(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected NewRankTable to panic on an empty BWT")
		}
	}()
	NewRankTable("")
}
