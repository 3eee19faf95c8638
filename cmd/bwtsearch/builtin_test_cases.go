package main

import (
	"fmt"
	"io"

	"github.com/bebop/seqalign/alphabet"
	"github.com/bebop/seqalign/fmindex"
)

// scenario is one of the canonical engine scenarios the "test" argument
// exercises, named after the corresponding spec section. check reports
// whether the observed result matches what the scenario expects.
type scenario struct {
	name  string
	check func() (ok bool, detail string)
}

// runBuiltinTests runs bwtsearch's fixed self-check scenarios and writes
// a PASS/FAIL line per scenario to w, returning an error if any scenario
// fails (so `bwtsearch test` exits non-zero on regression).
func runBuiltinTests(w io.Writer) error {
	scenarios := []scenario{
		{"S1 exact match", scenarioS1},
		{"S2 single mismatch", scenarioS2},
		{"S3 indel tolerant", scenarioS3},
		{"S4 reverse complement", scenarioS4},
		{"S5 budget exhaustion", scenarioS5},
	}

	failures := 0
	for _, s := range scenarios {
		ok, detail := s.check()
		status := "PASS"
		if !ok {
			status = "FAIL"
			failures++
		}
		fmt.Fprintf(w, "%s %s: %s\n", status, s.name, detail)
	}
	if failures > 0 {
		return fmt.Errorf("bwtsearch test: %d scenario(s) failed", failures)
	}
	return nil
}

func positions(idx *fmindex.Index, results []fmindex.SearchResult) map[int]int {
	out := make(map[int]int, len(results))
	sa := idx.SuffixArray()
	for _, r := range results {
		out[sa[r.SAIndex]+1] = r.Score
	}
	return out
}

func scenarioS1() (bool, string) {
	idx, err := fmindex.New("ACGTACGTACGT")
	if err != nil {
		return false, err.Error()
	}
	results, _, err := idx.Search("ACGT", 0, fmindex.DefaultConfig())
	if err != nil {
		return false, err.Error()
	}
	got := positions(idx, results)
	for _, want := range []int{1, 5, 9} {
		if _, ok := got[want]; !ok {
			return false, fmt.Sprintf("expected position %d, got %v", want, got)
		}
	}
	return true, fmt.Sprintf("positions=%v", got)
}

func scenarioS2() (bool, string) {
	idx, err := fmindex.New("ACGTACGTACGT")
	if err != nil {
		return false, err.Error()
	}
	cfg := fmindex.DefaultConfig()
	cfg.Mismatch = 1

	results, _, err := idx.Search("ACTT", 1, cfg)
	if err != nil {
		return false, err.Error()
	}
	got := positions(idx, results)
	for _, want := range []int{1, 5, 9} {
		score, ok := got[want]
		if !ok || score != 0 {
			return false, fmt.Sprintf("z=1: expected position %d with score 0, got %v", want, got)
		}
	}

	empty, _, err := idx.Search("ACTT", 0, cfg)
	if err != nil {
		return false, err.Error()
	}
	if len(empty) != 0 {
		return false, fmt.Sprintf("z=0: expected no results, got %v", positions(idx, empty))
	}
	return true, "z=1 matches at {1,5,9} with score 0; z=0 empty"
}

func scenarioS3() (bool, string) {
	idx, err := fmindex.New("CGATCCGCGCTGCTGATGATCGATG")
	if err != nil {
		return false, err.Error()
	}
	results, _, err := idx.Search("GATGAT", 2, fmindex.DefaultConfig())
	if err != nil {
		return false, err.Error()
	}
	if len(results) == 0 {
		return false, "expected a non-empty result set"
	}
	pos, score := idx.BestPosition(results)
	if pos != 15 {
		return false, fmt.Sprintf("expected best position 15, got %d (score %d)", pos, score)
	}
	return true, fmt.Sprintf("best position=%d score=%d", pos, score)
}

func scenarioS4() (bool, string) {
	idx, err := fmindex.New("ACGTACGTACGT")
	if err != nil {
		return false, err.Error()
	}
	rc := alphabet.ReverseComplement("ACGT")
	results, _, err := idx.Search(rc, 0, fmindex.DefaultConfig())
	if err != nil {
		return false, err.Error()
	}
	got := positions(idx, results)
	for _, want := range []int{1, 5, 9} {
		if _, ok := got[want]; !ok {
			return false, fmt.Sprintf("palindrome rc=%q: expected position %d, got %v", rc, want, got)
		}
	}

	idx2, err := fmindex.New("GTTTGTTTGTTT")
	if err != nil {
		return false, err.Error()
	}
	rc2 := alphabet.ReverseComplement("AAAC")
	results2, _, err := idx2.Search(rc2, 0, fmindex.DefaultConfig())
	if err != nil {
		return false, err.Error()
	}
	if len(results2) == 0 {
		return false, fmt.Sprintf("reverse-complement branch rc=%q: expected a match against GTTT-only reference", rc2)
	}
	return true, fmt.Sprintf("palindrome rc=%q matched at %v; non-palindrome rc=%q matched", rc, got, rc2)
}

func scenarioS5() (bool, string) {
	idx, err := fmindex.New("CCCCC")
	if err != nil {
		return false, err.Error()
	}
	cfg := fmindex.DefaultConfig()
	cfg.Mismatch = 1
	results, _, err := idx.Search("AAAAA", 2, cfg)
	if err != nil {
		return false, err.Error()
	}
	pos, score := idx.BestPosition(results)
	if pos != -1 || score != -1 {
		return false, fmt.Sprintf("expected no-match (-1,-1), got (%d,%d)", pos, score)
	}
	return true, "no-match as expected"
}
