package compact

import "testing"

func TestWaveletTreeAccessRankSelect(t *testing.T) {
	// Every base repeated in long runs, then one full period of each base,
	// mirroring the kind of BWT runs a repetitive reference produces.
	testStr := "AAAACCCCTTTTGGGG" + "ACTG" + "TGCA" + "TTAA" + "CCGG" + "GGGGTTTTCCCCAAAA"
	wt, err := newWaveletTreeFromString(testStr)
	if err != nil {
		t.Fatal(err)
	}

	accessCases := []struct {
		pos      int
		expected byte
	}{
		{0, 'A'}, {3, 'A'}, {4, 'C'}, {7, 'C'}, {8, 'T'}, {11, 'T'},
		{12, 'G'}, {15, 'G'}, {16, 'A'}, {17, 'C'}, {18, 'T'}, {19, 'G'},
	}
	for _, tc := range accessCases {
		if got := wt.Access(tc.pos); got != tc.expected {
			t.Errorf("Access(%d) = %q, want %q", tc.pos, got, tc.expected)
		}
	}

	rankCases := []struct {
		char     byte
		pos      int
		expected int
	}{
		{'A', 0, 0}, {'A', 2, 2}, {'A', 3, 3}, {'A', 8, 4},
		{'C', 4, 0}, {'C', 6, 2}, {'C', 12, 4},
		{'T', 2, 0}, {'T', 8, 0}, {'T', 12, 4}, {'T', 15, 4},
		{'G', 15, 3}, {'A', 16, 4}, {'A', 17, 5}, {'G', 16, 4},
	}
	for _, tc := range rankCases {
		if got := wt.Rank(tc.char, tc.pos); got != tc.expected {
			t.Errorf("Rank(%c, %d) = %d, want %d", tc.char, tc.pos, got, tc.expected)
		}
	}

	selectCases := []struct {
		char     byte
		rank     int
		expected int
	}{
		{'A', 0, 0}, {'A', 1, 1}, {'A', 2, 2}, {'A', 3, 3},
		{'C', 0, 4}, {'C', 3, 7},
		{'A', 4, 16}, {'C', 4, 17}, {'T', 4, 18}, {'G', 4, 19},
	}
	for _, tc := range selectCases {
		if got := wt.Select(tc.char, tc.rank); got != tc.expected {
			t.Errorf("Select(%c, %d) = %d, want %d", tc.char, tc.rank, got, tc.expected)
		}
	}
}

func TestWaveletTreeReconstruction(t *testing.T) {
	testCases := []string{
		"A",
		"AAA",
		"ACGT",
		"ACGTACGTACGT",
		"AAAACCCCGGGGTTTT$",
	}
	for _, s := range testCases {
		wt, err := newWaveletTreeFromString(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := wt.reconstruct(); got != s {
			t.Errorf("reconstruct() over %q = %q", s, got)
		}
	}
}

func TestWaveletTreeEmptyString(t *testing.T) {
	if _, err := newWaveletTreeFromString(""); err == nil {
		t.Error("expected error building a wavelet tree over an empty string")
	}
}

func TestWaveletTreeSingleChar(t *testing.T) {
	wt, err := newWaveletTreeFromString("G")
	if err != nil {
		t.Fatal(err)
	}
	if r := wt.Rank('G', 1); r != 1 {
		t.Errorf("Rank('G', 1) = %d, want 1", r)
	}
	if s := wt.Select('G', 0); s != 0 {
		t.Errorf("Select('G', 0) = %d, want 0", s)
	}
	if a := wt.Access(0); a != 'G' {
		t.Errorf("Access(0) = %q, want 'G'", a)
	}
}

func TestBuildWaveletTreeZeroAlpha(t *testing.T) {
	root := buildWaveletTree(0, []charInfo{}, []byte("AAAA"))
	if root != nil {
		t.Fatalf("expected nil root for an empty alphabet, got %v", root)
	}
}

func TestLookupCharInfoPanics(t *testing.T) {
	wt := waveletTree{alpha: []charInfo{}}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected lookupCharInfo to panic on an unknown character")
		}
	}()
	wt.lookupCharInfo('B')
}
