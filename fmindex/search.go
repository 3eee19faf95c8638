package fmindex

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/bebop/seqalign/alphabet"
)

// moveKind tags which edit operation a recursion step took. Only start,
// insertion, and deletion affect future cost, since they gate whether the
// next gap pays the affine open cost or just the extend cost; match and
// mismatch are tracked separately only so callers inspecting a trace (none
// currently do) could distinguish them.
type moveKind int

const (
	moveStart moveKind = iota
	moveMatch
	moveMismatch
	moveInsertion
	moveDeletion
)

// SubstitutionWeighter supplies a per-pair mismatch weight w(a,b), as
// produced by package submatrix's EstimateFromObservations. A nil
// SubstitutionWeighter is equivalent to a constant weight of 1.
type SubstitutionWeighter interface {
	Weight(read, ref byte) int
}

// Config holds the scoring parameters for one or more Search calls. Unlike
// the reference implementation's module-level globals, a Config is an
// immutable value threaded explicitly through every call, so that
// concurrent searches over the same Index never race.
type Config struct {
	GapOpen       int
	GapExt        int
	Mismatch      int
	Match         int
	IndelsEnabled bool
	SubMatrix     SubstitutionWeighter
}

// DefaultConfig returns the reference scoring configuration: gap-open 3,
// gap-extend 1, mismatch penalty 1, match bonus 0, indels enabled, no
// substitution matrix.
func DefaultConfig() Config {
	return Config{
		GapOpen:       3,
		GapExt:        1,
		Mismatch:      1,
		Match:         0,
		IndelsEnabled: true,
	}
}

// SearchResult is one surviving suffix-array row after branch-and-bound
// search, with the scoring budget remaining when that row was reached.
type SearchResult struct {
	SAIndex int
	Score   int
}

// Index is an immutable FM-index over a single DNA reference: the suffix
// array, the BWT and its rank table, and the reverse-reference BWT/rank
// table used only to build the D-array. Build once per reference, then
// call Search once per read; Search performs no mutation and is safe to
// call concurrently from multiple goroutines sharing one Index.
type Index struct {
	ref       string
	sa        []int
	bwt       string
	bwtPrime  string
	rank      RankTable
	rankPrime RankTable
	c         map[byte]int
}

// New builds an Index over ref using the dense rank-table backend. ref
// must be non-empty and contain only A, C, G, T.
func New(ref string) (idx *Index, err error) {
	return NewWithRankTable(ref, NewDenseRankTable)
}

// NewWithRankTable builds an Index over ref, using build to construct both
// the forward and reverse rank tables. This is the seam the fmindex/compact
// package hooks into: fmindex.NewWithRankTable(ref, compact.NewRankTable).
func NewWithRankTable(ref string, build RankTableFunc) (idx *Index, err error) {
	defer recoverAsError("fmindex.New", &err)

	if err := validateReference(ref); err != nil {
		return nil, err
	}

	sa := BuildSuffixArray(ref)
	bwt := BuildBWT(ref, sa)
	rank := build(bwt)

	reversed := reverseString(ref)
	saPrime := BuildSuffixArray(reversed)
	bwtPrime := BuildBWT(reversed, saPrime)
	rankPrime := build(bwtPrime)

	return &Index{
		ref:       ref,
		sa:        sa,
		bwt:       bwt,
		bwtPrime:  bwtPrime,
		rank:      rank,
		rankPrime: rankPrime,
		c:         computeC(totalsOf(rank)),
	}, nil
}

// BWT returns the Burrows-Wheeler transform of the reference.
func (idx *Index) BWT() string { return idx.bwt }

// SuffixArray returns the reference's suffix array.
func (idx *Index) SuffixArray() []int { return idx.sa }

// Len returns the length of the reference (excluding the sentinel).
func (idx *Index) Len() int { return len(idx.ref) }

// Window returns up to n bytes of the reference starting at the 1-based
// position pos, truncated at the end of the reference. Callers use it to
// pull out the genomic neighborhood of a reported best position, e.g. to
// render a traceback alignment with package align.
func (idx *Index) Window(pos, n int) string {
	start := pos - 1
	if start < 0 || start >= len(idx.ref) {
		return ""
	}
	end := start + n
	if end > len(idx.ref) {
		end = len(idx.ref)
	}
	return idx.ref[start:end]
}

// Search finds every suffix-array row within budget differences of read,
// under cfg's scoring model, via branch-and-bound recursion pruned by the
// D-array. It returns the surviving rows deduplicated by maximum remaining
// score and sorted by score descending (ties broken by ascending SA row,
// for determinism), plus a count of pruned recursion branches for
// diagnostics.
func (idx *Index) Search(read string, budget int, cfg Config) (results []SearchResult, prunes int, err error) {
	defer recoverAsError("fmindex.Search", &err)

	if err := validateRead(read); err != nil {
		return nil, 0, err
	}

	d := computeD(read, idx.c, idx.rankPrime, len(idx.bwt))

	best := make(map[int]int)
	var recurse func(i, diff, k, l int, prev moveKind)
	recurse = func(i, diff, k, l int, prev moveKind) {
		if diff < dAt(d, i) {
			prunes++
			return
		}

		if i < 0 {
			for j := k; j <= l; j++ {
				if score, ok := best[j]; !ok || diff > score {
					best[j] = diff
				}
			}
			return
		}

		if cfg.IndelsEnabled {
			if prev == moveInsertion {
				recurse(i-1, diff-cfg.GapExt, k, l, moveInsertion)
			} else {
				recurse(i-1, diff-cfg.GapExt-cfg.GapOpen, k, l, moveInsertion)
			}
		}

		for _, ch := range dnaSymbols {
			tempK := idx.c[ch] + idx.rank.Rank(ch, k-1) + 1
			tempL := idx.c[ch] + idx.rank.Rank(ch, l)
			if tempK > tempL {
				continue
			}

			if cfg.IndelsEnabled {
				if prev == moveDeletion {
					recurse(i, diff-cfg.GapExt, tempK, tempL, moveDeletion)
				} else {
					recurse(i, diff-cfg.GapExt-cfg.GapOpen, tempK, tempL, moveDeletion)
				}
			}

			if ch == read[i] {
				recurse(i-1, diff+cfg.Match, tempK, tempL, moveMatch)
			} else {
				weight := 1
				if cfg.SubMatrix != nil {
					weight = cfg.SubMatrix.Weight(read[i], ch)
				}
				recurse(i-1, diff-cfg.Mismatch*weight, tempK, tempL, moveMismatch)
			}
		}
	}

	recurse(len(read)-1, budget, 0, len(idx.bwt)-1, moveStart)

	results = make([]SearchResult, 0, len(best))
	for saIndex, score := range best {
		results = append(results, SearchResult{SAIndex: saIndex, Score: score})
	}
	slices.SortFunc(results, func(a, b SearchResult) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.SAIndex < b.SAIndex
	})

	return results, prunes, nil
}

// BestPosition reduces a sorted Search result list to a single 1-based
// genomic position and score. An empty list yields (-1, -1): no match.
func (idx *Index) BestPosition(results []SearchResult) (position, score int) {
	if len(results) == 0 {
		return -1, -1
	}
	best := results[0]
	return idx.sa[best.SAIndex] + 1, best.Score
}

func validateReference(ref string) error {
	if len(ref) == 0 {
		return errors.New("fmindex: reference must not be empty")
	}
	for i := 0; i < len(ref); i++ {
		if !alphabet.IsDNABase(ref[i]) {
			return fmt.Errorf("fmindex: reference contains non-DNA symbol %q at position %d", ref[i], i)
		}
	}
	return nil
}

func validateRead(read string) error {
	if len(read) == 0 {
		return errors.New("fmindex: read must not be empty")
	}
	for i := 0; i < len(read); i++ {
		if !alphabet.IsDNABase(read[i]) {
			return fmt.Errorf("fmindex: read contains non-DNA symbol %q at position %d; normalize ambiguous bases upstream", read[i], i)
		}
	}
	return nil
}

// recoverAsError converts a panic during op into a returned error, in the
// same spirit as the teacher package's bwtRecovery: an internal invariant
// violation should surface as an error to the caller, not crash it.
func recoverAsError(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: internal error: %v", op, r)
	}
}
