/*
Package submatrix provides substitution-weight matrices: fixed scoring
tables for sequence alignment, and an estimator that derives a weight
table directly from the observed mismatches between a reference and a
read instead of from a pre-computed scoring scheme.
*/
package submatrix

import (
	"fmt"

	"github.com/bebop/seqalign/alphabet"
)

// SubstitutionMatrix holds pairwise scores between two (possibly
// different) alphabets, indexed by each alphabet's own symbol encoding.
type SubstitutionMatrix struct {
	alphabet1 *alphabet.Alphabet
	alphabet2 *alphabet.Alphabet
	scores    [][]int
}

// NewSubstitutionMatrix builds a SubstitutionMatrix from a dense scores
// table indexed [alphabet1 code][alphabet2 code]. scores must have one row
// per symbol in alphabet1 and one column per symbol in alphabet2.
func NewSubstitutionMatrix(alphabet1, alphabet2 *alphabet.Alphabet, scores [][]int) (*SubstitutionMatrix, error) {
	if len(scores) != len(alphabet1.Symbols()) {
		return nil, fmt.Errorf("submatrix: scores has %d rows but alphabet1 has %d symbols", len(scores), len(alphabet1.Symbols()))
	}
	for i, row := range scores {
		if len(row) != len(alphabet2.Symbols()) {
			return nil, fmt.Errorf("submatrix: scores row %d has %d columns but alphabet2 has %d symbols", i, len(row), len(alphabet2.Symbols()))
		}
	}
	return &SubstitutionMatrix{alphabet1: alphabet1, alphabet2: alphabet2, scores: scores}, nil
}

// Score returns the substitution score between symbol1 (from alphabet1)
// and symbol2 (from alphabet2).
func (m *SubstitutionMatrix) Score(symbol1, symbol2 string) (int, error) {
	code1, err := m.alphabet1.Encode(symbol1)
	if err != nil {
		return 0, fmt.Errorf("submatrix: %w", err)
	}
	code2, err := m.alphabet2.Encode(symbol2)
	if err != nil {
		return 0, fmt.Errorf("submatrix: %w", err)
	}
	return m.scores[code1][code2], nil
}

// gapAlphabet is shared by Default and NUC_4: a gap symbol plus the four
// DNA bases, in the order the scoring tables below are written against.
var gapAlphabet = alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})

// NUC_4 is a simple +5/-4 match/mismatch DNA scoring table, modeled on
// NCBI's NUC.4.4 matrix restricted to unambiguous bases.
var NUC_4 = [][]int{
	/*       - A  C  G  T */
	/* - */ {0, 0, 0, 0, 0},
	/* A */ {0, 5, -4, -4, -4},
	/* C */ {0, -4, 5, -4, -4},
	/* G */ {0, -4, -4, 5, -4},
	/* T */ {0, -4, -4, -4, 5},
}

// Default is the substitution matrix used when a caller does not supply
// one of its own: NUC_4 over the DNA-plus-gap alphabet.
var Default = mustDefault()

func mustDefault() *SubstitutionMatrix {
	m, err := NewSubstitutionMatrix(gapAlphabet, gapAlphabet, NUC_4)
	if err != nil {
		panic(err)
	}
	return m
}
