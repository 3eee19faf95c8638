package submatrix_test

import (
	"testing"

	"github.com/bebop/seqalign/alphabet"
	"github.com/bebop/seqalign/submatrix"
	"github.com/stretchr/testify/assert"
)

func TestSubstitutionMatrix(t *testing.T) {
	alpha1 := alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})
	alpha2 := alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})
	nuc4 := [][]int{
		/*       - A C G T */
		/* - */ {0, 0, 0, 0, 0},
		/* A */ {0, 5, -4, -4, -4},
		/* C */ {0, -4, 5, -4, -4},
		/* G */ {0, -4, -4, 5, -4},
		/* T */ {0, -4, -4, -4, 5},
	}
	subMat, err := submatrix.NewSubstitutionMatrix(alpha1, alpha2, nuc4)
	assert.Nil(t, err)

	testCases := []struct {
		symbol1 string
		symbol2 string
		score   int
	}{
		{"A", "A", 5},
		{"A", "C", -4},
		{"C", "T", -4},
		{"-", "-", 0},
	}

	for _, tc := range testCases {
		sym1, _ := alpha1.Encode(tc.symbol1)
		sym2, _ := alpha2.Encode(tc.symbol2)
		score, err := subMat.Score(tc.symbol1, tc.symbol2)

		assert.Nil(t, err)
		assert.Equal(t, nuc4[sym1][sym2], score)
		assert.Equal(t, tc.score, score)
	}
}

func TestSubstitutionMatrix_MismatchedShape(t *testing.T) {
	alpha1 := alphabet.NewAlphabet([]string{"A", "C", "G", "T"})
	alpha2 := alphabet.NewAlphabet([]string{"A", "C", "G", "T"})

	_, err := submatrix.NewSubstitutionMatrix(alpha1, alpha2, [][]int{{0, 0}})
	assert.NotNil(t, err)
}

func TestDefaultAndNUC4(t *testing.T) {
	score, err := submatrix.Default.Score("A", "A")
	assert.Nil(t, err)
	assert.Equal(t, 5, score)

	score, err = submatrix.Default.Score("A", "C")
	assert.Nil(t, err)
	assert.Equal(t, -4, score)
}
