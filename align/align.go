/*
Package align performs classical dynamic-programming sequence alignment
(Needleman-Wunsch global alignment and Smith-Waterman local alignment)
between two strings. It exists alongside the FM-index search engine in
package fmindex to render a human-readable traceback for whatever
position that engine reports as the best match: the index tells you
where a read landed, this package shows you what the alignment there
actually looks like.

Biology is fickle and full of quirks that make it hard to do even the
most basic of tasks which would otherwise be taken for granted when
working with other kinds of data. Comparing two biological sequences to
see if they're roughly equivalent is one of those tasks: two almost
identical sequences can contain small insertions or deletions that
shift the entire string such that a naive character-by-character
comparison becomes meaningless. Needleman-Wunsch and Smith-Waterman are
the two most basic dynamic-programming algorithms that account for that
shifting.
*/
package align

import "github.com/bebop/seqalign/submatrix"

// Scoring holds the scoring parameters used by both alignment
// algorithms below: a substitution matrix for match/mismatch scores and
// a flat gap penalty charged per inserted or deleted column.
type Scoring struct {
	SubstitutionMatrix *submatrix.SubstitutionMatrix
	GapPenalty         int
}

// NewScoring returns a Scoring using substitutionMatrix, or
// submatrix.Default if substitutionMatrix is nil.
func NewScoring(substitutionMatrix *submatrix.SubstitutionMatrix, gapPenalty int) (Scoring, error) {
	if substitutionMatrix == nil {
		substitutionMatrix = submatrix.Default
	}
	return Scoring{
		SubstitutionMatrix: substitutionMatrix,
		GapPenalty:         gapPenalty,
	}, nil
}

func (s Scoring) score(a, b byte) (int, error) {
	return s.SubstitutionMatrix.Score(string(a), string(b))
}

// NeedlemanWunsch performs global alignment between two strings. It
// returns the final score and the optimal alignment of both strings in
// O(nm) time and space. https://en.wikipedia.org/wiki/Needleman-Wunsch_algorithm
func NeedlemanWunsch(stringA, stringB string, scoring Scoring) (int, string, string, error) {
	m, n := len(stringA), len(stringB)

	matrix := make([][]int, m+1)
	for i := range matrix {
		matrix[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		matrix[i][0] = matrix[i-1][0] + scoring.GapPenalty
	}
	for j := 1; j <= n; j++ {
		matrix[0][j] = matrix[0][j-1] + scoring.GapPenalty
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			matchScore, err := scoring.score(stringA[i-1], stringB[j-1])
			if err != nil {
				return 0, "", "", err
			}
			matrix[i][j] = max(
				matrix[i-1][j-1]+matchScore,
				max(matrix[i-1][j]+scoring.GapPenalty, matrix[i][j-1]+scoring.GapPenalty),
			)
		}
	}

	var alignA, alignB []byte
	i, j := m, n
	for i > 0 && j > 0 {
		matchScore, err := scoring.score(stringA[i-1], stringB[j-1])
		if err != nil {
			return 0, "", "", err
		}
		switch {
		case matrix[i][j] == matrix[i-1][j-1]+matchScore:
			alignA = append(alignA, stringA[i-1])
			alignB = append(alignB, stringB[j-1])
			i--
			j--
		case matrix[i][j] == matrix[i-1][j]+scoring.GapPenalty:
			alignA = append(alignA, stringA[i-1])
			alignB = append(alignB, '-')
			i--
		default:
			alignA = append(alignA, '-')
			alignB = append(alignB, stringB[j-1])
			j--
		}
	}
	for i > 0 {
		alignA = append(alignA, stringA[i-1])
		alignB = append(alignB, '-')
		i--
	}
	for j > 0 {
		alignA = append(alignA, '-')
		alignB = append(alignB, stringB[j-1])
		j--
	}

	reverseBytes(alignA)
	reverseBytes(alignB)
	return matrix[m][n], string(alignA), string(alignB), nil
}

// SmithWaterman performs local alignment between two strings. It
// returns the max score and the optimal local alignment in O(nm) time
// and space. https://en.wikipedia.org/wiki/Smith-Waterman_algorithm
func SmithWaterman(stringA, stringB string, scoring Scoring) (int, string, string, error) {
	m, n := len(stringA), len(stringB)

	matrix := make([][]int, m+1)
	for i := range matrix {
		matrix[i] = make([]int, n+1)
	}

	maxScore, maxRow, maxCol := 0, 0, 0

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			matchScore, err := scoring.score(stringA[i-1], stringB[j-1])
			if err != nil {
				return 0, "", "", err
			}
			diag := matrix[i-1][j-1] + matchScore
			up := matrix[i-1][j] + scoring.GapPenalty
			left := matrix[i][j-1] + scoring.GapPenalty
			matrix[i][j] = max(0, max(diag, max(up, left)))

			if matrix[i][j] > maxScore {
				maxScore = matrix[i][j]
				maxRow, maxCol = i, j
			}
		}
	}

	var alignA, alignB []byte
	i, j := maxRow, maxCol
	for i > 0 && j > 0 && matrix[i][j] > 0 {
		matchScore, err := scoring.score(stringA[i-1], stringB[j-1])
		if err != nil {
			return 0, "", "", err
		}
		switch {
		case matrix[i][j] == matrix[i-1][j-1]+matchScore:
			alignA = append(alignA, stringA[i-1])
			alignB = append(alignB, stringB[j-1])
			i--
			j--
		case matrix[i][j] == matrix[i-1][j]+scoring.GapPenalty:
			alignA = append(alignA, stringA[i-1])
			alignB = append(alignB, '-')
			i--
		default:
			alignA = append(alignA, '-')
			alignB = append(alignB, stringB[j-1])
			j--
		}
	}

	reverseBytes(alignA)
	reverseBytes(alignB)
	return maxScore, string(alignA), string(alignB), nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
