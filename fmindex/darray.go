package fmindex

// computeD computes, for every prefix s[0..i], a lower bound on the number
// of differences required to align it anywhere in the reference. It does
// so by backward-searching s over the *reverse*-reference rank table
// oPrime: scanning s forward against the reversed reference is equivalent
// to scanning s in reverse against the forward reference, so each exact
// match failure here forces at least one edit somewhere in s[0..i] -
// exactly the admissible lower bound branch-and-bound search needs.
//
// The initial span (k=1, l=bwtLen-2) intentionally differs from the reset
// span used after each failure (k=1, l=bwtLen-1): this one-row discrepancy
// is carried over unchanged from the reference behavior this engine is
// built against.
func computeD(s string, c map[byte]int, oPrime RankTable, bwtLen int) []int {
	k := 1
	l := bwtLen - 2
	z := 0
	d := make([]int, len(s))

	for i := 0; i < len(s); i++ {
		ch := s[i]
		k = c[ch] + oPrime.Rank(ch, k-1) + 1
		l = c[ch] + oPrime.Rank(ch, l)
		if k > l {
			k = 1
			l = bwtLen - 1
			z++
		}
		d[i] = z
	}

	return d
}

// dAt enforces the convention that D[i] for i < 0 is 0.
func dAt(d []int, i int) int {
	if i < 0 {
		return 0
	}
	return d[i]
}
