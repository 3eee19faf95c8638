/*
Package random provides helpers for generating random DNA sequences and for
resolving ambiguous bases, standing in for unsequenced/unknown nucleotides
encountered while parsing reads.
*/
package random

import "math/rand"

// RandomRune returns a uniformly chosen rune from the given set.
func RandomRune(runes []rune) rune {
	randomIndex := rand.Intn(len(runes))
	return runes[randomIndex]
}

// DNASequence returns a random DNA sequence string of a given length and seed.
func DNASequence(length int, seed int64) (string, error) {
	return randomNucelotideSequence(length, seed, []rune("ACTG")), nil
}

func randomNucelotideSequence(length int, seed int64, alphabet []rune) string {
	r := rand.New(rand.NewSource(seed))
	randomSequence := make([]rune, length)
	for basepair := range randomSequence {
		randomIndex := r.Intn(len(alphabet))
		randomSequence[basepair] = alphabet[randomIndex]
	}
	return string(randomSequence)
}

// ResolveBase returns base unchanged unless it is the ambiguous placeholder
// 'N', in which case it returns a uniformly chosen base from {A,C,G,T}. This
// mirrors the reference aligner's handling of unknown bases when parsing
// reads.
func ResolveBase(base byte) byte {
	if base != 'N' {
		return base
	}
	return byte(RandomRune([]rune("ACGT")))
}
