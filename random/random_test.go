package random

import (
	"strings"
	"testing"
)

func TestDNASequence(t *testing.T) {
	const length = 15
	sequence, err := DNASequence(length, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sequence) != length {
		t.Errorf("DNASequence(%d, 2) has length %d, want %d", length, len(sequence), length)
	}
	for _, b := range sequence {
		if !strings.ContainsRune("ACGT", b) {
			t.Errorf("DNASequence produced base %q outside {A,C,G,T}", b)
		}
	}
}

func TestDNASequenceDeterministic(t *testing.T) {
	a, _ := DNASequence(20, 42)
	b, _ := DNASequence(20, 42)
	if a != b {
		t.Errorf("DNASequence(20, 42) is not deterministic: %q != %q", a, b)
	}
}

func TestResolveBase(t *testing.T) {
	for _, b := range []byte("ACGT") {
		if got := ResolveBase(b); got != b {
			t.Errorf("ResolveBase(%c) = %c, want unchanged", b, got)
		}
	}
	for i := 0; i < 50; i++ {
		got := ResolveBase('N')
		if !strings.ContainsRune("ACGT", rune(got)) {
			t.Errorf("ResolveBase('N') = %c, want one of A,C,G,T", got)
		}
	}
}
