package alphabet_test

import (
	"reflect"
	"testing"

	"github.com/bebop/seqalign/alphabet"
)

func TestAlphabet(t *testing.T) {
	symbols := []string{"A", "C", "G", "T"}
	a := alphabet.NewAlphabet(symbols)
	// Test encoding
	for i, symbol := range symbols {
		code, err := a.Encode(symbol)
		if err != nil {
			t.Errorf("Unexpected error encoding symbol %s: %v", symbol, err)
		}
		if int(code) != i {
			t.Errorf("Incorrect encoding of symbol %s: expected %d, got %d", symbol, i, code)
		}
	}
	_, err := a.Encode("X")
	if err == nil {
		t.Error("Expected error for encoding symbol not in alphabet, but got nil")
	}

	// Test decoding
	for i, symbol := range symbols {
		decoded, err := a.Decode(i)
		if err != nil {
			t.Errorf("Unexpected error decoding code %d: %v", i, err)
		}
		if decoded != symbol {
			t.Errorf("Incorrect decoding of code %d: expected %s, got %s", i, symbol, decoded)
		}
	}
	_, err = a.Decode(len(symbols))
	if err == nil {
		t.Error("Expected error for decoding code not in alphabet, but got nil")
	}

	// Test extension
	extendedSymbols := []string{"N", "-", "*"}
	extendedAlphabet := a.Extend(extendedSymbols)
	for i, symbol := range symbols {
		code, err := extendedAlphabet.Encode(symbol)
		if err != nil {
			t.Errorf("Unexpected error encoding symbol %s: %v", symbol, err)
		}
		if int(code) != i {
			t.Errorf("Incorrect encoding of symbol %s: expected %d, got %d", symbol, i, code)
		}
	}
	for i, symbol := range extendedSymbols {
		code, err := extendedAlphabet.Encode(symbol)
		if err != nil {
			t.Errorf("Unexpected error encoding symbol %s: %v", symbol, err)
		}
		if int(code) != i+len(symbols) {
			t.Errorf("Incorrect encoding of symbol %s: expected %d, got %d", symbol, i+len(symbols), code)
		}
	}
}

func TestAlphabet_Symbols(t *testing.T) {
	// Test Symbols
	symbols := []string{"A", "C", "G", "T"}
	a := alphabet.NewAlphabet(symbols)
	if !reflect.DeepEqual(a.Symbols(), symbols) {
		t.Errorf("Symbols() = %v, want %v", a.Symbols(), symbols)
	}
}

func TestReverseComplement(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"ACGT", "ACGT"}, // palindrome
		{"AAAC", "GTTT"},
		{"", ""},
		{"GATGAT", "ATCATC"},
	}

	for _, tc := range testCases {
		got := alphabet.ReverseComplement(tc.in)
		if got != tc.want {
			t.Errorf("ReverseComplement(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestComplement(t *testing.T) {
	testCases := []struct {
		in   byte
		want byte
	}{
		{'A', 'T'}, {'T', 'A'}, {'C', 'G'}, {'G', 'C'}, {'N', 'N'},
	}
	for _, tc := range testCases {
		if got := alphabet.Complement(tc.in); got != tc.want {
			t.Errorf("Complement(%c) = %c, want %c", tc.in, got, tc.want)
		}
	}
}

func TestIsDNABase(t *testing.T) {
	for _, b := range []byte("ACGT") {
		if !alphabet.IsDNABase(b) {
			t.Errorf("IsDNABase(%c) = false, want true", b)
		}
	}
	for _, b := range []byte("Nxz$") {
		if alphabet.IsDNABase(b) {
			t.Errorf("IsDNABase(%c) = true, want false", b)
		}
	}
}
