/*
Package alphabet provides structs for defining biological sequence alphabets.
*/
package alphabet

// TODO: add Alphabet for codons

import "fmt"

// Alphabet is a struct that holds a list of symbols and a map of symbols to their index in the list.
type Alphabet struct {
	symbols  []string
	encoding map[interface{}]uint8
}

// Error is the error type Decode returns when a code is not in the alphabet.
type Error struct {
	message string
}

// Error returns the error message for Error.
func (e *Error) Error() string {
	return e.message
}

// NewAlphabet creates a new alphabet from a list of symbols.
func NewAlphabet(symbols []string) *Alphabet {
	encoding := make(map[interface{}]uint8)
	for index, symbol := range symbols {
		encoding[symbol] = uint8(index)
		encoding[index] = uint8(index)
	}
	return &Alphabet{symbols, encoding}
}

// Encode returns the index of a symbol in the alphabet.
func (alphabet *Alphabet) Encode(symbol interface{}) (uint8, error) {
	c, ok := alphabet.encoding[symbol]
	if !ok {
		return 0, fmt.Errorf("Symbol %v not in alphabet", symbol)
	}
	return c, nil
}

// Decode returns the symbol at a given index in the alphabet.
func (alphabet *Alphabet) Decode(code interface{}) (string, error) {
	c, ok := code.(int)
	if !ok || c < 0 || c >= len(alphabet.symbols) {
		return "", &Error{fmt.Sprintf("Code %v not in alphabet", code)}
	}
	return alphabet.symbols[c], nil
}

// Extend returns a new alphabet that is the original alphabet extended with a list of symbols.
func (alphabet *Alphabet) Extend(symbols []string) *Alphabet {
	extended := append(alphabet.symbols, symbols...)
	return NewAlphabet(extended)
}

// Symbols returns the list of symbols in the alphabet.
func (alphabet *Alphabet) Symbols() []string {
	return alphabet.symbols
}

var DNA = NewAlphabet([]string{"A", "C", "G", "T"})

// Sentinel is the synthetic terminator appended to a reference before it is
// suffix-sorted. It compares lexicographically less than every DNA symbol.
const Sentinel = '$'

// complements maps each DNA base to its Watson-Crick pair.
var complements = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// Complement returns the Watson-Crick complement of a single DNA base.
// Bases outside {A,C,G,T} are returned unchanged.
func Complement(base byte) byte {
	if c, ok := complements[base]; ok {
		return c
	}
	return base
}

// ReverseComplement returns the reverse complement of a DNA sequence: the
// sequence reversed, then every base replaced by its complement. Reads are
// pair-ended, so a read's true orientation relative to the reference is
// unknown until both strands have been searched.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = Complement(seq[i])
	}
	return string(out)
}

// IsDNABase reports whether b is one of the four canonical DNA symbols.
func IsDNABase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
