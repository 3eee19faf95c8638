/*
Package reads parses the FASTA-like paired-end read format used by the
alignment driver and drives the actual alignment of a batch of reads
against a reference genome using package fmindex.

A reads file alternates metadata and sequence lines: odd lines carry an
identifier and a `pos=<integer>` token giving the read's known true
position (used only for accuracy reporting, never by the search engine
itself); even lines carry the nucleotide sequence, with any ambiguous
`N` base resolved to a uniformly random concrete base at parse time.
*/
package reads

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bebop/seqalign/random"
)

// Read is one parsed read: its unique identifier, known true position
// (1-based, as reported by the simulator that generated the reads
// file), and its nucleotide sequence with ambiguous bases resolved.
type Read struct {
	Identifier   string
	TruePosition int
	Sequence     string
}

// Parse reads r as the alternating metadata/sequence format described in
// the package doc comment, returning one Read per metadata+sequence
// line pair. Malformed metadata lines (missing the `pos=` token) are
// reported as an error rather than silently skipped.
func Parse(r io.Reader) ([]Read, error) {
	var out []Read

	scanner := bufio.NewScanner(r)
	lineNum := 0
	var identifier string
	var truePosition int
	havePending := false

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if lineNum%2 == 1 {
			id, pos, err := parseMetadata(line)
			if err != nil {
				return nil, fmt.Errorf("reads: line %d: %w", lineNum, err)
			}
			identifier, truePosition = id, pos
			havePending = true
			continue
		}

		if !havePending {
			return nil, fmt.Errorf("reads: line %d: sequence line with no preceding metadata line", lineNum)
		}
		out = append(out, Read{
			Identifier:   identifier,
			TruePosition: truePosition,
			Sequence:     resolveAmbiguous(line),
		})
		havePending = false
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reads: %w", err)
	}
	if havePending {
		return nil, fmt.Errorf("reads: metadata line %d has no matching sequence line", lineNum)
	}

	return out, nil
}

// parseMetadata extracts the identifier (first whitespace-separated
// token) and true position (the 4th token, of the form `pos=<int>`)
// from one metadata line.
func parseMetadata(line string) (identifier string, position int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return "", 0, fmt.Errorf("expected at least 4 whitespace-separated fields, got %d", len(fields))
	}
	posField := fields[3]
	if len(posField) < 4 || !strings.HasPrefix(posField, "pos=") {
		return "", 0, fmt.Errorf("expected 4th field to have the form pos=<integer>, got %q", posField)
	}
	pos, err := strconv.Atoi(posField[4:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid position in %q: %w", posField, err)
	}
	return fields[0], pos, nil
}

// resolveAmbiguous replaces every ambiguous 'N' base in seq with an
// independently-chosen random concrete base.
func resolveAmbiguous(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = random.ResolveBase(seq[i])
	}
	return string(out)
}

// ParseReference reads r as a plain-text reference sequence: every line
// is concatenated, with newlines stripped.
func ParseReference(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reads: %w", err)
	}
	return b.String(), nil
}
