/*
Command bwtsearch is the standalone search tool: it builds an FM-index
over a single reference and reports every position within an error
budget of a single read, or, given the literal argument "test", runs a
small built-in self-check against the scenarios this engine is designed
to satisfy.

	bwtsearch [--no-indels] [--linear-gaps] [--no-sub-mat] [--compact] [-t threshold] (test | <reference-file> <read-file>) [--show-time] [--count-prunes]

Like cmd/align, this follows the teacher's poly CLI template built on
github.com/urfave/cli/v2.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bebop/seqalign/fmindex"
	"github.com/bebop/seqalign/fmindex/compact"
	"github.com/bebop/seqalign/reads"
	"github.com/bebop/seqalign/submatrix"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	if err := application().Run(args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:      "bwtsearch",
		Usage:     "search a reference for a read with a bounded-error FM-index",
		UsageText: "bwtsearch [flags] (test | <reference-file> <read-file>)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-indels", Usage: "disable insertion/deletion moves"},
			&cli.BoolFlag{Name: "linear-gaps", Usage: "set gap-open=0, gap-extend=1"},
			&cli.BoolFlag{Name: "no-sub-mat", Usage: "disable substitution-weight estimation"},
			&cli.BoolFlag{Name: "compact", Usage: "use the run-length/wavelet-tree rank-table backend"},
			&cli.IntFlag{Name: "t", Value: 3, Usage: "error budget (max differences)"},
			&cli.BoolFlag{Name: "show-time", Usage: "print index-build and search wall-clock time"},
			&cli.BoolFlag{Name: "count-prunes", Usage: "print the number of pruned recursion branches"},
		},
		Action: searchCommand,
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 1 && c.Args().Get(0) == "test" {
		return runBuiltinTests(c.App.Writer)
	}
	if c.NArg() != 2 {
		return cli.Exit("usage: bwtsearch [flags] (test | <reference-file> <read-file>)", 1)
	}

	refFile, readFile := c.Args().Get(0), c.Args().Get(1)
	ref, err := readWholeFile(refFile)
	if err != nil {
		return cli.Exit(err, 1)
	}
	read, err := readWholeFile(readFile)
	if err != nil {
		return cli.Exit(err, 1)
	}

	cfg := configFromFlags(c, ref, read)

	buildStart := time.Now()
	var idx *fmindex.Index
	if c.Bool("compact") {
		idx, err = fmindex.NewWithRankTable(ref, compact.NewRankTable)
	} else {
		idx, err = fmindex.New(ref)
	}
	if err != nil {
		return cli.Exit(fmt.Errorf("bwtsearch: %w", err), 1)
	}
	buildElapsed := time.Since(buildStart)

	searchStart := time.Now()
	results, prunes, err := idx.Search(read, c.Int("t"), cfg)
	if err != nil {
		return cli.Exit(fmt.Errorf("bwtsearch: %w", err), 1)
	}
	searchElapsed := time.Since(searchStart)

	printReport(c.App.Writer, ref, read, idx, results)
	if c.Bool("show-time") {
		fmt.Fprintf(c.App.Writer, "index build time: %s\n", buildElapsed)
		fmt.Fprintf(c.App.Writer, "search time:      %s\n", searchElapsed)
	}
	if c.Bool("count-prunes") {
		fmt.Fprintf(c.App.Writer, "pruned branches:  %d\n", prunes)
	}
	return nil
}

// configFromFlags builds the scoring Config for one search command
// invocation from the boolean/integer CLI flags, estimating a
// substitution-weight table from ref and read unless --no-sub-mat was
// given.
func configFromFlags(c *cli.Context, ref, read string) fmindex.Config {
	cfg := fmindex.DefaultConfig()
	cfg.IndelsEnabled = !c.Bool("no-indels")
	if c.Bool("linear-gaps") {
		cfg.GapOpen, cfg.GapExt = 0, 1
	}
	if !c.Bool("no-sub-mat") {
		cfg.SubMatrix = submatrix.EstimateFromObservations(ref, read)
	}
	return cfg
}

// suffixWindowLen is the width of the reference excerpt printed after
// each result line, long enough to eyeball the alignment without
// dumping the whole reference.
const suffixWindowLen = 35

func printReport(w io.Writer, ref, read string, idx *fmindex.Index, results []fmindex.SearchResult) {
	fmt.Fprintf(w, "reference: %s\n", ref)
	fmt.Fprintf(w, "read:      %s\n", read)
	fmt.Fprintf(w, "matches:   %d\n", len(results))

	sa := idx.SuffixArray()
	for _, r := range results {
		pos := sa[r.SAIndex] + 1
		fmt.Fprintf(w, "  score=%d pos=%d %s\n", r.Score, pos, suffixWindow(ref, pos, suffixWindowLen))
	}
}

// suffixWindow returns up to n characters of ref starting at the
// 1-based position pos, truncated at the end of the reference.
func suffixWindow(ref string, pos, n int) string {
	start := pos - 1
	if start < 0 || start >= len(ref) {
		return ""
	}
	end := start + n
	if end > len(ref) {
		end = len(ref)
	}
	return ref[start:end]
}

func readWholeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return reads.ParseReference(f)
}
