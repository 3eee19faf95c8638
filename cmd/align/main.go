/*
Command align is the alignment-driver binary: it reads a reference
genome and a batch of simulated reads, aligns every read against the
genome with package fmindex, and reports how many came back correct,
unmatched, incorrect, or ambiguous.

	align <genome-file> <reads-file> [-t <threshold>]

Usage follows the teacher's poly CLI template: github.com/urfave/cli/v2
builds the app, main is kept to a one-line call into run so the command
can be exercised outside of os.Args, and a non-nil error from app.Run is
fatal.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bebop/seqalign/fmindex"
	"github.com/bebop/seqalign/reads"
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
		Name:      "align",
		Usage:     "align a batch of reads against a reference genome",
		UsageText: "align <genome-file> <reads-file> [-t threshold]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "t",
				Value: 3,
				Usage: "error budget (max differences) per read",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "number of reads to align concurrently",
			},
			&cli.BoolFlag{
				Name:  "show-alignments",
				Usage: "print a traceback alignment for every correctly- and incorrectly-placed read",
			},
		},
		Action: alignCommand,
	}
}

func alignCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: align <genome-file> <reads-file> [-t threshold]", 1)
	}
	genomeFile, readsFile := c.Args().Get(0), c.Args().Get(1)

	genomeF, err := os.Open(genomeFile)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer genomeF.Close()
	genome, err := reads.ParseReference(genomeF)
	if err != nil {
		return cli.Exit(fmt.Errorf("align: %w", err), 1)
	}

	readsF, err := os.Open(readsFile)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer readsF.Close()
	batch, err := reads.Parse(readsF)
	if err != nil {
		return cli.Exit(fmt.Errorf("align: %w", err), 1)
	}

	idx, err := fmindex.New(genome)
	if err != nil {
		return cli.Exit(fmt.Errorf("align: %w", err), 1)
	}

	threshold := c.Int("t")
	workers := c.Int("workers")

	results, tally := reads.Align(context.Background(), idx, batch, threshold, fmindex.DefaultConfig(), workers)

	if c.Bool("show-alignments") {
		reportAlignments(c.App.Writer, results)
	}
	report(c.App.Writer, tally)
	return nil
}

func report(w io.Writer, t reads.Tally) {
	fmt.Fprintf(w, "total reads:          %d\n", t.Total)
	fmt.Fprintf(w, "correct alignments:   %d\n", t.Correct)
	fmt.Fprintf(w, "no-match:             %d\n", t.NoMatch)
	fmt.Fprintf(w, "incorrect alignments: %d\n", t.Incorrect)
	fmt.Fprintf(w, "read errors:          %d\n", t.ReadError)
}

// reportAlignments prints the Needleman-Wunsch traceback package align
// computed for every read that resolved to a single genomic position, so
// a human reviewing a run can see what the winning alignment actually
// looks like rather than just its score.
func reportAlignments(w io.Writer, results []reads.AlignResult) {
	for _, r := range results {
		if r.RefTrace == "" {
			continue
		}
		fmt.Fprintf(w, "%s @ %d (score %d):\n  ref:  %s\n  read: %s\n", r.Read.Identifier, r.Position, r.Score, r.RefTrace, r.ReadTrace)
	}
}
