package reads

import (
	"context"
	"sync"

	"github.com/bebop/seqalign/align"
	"github.com/bebop/seqalign/alphabet"
	"github.com/bebop/seqalign/fmindex"
)

// AlignResult is the outcome of aligning one read: the read itself, plus
// the position and score the driver decided on after comparing the
// forward and reverse-complement strands. Position follows the engine's
// sentinel convention: -1 for no match, -2 for an indeterminate tie
// between the two strands. RefTrace and ReadTrace hold a human-readable
// traceback alignment against the reported position's genomic
// neighborhood; both are empty when Position is -1 or -2, since there is
// no single position to trace back against.
type AlignResult struct {
	Read      Read
	Position  int
	Score     int
	RefTrace  string
	ReadTrace string
}

// tracebackSlack is how far past the query's own length the reference
// window handed to the traceback aligner extends, so that an indel-
// shifted match still lines up inside the window instead of running off
// its end.
const tracebackSlack = 8

// traceback runs global alignment between the strand that won (query)
// and the reference neighborhood around pos, for display purposes only:
// it never influences which position or score the driver reports.
func traceback(idx *fmindex.Index, query string, pos int) (refTrace, readTrace string) {
	window := idx.Window(pos, len(query)+tracebackSlack)
	if window == "" {
		return "", ""
	}
	scoring, err := align.NewScoring(nil, -4)
	if err != nil {
		return "", ""
	}
	_, refTrace, readTrace, err = align.NeedlemanWunsch(window, query, scoring)
	if err != nil {
		return "", ""
	}
	return refTrace, readTrace
}

// Tally is the summary the alignment driver reports: how many reads fell
// into each outcome bucket. Correct+NoMatch+Incorrect+ReadError always
// sums to the number of reads aligned.
type Tally struct {
	Total     int
	Correct   int
	NoMatch   int
	Incorrect int
	ReadError int
}

// Add folds one AlignResult's outcome into t, comparing the reported
// position against the read's known true position.
func (t *Tally) Add(r AlignResult) {
	t.Total++
	switch {
	case r.Position == -2:
		t.ReadError++
	case r.Position == -1:
		t.NoMatch++
	case r.Position == r.Read.TruePosition:
		t.Correct++
	default:
		t.Incorrect++
	}
}

// Align searches every read in rs against idx on both strands, picks the
// better-scoring strand for each, and tallies the outcomes. Reads are
// fanned out across a bounded pool of workers (matching the teacher's
// preference for plain sync.WaitGroup-based concurrency over distinct
// per-item work); ctx is checked between dispatching reads so a caller
// can cancel an in-flight batch, though the search engine itself never
// polls it mid-recursion. workers <= 0 is treated as 1.
func Align(ctx context.Context, idx *fmindex.Index, rs []Read, threshold int, cfg fmindex.Config, workers int) ([]AlignResult, Tally) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]AlignResult, len(rs))
	done := make([]bool, len(rs))
	jobs := make(chan int)

	// Each worker only ever writes the slot for the index it was handed,
	// so results and done need no locking: slots never overlap.
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = alignOne(idx, rs[i], threshold, cfg)
				done[i] = true
			}
		}()
	}

dispatch:
	for i := range rs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	var tally Tally
	finished := results[:0]
	for i, r := range results {
		if !done[i] {
			continue // batch was cancelled before this read was processed
		}
		finished = append(finished, r)
		tally.Add(r)
	}
	return finished, tally
}

// alignOne searches read.Sequence on the forward strand and its reverse
// complement, and picks a single (position, score) outcome:
//
//   - neither strand matches: no-match, (-1, -1).
//   - exactly one strand matches: that strand's result.
//   - both strands match with different scores: the higher-scoring one.
//   - both strands match with equal scores: an indeterminate tie, (-2,
//     score) - the driver cannot tell which strand the read actually came
//     from, so it reports a read error rather than guessing.
func alignOne(idx *fmindex.Index, read Read, threshold int, cfg fmindex.Config) AlignResult {
	fwdResults, _, _ := idx.Search(read.Sequence, threshold, cfg)
	fwdPos, fwdScore := idx.BestPosition(fwdResults)

	rc := alphabet.ReverseComplement(read.Sequence)
	revResults, _, _ := idx.Search(rc, threshold, cfg)
	revPos, revScore := idx.BestPosition(revResults)

	switch {
	case fwdPos == -1 && revPos == -1:
		return AlignResult{Read: read, Position: -1, Score: -1}
	case fwdPos == -1:
		refTrace, readTrace := traceback(idx, rc, revPos)
		return AlignResult{Read: read, Position: revPos, Score: revScore, RefTrace: refTrace, ReadTrace: readTrace}
	case revPos == -1:
		refTrace, readTrace := traceback(idx, read.Sequence, fwdPos)
		return AlignResult{Read: read, Position: fwdPos, Score: fwdScore, RefTrace: refTrace, ReadTrace: readTrace}
	case fwdScore == revScore:
		return AlignResult{Read: read, Position: -2, Score: fwdScore}
	case fwdScore > revScore:
		refTrace, readTrace := traceback(idx, read.Sequence, fwdPos)
		return AlignResult{Read: read, Position: fwdPos, Score: fwdScore, RefTrace: refTrace, ReadTrace: readTrace}
	default:
		refTrace, readTrace := traceback(idx, rc, revPos)
		return AlignResult{Read: read, Position: revPos, Score: revScore, RefTrace: refTrace, ReadTrace: readTrace}
	}
}
