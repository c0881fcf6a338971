// 16 Oct 2026

// Package palign reads a set of nucleotide sequences, aligns pairs of
// them and writes out the alignments with their percent identities.
// The pairs can be neighbours (0-1, 2-3, ...), all pairs or a random
// sample. The alignments can be spread over several goroutines. Each
// goroutine has its own aligner, allocated once for the longest
// sequence, and the output always comes in the order of the pairs.
package palign

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/palign/pkg/gotoh"
	"github.com/andrew-torda/palign/pkg/seq"
)

// PairMode says which pairs of sequences get aligned.
type PairMode byte

const (
	NextPair PairMode = iota // 0 with 1, 2 with 3, ...
	AllPair                  // every i < j
	RandPair                 // NRand random pairs, i != j
)

func (p PairMode) String() string {
	switch p {
	case NextPair:
		return "next-pair"
	case AllPair:
		return "all-pair"
	case RandPair:
		return "rand-pair"
	}
	return "unknown"
}

var (
	ErrOddSeqs    = errors.New("next-pair mode needs an even number of sequences")
	ErrTooFewSeqs = errors.New("need at least two sequences for random pairs")
	ErrBadMode    = errors.New("unknown pair mode")
)

// Args has everything from the command line.
type Args struct {
	Mode     PairMode
	NRand    int   // number of pairs for RandPair
	Seed     int64 // random number seed
	Quiet    bool  // do not print the sequences and alignments
	PrintFsa bool  // write aligned pairs in fasta format to FsaWrtr
	Verbose  bool  // timing at the end
	NWorker  int   // goroutines for aligning, <= 0 means one per CPU
	Scores   gotoh.Scores
	Wrtr     io.Writer // normal output
	FsaWrtr  io.Writer // aligned pairs if PrintFsa is set
}

// Pair has the indices of two sequences, counting from zero.
type Pair struct{ I, J int }

// MakePairs returns the list of pairs to be aligned from nseq sequences.
func MakePairs(mode PairMode, nseq, nRand int, rnd *rand.Rand) ([]Pair, error) {
	var pairs []Pair
	switch mode {
	case NextPair:
		if nseq%2 != 0 {
			return nil, fmt.Errorf("%w, got %d", ErrOddSeqs, nseq)
		}
		pairs = make([]Pair, 0, nseq/2)
		for i := 0; i < nseq; i += 2 {
			pairs = append(pairs, Pair{i, i + 1})
		}
	case AllPair:
		pairs = make([]Pair, 0, nseq*(nseq-1)/2)
		for i := 0; i < nseq; i++ {
			for j := i + 1; j < nseq; j++ {
				pairs = append(pairs, Pair{i, j})
			}
		}
	case RandPair:
		if nRand > 0 && nseq < 2 {
			return nil, fmt.Errorf("%w, got %d", ErrTooFewSeqs, nseq)
		}
		pairs = make([]Pair, 0, max(nRand, 0))
		for k := 0; k < nRand; k++ {
			i, j := rnd.Intn(nseq), rnd.Intn(nseq)
			for i == j {
				i, j = rnd.Intn(nseq), rnd.Intn(nseq)
			}
			pairs = append(pairs, Pair{i, j})
		}
	default:
		return nil, fmt.Errorf("%w %d", ErrBadMode, mode)
	}
	return pairs, nil
}

// Outcome is what we keep from one alignment.
type Outcome struct {
	Pair
	Res       *gotoh.Result // a copy, so it is not overwritten
	Score     float32
	PidNongap float64
	PidLen    float64
}

// worker has the scratch space for one goroutine.
type worker struct {
	al  *gotoh.Aligner
	res *gotoh.Result
}

func newWorkers(n, maxlen int) ([]worker, error) {
	wk := make([]worker, n)
	for i := range wk {
		al, err := gotoh.NewAligner(maxlen)
		if err != nil {
			return nil, err
		}
		wk[i] = worker{al: al, res: gotoh.NewResult(maxlen, maxlen)}
	}
	return wk, nil
}

// alignOne does one pair with one worker's storage.
func (w *worker) alignOne(seqgrp *seq.SeqGrp, p Pair, scr *gotoh.Scores) (Outcome, error) {
	if err := w.al.Align(seqgrp.Seq(p.I), seqgrp.Seq(p.J), scr, w.res); err != nil {
		return Outcome{}, fmt.Errorf("aligning sequences %d and %d: %w", p.I+1, p.J+1, err)
	}
	return Outcome{
		Pair:      p,
		Res:       w.res.Copy(),
		Score:     w.al.Score(),
		PidNongap: gotoh.PidOverNongap(w.res),
		PidLen:    gotoh.PidOverAlignLen(w.res),
	}, nil
}

// alignBatch fills out[k] for pairs[k]. Worker w takes pairs w,
// w+nworker, ... so every slot in out is written by one goroutine.
func alignBatch(wk []worker, seqgrp *seq.SeqGrp, pairs []Pair, scr *gotoh.Scores, out []Outcome) error {
	var g errgroup.Group
	for w := range wk {
		w := w // per-iteration copy (go directive is 1.21)
		g.Go(func() error {
			for k := w; k < len(pairs); k += len(wk) {
				o, err := wk[w].alignOne(seqgrp, pairs[k], scr)
				if err != nil {
					return err
				}
				out[k] = o
			}
			return nil
		})
	}
	return g.Wait()
}

// batchSize is how many alignments we hold before writing them out.
const batchSize = 256

// AlignPairs aligns every pair and calls report with each outcome, in
// the order of pairs.
func AlignPairs(seqgrp *seq.SeqGrp, pairs []Pair, scr gotoh.Scores, nworker int,
	report func(Outcome) error) error {
	if nworker <= 0 {
		nworker = runtime.NumCPU()
	}
	nworker = max(1, min(nworker, len(pairs)))
	wk, err := newWorkers(nworker, seqgrp.MaxLen())
	if err != nil {
		return err
	}
	out := make([]Outcome, min(batchSize, len(pairs)))
	for start := 0; start < len(pairs); start += batchSize {
		batch := pairs[start:min(start+batchSize, len(pairs))]
		if err := alignBatch(wk, seqgrp, batch, &scr, out[:len(batch)]); err != nil {
			return err
		}
		for _, o := range out[:len(batch)] {
			if err := report(o); err != nil {
				return err
			}
		}
	}
	return nil
}

// Mymain reads the sequences from fname and does all the work.
func Mymain(args *Args, fname string) error {
	start := time.Now()
	var seqgrp seq.SeqGrp
	if err := seq.Readfile(fname, &seqgrp); err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(args.Seed))
	pairs, err := MakePairs(args.Mode, seqgrp.NSeq(), args.NRand, rnd)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(args.Wrtr)
	writeHeader(w, args, &seqgrp)
	var fsa *bufio.Writer
	if args.PrintFsa {
		fsa = bufio.NewWriter(args.FsaWrtr)
	}
	report := func(o Outcome) error {
		if fsa != nil {
			if err := writeFsa(fsa, &seqgrp, o); err != nil {
				return err
			}
		}
		return writePair(w, &seqgrp, o, args.Quiet)
	}
	if err := AlignPairs(&seqgrp, pairs, args.Scores, args.NWorker, report); err != nil {
		w.Flush()
		return err
	}

	fmt.Fprintln(w, "Number of pairs aligned:", len(pairs))
	if args.Verbose {
		fmt.Fprintf(w, "Total elapsed time (in seconds): %.2f\n", time.Since(start).Seconds())
	}
	if fsa != nil {
		if err := fsa.Flush(); err != nil {
			return err
		}
	}
	return w.Flush()
}
