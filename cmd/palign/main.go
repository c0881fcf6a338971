// 16 Oct 2026

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/andrew-torda/palign/pkg/gotoh"
	"github.com/andrew-torda/palign/pkg/palign"
	. "github.com/andrew-torda/palign/pkg/seq/common"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("palign: ")
	f := flag.NewFlagSet("palign", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: palign [options] seqs.fa")
		f.PrintDefaults()
	}
	var args palign.Args
	var allPair, nextPair bool
	args.Scores = gotoh.DefaultScores()
	sc := &args.Scores

	f.BoolVar(&allPair, "all-pair", false, "align all possible pairs (n choose 2)")
	f.BoolVar(&nextPair, "next-pair", false, "align every next pair, 1-2, 3-4, ... (default)")
	f.IntVar(&args.NRand, "rand-pair", 0, "align this many random pairs")
	f.Int64Var(&args.Seed, "s", 0, "random number seed, 0 takes it from the clock")
	f.BoolVar(&args.Quiet, "quiet", false, "do not display sequences and alignments")
	f.BoolVar(&args.PrintFsa, "print-fsa", false, "write aligned pairs as fasta to stderr")
	f.BoolVar(&args.Verbose, "v", false, "say how long it took")
	f.IntVar(&args.NWorker, "w", 1, "number of aligning goroutines, 0 for one per CPU")
	f.Func("m", fmt.Sprint("match score (default ", sc.Match, ")"), scoreFlag(&sc.Match))
	f.Func("x", fmt.Sprint("mismatch score (default ", sc.Mismatch, ")"), scoreFlag(&sc.Mismatch))
	f.Func("o", fmt.Sprint("gap open score (default ", sc.GapOpen, ")"), scoreFlag(&sc.GapOpen))
	f.Func("e", fmt.Sprint("gap extension score (default ", sc.GapExt, ")"), scoreFlag(&sc.GapExt))
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 1 {
		f.Usage()
		os.Exit(ExitUsageError)
	}

	nmode := 0
	args.Mode = palign.NextPair
	if nextPair {
		nmode++
	}
	if allPair {
		args.Mode = palign.AllPair
		nmode++
	}
	if args.NRand > 0 {
		args.Mode = palign.RandPair
		nmode++
	}
	if nmode > 1 {
		fmt.Fprintln(f.Output(), "choose only one of -all-pair, -next-pair and -rand-pair")
		os.Exit(ExitUsageError)
	}
	if args.Seed == 0 {
		args.Seed = time.Now().UnixNano()
	}
	args.Wrtr = os.Stdout
	args.FsaWrtr = os.Stderr

	if err := palign.Mymain(&args, f.Arg(0)); err != nil {
		log.Println(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
