// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/palign/pkg/randseq"
	. "github.com/andrew-torda/palign/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.BoolVar(&args.Gaps, "g", false, "put gaps in the sequences")
	f.BoolVar(&args.Vary, "l", false, "lengths vary from 1 up to length")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.StringVar(&args.Cmmt, "c", "random seq", "comment for each sequence")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		os.Exit(ExitFailure)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		os.Exit(ExitFailure)
	} else {
		args.Len = int(nlen)
	}

	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure) // deferred close is skipped, but we are going anyway
	}
}
