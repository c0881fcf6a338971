// 25 may 2025
// seqlen visits a fasta file and counts the length of each sequence
// after removing gaps.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/palign/pkg/seq/common"
	"github.com/andrew-torda/palign/pkg/seqlen"
)

func main() {
	var cmdArgs seqlen.CmdArgs
	flag.BoolVar(&cmdArgs.Summary, "s", false, "only write the number of sequences, shortest and longest")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input [output]\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Expected one or two arguments. Got", flag.NArg())
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	cmdArgs.InSeqFname = flag.Arg(0)
	cmdArgs.OutCntFname = flag.Arg(1)
	if err := seqlen.Mymain(cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
