// 15 May 2025
// 16 Oct 2026 lengths are counted after gap removal, so the maximum is
// the capacity an aligner needs for the file.

// Package seqlen visits a fasta file and writes the length of each
// sequence, without gaps, then the shortest and longest.
package seqlen

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/palign/pkg/seq"
)

// CmdArgs is what the main collects from the command line.
type CmdArgs struct {
	InSeqFname  string // fasta input, "-" for stdin
	OutCntFname string // where the lengths go, "-" or "" for stdout
	Summary     bool   // only write the summary line
}

// Write writes one line per sequence, "length<tab>comment" and
// a closing summary line.
func Write(w io.Writer, seqgrp *seq.SeqGrp, summary bool) error {
	bw := bufio.NewWriter(w)
	if !summary {
		for _, s := range seqgrp.SeqSlc() {
			fmt.Fprintf(bw, "%d\t%s\n", s.Len(), s.Cmmt())
		}
	}
	fmt.Fprintf(bw, "# nseq %d min %d max %d\n", seqgrp.NSeq(), seqgrp.MinLen(), seqgrp.MaxLen())
	return bw.Flush()
}

// Mymain reads the sequences and writes the lengths.
func Mymain(cmdArgs CmdArgs) error {
	var seqgrp seq.SeqGrp
	if err := seq.Readfile(cmdArgs.InSeqFname, &seqgrp); err != nil {
		return err
	}
	if cmdArgs.OutCntFname == "" || cmdArgs.OutCntFname == "-" {
		return Write(os.Stdout, &seqgrp, cmdArgs.Summary)
	}
	fp, err := os.Create(cmdArgs.OutCntFname)
	if err != nil {
		return err
	}
	if err := Write(fp, &seqgrp, cmdArgs.Summary); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
