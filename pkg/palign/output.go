// 16 Oct 2026

package palign

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/palign/pkg/seq"
)

var separator = strings.Repeat("=", 67)

// writeHeader says what we are about to do.
func writeHeader(w io.Writer, args *Args, seqgrp *seq.SeqGrp) {
	fmt.Fprintln(w, "Pair mode:", args.Mode)
	fmt.Fprintln(w, "Random seed:", args.Seed)
	fmt.Fprintln(w, "Number of sequences:", seqgrp.NSeq())
	scr := args.Scores
	fmt.Fprintf(w, "match %g\nmismatch %g\ngapopen %g\ngapext %g\n\n",
		scr.Match, scr.Mismatch, scr.GapOpen, scr.GapExt)
}

// writePair writes the headers, unless quiet the original and aligned
// sequences, then the two identities.
func writePair(w io.Writer, seqgrp *seq.SeqGrp, o Outcome, quiet bool) error {
	fmt.Fprintf(w, ">%s\n>%s\n", seqgrp.Cmmt(o.I), seqgrp.Cmmt(o.J))
	if !quiet {
		fmt.Fprintf(w, "Original:\n%s\n%s\n\n", seq.Decode(seqgrp.Seq(o.I)), seq.Decode(seqgrp.Seq(o.J)))
		fmt.Fprintf(w, "Alignment:\n%s\n%s\n\n", seq.Decode(o.Res.Align1()), seq.Decode(o.Res.Align2()))
	}
	fmt.Fprintf(w, "PID over non-gap: %.6g\n", o.PidNongap)
	fmt.Fprintf(w, "PID over alignment-length: %.6g\n\n", o.PidLen)
	_, err := fmt.Fprintf(w, "%s\n\n", separator)
	return err
}

// writeFsa writes the aligned pair as fasta, with the identities in
// the comments.
func writeFsa(w io.Writer, seqgrp *seq.SeqGrp, o Outcome) error {
	const f = "%s; PID%d-over-non-gap=%.6g; PID%d-over-alignlen=%.6g"
	c1 := fmt.Sprintf(f, seqgrp.Cmmt(o.I), 1, o.PidNongap, 1, o.PidLen)
	if err := seq.WriteFasta(w, c1, o.Res.Align1()); err != nil {
		return err
	}
	c2 := fmt.Sprintf(f, seqgrp.Cmmt(o.J), 2, o.PidNongap, 2, o.PidLen)
	if err := seq.WriteFasta(w, c2, o.Res.Align2()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
