// 20 Dec 2017
// Oct 2026 sequences are kept as nucleotide codes for the aligner

// Package seq reads nucleotide sequences, which usually begin their
// lives in fasta format, and turns them into symbol codes that
// the aligner can use. It can also write them out again.
package seq

import (
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/palign/pkg/gotoh"
)

// Errors from reading. Check with errors.Is(), since they come back
// wrapped with the details.
var (
	ErrNoSeqs   = errors.New("no sequences found")
	ErrEmptySeq = errors.New("zero length sequence")
	ErrBadSym   = errors.New("bad symbol")
	ErrNotFasta = errors.New("input does not start with '>'")
)

// Seq is one sequence, with its comment (the fasta header, without
// the leading ">").
type Seq struct {
	cmmt string
	seq  []gotoh.Sym
}

// Cmmt returns the comment.
func (s Seq) Cmmt() string { return s.cmmt }

// Sym returns the sequence as symbol codes.
func (s Seq) Sym() []gotoh.Sym { return s.seq }

// Len returns the number of symbols.
func (s Seq) Len() int { return len(s.seq) }

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, Decode(s.seq))
}

// SeqGrp is a group of sequences, in the order they were read.
type SeqGrp struct {
	seqs []Seq
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Seq returns the symbols of sequence i, numbering from zero.
func (seqgrp *SeqGrp) Seq(i int) []gotoh.Sym { return seqgrp.seqs[i].seq }

// Cmmt returns the comment of sequence i.
func (seqgrp *SeqGrp) Cmmt(i int) string { return seqgrp.seqs[i].cmmt }

// MaxLen is the length of the longest sequence. This is what aligners
// have to be allocated for.
func (seqgrp *SeqGrp) MaxLen() int {
	n := 0
	for _, s := range seqgrp.seqs {
		n = max(n, s.Len())
	}
	return n
}

// MinLen is the length of the shortest sequence, zero if there are none.
func (seqgrp *SeqGrp) MinLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	n := seqgrp.seqs[0].Len()
	for _, s := range seqgrp.seqs[1:] {
		n = min(n, s.Len())
	}
	return n
}

// add encodes raw text and appends it as a new sequence.
func (seqgrp *SeqGrp) add(cmmt string, raw []byte) error {
	s, err := Encode(raw)
	if err != nil {
		return fmt.Errorf("sequence %d \"%s\": %w", len(seqgrp.seqs)+1, trimStr(cmmt, 40), err)
	}
	if len(s) == 0 {
		return fmt.Errorf("%w after \"%s\"", ErrEmptySeq, trimStr(cmmt, 40))
	}
	seqgrp.seqs = append(seqgrp.seqs, Seq{cmmt: cmmt, seq: s})
	return nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) (*SeqGrp, error) {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		if err := seqgrp.add(fmt.Sprint(base, i), []byte(s)); err != nil {
			return nil, err
		}
	}
	return seqgrp, nil
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// WriteFasta writes one sequence with its comment, breaking the
// sequence into lines of 60. Gaps are written as '-'.
func WriteFasta(w io.Writer, cmmt string, s []gotoh.Sym) error {
	const cPerLine = 60
	if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, cmmt); err != nil {
		return err
	}
	t := Decode(s)
	for ; len(t) > cPerLine; t = t[cPerLine:] {
		if _, err := fmt.Fprintf(w, "%s\n", t[:cPerLine]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", t)
	return err
}
