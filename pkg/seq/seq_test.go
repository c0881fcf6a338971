package seq_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/palign/pkg/brokenio"
	"github.com/andrew-torda/palign/pkg/gotoh"
	. "github.com/andrew-torda/palign/pkg/seq"
	"github.com/andrew-torda/palign/pkg/seq/common"
)

const (
	big       = 64 * 1024
	bigminus1 = big - 1
	bigplus1  = big + 1
)

var seq_lengths = []int{10, 30, bigminus1, big, bigplus1}

func cmmtHelp(got, want string, t *testing.T) {
	if got != want {
		t.Fatalf("checking comments wanted \"%s\" got \"%s\"", want, got)
	}
}

// TestComment is to check that comments are read exactly, correctly
func TestComment(t *testing.T) {
	c0 := "testcomment no space"
	c1 := " testcomment with space at start"
	s := "aaa\n"
	seqs := ">" + c0 + "\n" + s + ">" + c1 + "\r\n" + s
	sr := strings.NewReader(seqs)
	var seqgrp SeqGrp

	if err := ReadFasta(sr, &seqgrp); err != nil {
		t.Fatal("bust reading simple seqs in TestComment", err)
	}
	slc := seqgrp.SeqSlc()

	cmmtHelp(slc[1].Cmmt(), c1, t)
	cmmtHelp(slc[0].Cmmt(), c0, t)
}

// TestDiffLen checks if we can read sequences of different lengths
// and that gaps are dropped.
func TestDiffLen(t *testing.T) {
	s := `>s1
a
> s2
aa
> s3
aa-a`
	var seqgrp SeqGrp
	if err := ReadFasta(strings.NewReader(s), &seqgrp); err != nil {
		t.Fatal("Reading seqs failed", err)
	}
	if ngot := seqgrp.NSeq(); ngot != 3 {
		t.Fatalf("Seqs of diff length got %d wanted 3 seqs", ngot)
	}
	for i := 0; i < 3; i++ {
		l := seqgrp.SeqSlc()[i].Len()
		if l != i+1 {
			t.Fatalf("seqs diff length got %d wanted %d", l, i+1)
		}
	}
	if seqgrp.MinLen() != 1 || seqgrp.MaxLen() != 3 {
		t.Fatal("min/max length wrong", seqgrp.MinLen(), seqgrp.MaxLen())
	}
}

// TestDiffLenLong has different length sequences that should be much longer
// than one buffer.
func TestDiffLenLong(t *testing.T) {
	ll := []int{10000, 200000, 50000}
	s := ">\n" + strings.Repeat("a", ll[0]) + "\n> s2\n" + strings.Repeat("c", ll[1]) +
		"\n> s3\n" + strings.Repeat("g", ll[2])
	var seqgrp SeqGrp

	if err := ReadFasta(strings.NewReader(s), &seqgrp); err != nil {
		t.Fatal("Reading seqs failed", err)
	}
	if ngot := seqgrp.NSeq(); ngot != 3 {
		t.Fatalf("Seqs of diff length got %d wanted 3 seqs", ngot)
	}
	for i := 0; i < len(ll); i++ {
		l := seqgrp.SeqSlc()[i].Len()
		if l != ll[i] {
			t.Fatalf("long seq wanted %d got %d", ll[i], l)
		}
	}
}

func TestBrokenSeq(t *testing.T) {
	broken := []struct {
		s   string
		err error
	}{
		{"> s1\nacg\n> s2 there is no sequence next", ErrEmptySeq},
		{"> s1\nacg\n> s2\n\n> s3\nacgt", ErrEmptySeq},
		{"> s1\nacgx\n", ErrBadSym},
		{"> s1\nACGTN", ErrBadSym},
		{"rubbish\n> s1\nacgt", ErrNotFasta},
		{"  \n\n", ErrNoSeqs},
		{"", ErrNoSeqs},
	}
	for _, b := range broken {
		var seqgrp SeqGrp
		err := ReadFasta(strings.NewReader(b.s), &seqgrp)
		if !errors.Is(err, b.err) {
			t.Fatalf("reading %q wanted error %v got %v", b.s, b.err, err)
		}
	}
}

// TestReadFastaShort uses buffers of various lengths to catch end of buffer mistakes.
func TestReadFastaShort(t *testing.T) {
	set1 := "\n>\n" + "acgtacgtac\n" +
		"> longer comment" + strings.Repeat(" x", 300) + "\n" +
		strings.Repeat("a", 10) + "\n" + "> longer comment" + strings.Repeat(" x", 3) +
		"\n" + strings.Repeat(" t ", 10) + strings.Repeat(" ", 167)
	bsize := []int{3, 4, 5, 10, 100, 512}
	defer SetFastaRdSize(DefaultReadSize)

	for i, bs := range bsize {
		rdr := strings.NewReader(set1)
		var seqgrp SeqGrp
		SetFastaRdSize(bs)
		if err := ReadFasta(rdr, &seqgrp); err != nil {
			t.Fatal(err)
		}
		if n := seqgrp.NSeq(); n != 3 {
			t.Fatal("seq loop num", i, "got nseq", n, "want 3")
		}
		for _, s := range seqgrp.SeqSlc() {
			if s.Len() != 10 {
				t.Fatal("buffer size", bs, "got length", s.Len(), "want 10")
			}
		}
	}
}

// TestShortReads has a reader which hands back a few bytes at a time
// and one which fails part way through.
func TestShortReads(t *testing.T) {
	var b strings.Builder
	writeTest_with_spaces(&b)
	defer SetFastaRdSize(DefaultReadSize)
	SetFastaRdSize(64)
	rdr := brokenio.NewReader(strings.NewReader(b.String()))
	rdr.SetMaxRead(7)
	rdr.SetRandom(rand.New(rand.NewSource(11)))
	var seqgrp SeqGrp
	require.NoError(t, ReadFasta(rdr, &seqgrp))
	require.Equal(t, len(seq_lengths), seqgrp.NSeq())
	for i, s := range seqgrp.SeqSlc() {
		assert.Equal(t, seq_lengths[i], s.Len())
	}

	rdr = brokenio.NewReader(strings.NewReader(b.String()))
	rdr.SetFailAfter(200, nil)
	seqgrp = SeqGrp{}
	assert.ErrorIs(t, ReadFasta(rdr, &seqgrp), brokenio.ErrBroken)
}

// TestReadErrWithData has a reader which fails on the same call that
// hands back the last bytes. The error must not be lost, even though
// what we have read so far looks like complete sequences.
func TestReadErrWithData(t *testing.T) {
	const s = "> a\nACGT\n> b\nAC"
	for _, failAt := range []int{len(s), 12} {
		rdr := brokenio.NewReader(strings.NewReader(s))
		rdr.SetFailAfter(failAt, nil)
		rdr.SetFailWithData(true)
		var seqgrp SeqGrp
		err := ReadFasta(rdr, &seqgrp)
		assert.ErrorIs(t, err, brokenio.ErrBroken, "failing after %d bytes", failAt)
	}
}

// Put funny characters into the comment lines
var trickyComments = []string{
	">a☺b☻c☹d",
	">>>",
	">",
	">a comment can end in an umlautÜ",
}

// writeTest_with_spaces provides some sequences with different patterns of
// white space and some gap characters mixed in. It sticks it in an io.Writer.
func writeTest_with_spaces(f_tmp io.Writer) {
	const b byte = 'g'
	for i, l := range seq_lengths {
		ndx := i % len(trickyComments)
		s := trickyComments[ndx]
		fmt.Fprintln(f_tmp, s)
		for j := 0; j < l; j++ {
			switch {
			case j%11 == 1:
				fmt.Fprint(f_tmp, " ")
			case j%73 == 1:
				fmt.Fprint(f_tmp, "\n")
			case j%71 == 1:
				fmt.Fprint(f_tmp, "-")
			}
			fmt.Fprint(f_tmp, string(b))
		}
		fmt.Fprint(f_tmp, "\n")
	}
}

// writeTest_nospaces puts some sequences into an io.Writer, but with no spaces
// so as to check if we correctly handle long lines.
func writeTest_nospaces(f_tmp io.Writer) {
	for _, i := range seq_lengths {
		fmt.Fprintln(f_tmp, "> seq", i+1, ">>")
		for j := 0; j < i; j++ {
			fmt.Fprintf(f_tmp, "%c", 'A')
		}
		fmt.Fprintf(f_tmp, "\n")
	}
}

// TestReadFasta writes and then reads sequences, once to check that
// we hop over white space and gaps and once to make sure we handle
// long lines. The lengths must come out the same either way.
func TestReadFasta(t *testing.T) {
	for _, spaces := range []bool{false, true} {
		var b strings.Builder
		if spaces {
			writeTest_with_spaces(&b)
		} else {
			writeTest_nospaces(&b)
		}
		var seqgrp SeqGrp
		if err := ReadFasta(strings.NewReader(b.String()), &seqgrp); err != nil {
			t.Fatal("Reading seqs failed", err)
		}
		if seqgrp.NSeq() != len(seq_lengths) {
			t.Fatalf("Wrote %d seqs, but read only %d. Spaces was set to %t",
				len(seq_lengths), seqgrp.NSeq(), spaces)
		}
		for i, s := range seqgrp.SeqSlc() {
			if s.Len() != seq_lengths[i] {
				t.Fatalf("Seq length expected %d, got %d", seq_lengths[i], s.Len())
			}
		}
	}
}

// TestEmpty checks that broken files are gracefully handled
func TestEmpty(t *testing.T) {
	bad_contents := []string{
		"> blah\n",
		"",
		"rubbish",
	}
	for _, content := range bad_contents {
		fname, err := common.WrtTemp(content)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		var seqgrp SeqGrp
		if err := Readfile(fname, &seqgrp); err == nil {
			t.Fatal("should generate error on", content)
		}
	}
	var seqgrp SeqGrp
	if err := Readfile("/this/is/not/a/file", &seqgrp); err == nil {
		t.Fatal("missing file did not give an error")
	}
}

func TestReadfile(t *testing.T) {
	fname, err := common.WrtTemp("> first\nACGT\nacgu\n> second\nT-T-T\n")
	require.NoError(t, err)
	defer os.Remove(fname)
	var seqgrp SeqGrp
	require.NoError(t, Readfile(fname, &seqgrp))
	require.Equal(t, 2, seqgrp.NSeq())
	assert.Equal(t, " first", seqgrp.Cmmt(0))
	assert.Equal(t, []gotoh.Sym{0, 1, 2, 3, 0, 1, 2, 3}, seqgrp.Seq(0))
	assert.Equal(t, []gotoh.Sym{3, 3, 3}, seqgrp.Seq(1))
}

func TestCoding(t *testing.T) {
	s, err := Encode([]byte("AcGtU.-u"))
	require.NoError(t, err)
	assert.Equal(t, []gotoh.Sym{0, 1, 2, 3, 3, 3}, s)
	assert.Equal(t, "ACGTTT", string(Decode(s)))
	assert.Equal(t, "A-N", string(Decode([]gotoh.Sym{0, gotoh.Gap, 7})))

	_, err = Encode([]byte("ACGTX"))
	assert.ErrorIs(t, err, ErrBadSym)
	assert.Equal(t, 4, NumAlphas)
}

func TestStr2SeqGrp(t *testing.T) {
	seqgrp, err := Str2SeqGrp([]string{"acgt", "gg"})
	require.NoError(t, err)
	assert.Equal(t, "s1", seqgrp.Cmmt(1))
	seqgrp, err = Str2SeqGrp([]string{"acgt"}, "x")
	require.NoError(t, err)
	assert.Equal(t, "x0", seqgrp.Cmmt(0))
	assert.Equal(t, ">x0\nACGT", seqgrp.SeqSlc()[0].String())
	_, err = Str2SeqGrp([]string{"acgt", "---"})
	assert.ErrorIs(t, err, ErrEmptySeq)
}

// TestWriteFasta writes long and short sequences and reads them back.
func TestWriteFasta(t *testing.T) {
	var buf bytes.Buffer
	long := bytes.Repeat([]byte("ACGTT"), 50)
	s1, _ := Encode(long)
	s2, _ := Encode([]byte("ACGT"))
	s2 = append(s2, gotoh.Gap)
	require.NoError(t, WriteFasta(&buf, "long one", s1))
	require.NoError(t, WriteFasta(&buf, "short", s2))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, ">long one", lines[0])
	assert.Len(t, lines[1], 60)
	assert.Equal(t, "ACGT-", lines[len(lines)-1])

	var seqgrp SeqGrp
	require.NoError(t, ReadFasta(&buf, &seqgrp))
	assert.Equal(t, s1, seqgrp.Seq(0))
	assert.Equal(t, s2[:4], seqgrp.Seq(1))
}
