// Reader for fasta format files.

package seq

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andrew-torda/palign/pkg/white"
)

// An item is terminated by a newline if we are in a comment or a comment
// character ">" if we are in a sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type item struct {
	data     []byte
	complete bool // we found the terminator
	eof      bool // nothing more will come
}

type lexer struct {
	input    []byte
	ichan    chan *item
	seqgrp   *SeqGrp
	rdr      io.Reader
	itempool sync.Pool
	cmmt     string // partial comment
	seq      []byte // partial sequence, raw text
	term     byte
	rdErr    error // only set by the reading goroutine
	err      error
}

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads from the input and sends an item to channel, ichan.
// An item is terminated by l.term, or the end of the buffer or
// end of input. The last item always has eof set.
func (l *lexer) next() {
	defer close(l.ichan)
	rdDone := false // the reader has finished, with or without an error
	for {
		if len(l.input) == 0 {
			if rdDone {
				item := l.itempool.Get().(*item)
				item.data, item.complete, item.eof = nil, true, true
				l.ichan <- item
				return
			}
			buf := make([]byte, rdsize)
			n, err := l.rdr.Read(buf)
			if err != nil {
				if err != io.EOF {
					l.rdErr = err // signal that a real error occurred.
				}
				rdDone = true
			}
			l.input = buf[:n]
			if n == 0 {
				continue
			}
		}

		item := l.itempool.Get().(*item)
		item.eof = false
		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			item.data = l.input // no terminator found, so just send
			l.input = nil       // back whatever we have in the buffer.
			item.complete = false
		} else { //                         We did find a terminator
			item.data = l.input[:ndx] //
			item.complete = true      //
			l.input = l.input[ndx+1:] //    Set up for next loop
			if l.term == NL {
				l.term = cmmtChar
			} else {
				l.term = NL
			}
		}
		l.ichan <- item
	}
}

type stateFn func(*lexer) stateFn

// gstart eats anything before the first comment. It should only be
// white space.
func gstart(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	white.Remove(&item.data)
	if len(item.data) != 0 {
		l.err = fmt.Errorf("%w, starts \"%s\"", ErrNotFasta, trimStr(string(item.data), 20))
		return nil
	}
	switch {
	case item.eof:
		return nil
	case item.complete:
		return gcmmt
	}
	return gstart
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)

	l.cmmt = l.cmmt + string(item.data)
	if item.eof {
		l.err = fmt.Errorf("%w after \"%s\"", ErrEmptySeq, trimStr(l.cmmt, 40))
		return nil
	}
	if item.complete {
		l.cmmt = strings.TrimRight(l.cmmt, "\r")
		return gseq
	}
	return gcmmt
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)

	white.Remove(&item.data)
	l.seq = append(l.seq, item.data...)
	if !item.complete {
		return gseq
	}
	if l.err = l.seqgrp.add(l.cmmt, l.seq); l.err != nil {
		return nil
	}
	l.cmmt = ""
	l.seq = nil
	if item.eof {
		return nil
	}
	return gcmmt
}

// ReadFasta reads fasta formatted sequences and appends them to seqgrp.
// Gaps are removed and the symbols coded as nucleotides.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), seqgrp: seqgrp, term: cmmtChar}
	l.itempool.New = newItem

	go l.next()
	for state := gstart; state != nil; {
		state = state(&l)
	}
	for range l.ichan { // If we stopped early, let the reader finish
	}
	if l.rdErr != nil { // a broken read explains any later parse error
		return l.rdErr
	}
	if l.err != nil {
		return l.err
	}
	if seqgrp.NSeq() == 0 {
		return ErrNoSeqs
	}
	return nil
}
