// 31 July 2020
// Oct 2026 nucleotides only and coded sequences for the aligner tests

// Package randseq makes random nucleotide sequences. They can be
// written out as fasta, with rubbish white space for testing readers,
// or returned as symbol codes ready to go to the aligner.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/palign/pkg/gotoh"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
	nAlpha    = 4 // a, c, g, t
)

var letters = []byte{'a', 'c', 'g', 't'}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand, alphabet []byte) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(alphabet))
	for i := 0; i < seqlen; i++ {
		ret[i] = alphabet[rnd.Int31n(l)]
	}
	return ret
}

// Coded returns a random sequence of n nucleotide codes.
func Coded(rnd *rand.Rand, n int) []gotoh.Sym {
	s := make([]gotoh.Sym, n)
	for i := range s {
		s[i] = gotoh.Sym(rnd.Int31n(nAlpha))
	}
	return s
}

// Mutate changes about a fraction frac of the sites in s, in place, and
// returns the number actually changed. A site may be picked twice.
func Mutate(rnd *rand.Rand, frac float32, s []gotoh.Sym) int {
	if len(s) == 0 {
		return 0
	}
	n := int(frac * float32(len(s)))
	nChange := 0
	for i := 0; i < n; i++ {
		pos := rnd.Intn(len(s))
		c := gotoh.Sym((int32(s[pos]) + 1 + rnd.Int31n(nAlpha-1)) % nAlpha)
		if c != s[pos] {
			nChange++
		}
		s[pos] = c
	}
	return nChange
}

// DelN deletes n sites at random and returns the shortened slice.
func DelN(rnd *rand.Rand, n int, s []gotoh.Sym) ([]gotoh.Sym, error) {
	if n > len(s) {
		return s, fmt.Errorf("cannot delete %d sites from sequence of length %d", n, len(s))
	}
	for i := 0; i < n; i++ {
		pos := rnd.Intn(len(s))
		s = append(s[:pos], s[pos+1:]...)
	}
	return s, nil
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Gaps  bool      // Sprinkle gaps in, as if from an alignment
	Vary  bool      // Lengths vary from 1 to Len
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	coin := spacernd.Int31n(2)
	nNL := 0 // Number of new lines to add
	if coin == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes a bytestring which is our sequence. It adds a comment
// and sends it out for writing. n is the number of the sequence, so the
// output has comment lines "> something 1, > something 2..."
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *errp != nil {
			continue // drain the channel, so the sender is not stuck
		}
		s = addspace(s, spacernd)
		tmp := fmt.Sprintf("> %s %[2]*d\n", args.Cmmt, width, i)
		if _, err := io.WriteString(args.Wrtr, tmp); err != nil {
			*errp = err
			continue
		}
		s = append(s, '\n')
		if _, err := args.Wrtr.Write(s); err != nil {
			*errp = err
		}
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var err error
	if args.Len < 1 {
		return fmt.Errorf("sequence length must be at least 1, got %d", args.Len)
	}
	alphabet := letters
	if args.Gaps {
		alphabet = append(append([]byte{}, letters...), letters...)
		alphabet = append(alphabet, '-')
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		n := args.Len
		if args.Vary {
			n = 1 + rnd.Intn(args.Len)
		}
		s := getseq(n, rnd, alphabet)
		if args.Gaps { // a sequence of nothing but gaps is no use
			s[rnd.Intn(n)] = letters[rnd.Intn(nAlpha)]
		}
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return err
}
