// Oct 2026

package seq

import (
	"fmt"

	"github.com/andrew-torda/palign/pkg/gotoh"
	. "github.com/andrew-torda/palign/pkg/seq/common"
)

// NumAlphas is the number of nucleotide codes. A, C, G, T are 0 to 3.
const NumAlphas = 4

const (
	notSym int8 = -1 // not allowed in a sequence
	gapSym int8 = -2 // gap in input, thrown away
)

// ntMap maps characters to codes. U is read as T.
var ntMap = func() (m [256]int8) {
	for i := range m {
		m[i] = notSym
	}
	for i, c := range []byte("ACGT") {
		m[c] = int8(i)
		m[c+('a'-'A')] = int8(i)
	}
	m['U'], m['u'] = m['T'], m['T']
	m[GapChar], m['.'] = gapSym, gapSym
	return m
}()

const ntChars = "ACGT"

// Encode turns nucleotide text into codes. Gap characters are dropped,
// since we align the raw sequences. Anything else is an error.
func Encode(raw []byte) ([]gotoh.Sym, error) {
	s := make([]gotoh.Sym, 0, len(raw))
	for i, c := range raw {
		switch m := ntMap[c]; m {
		case gapSym:
			continue
		case notSym:
			return nil, fmt.Errorf("%w \"%c\" at position %d", ErrBadSym, c, i)
		default:
			s = append(s, gotoh.Sym(m))
		}
	}
	return s, nil
}

// Decode turns codes back into upper case text, with gotoh.Gap as
// GapChar. A code outside the alphabet comes out as 'N'.
func Decode(s []gotoh.Sym) []byte {
	t := make([]byte, len(s))
	for i, c := range s {
		switch {
		case c == gotoh.Gap:
			t[i] = GapChar
		case int(c) < len(ntChars):
			t[i] = ntChars[c]
		default:
			t[i] = 'N'
		}
	}
	return t
}
