// 16 Oct 2026

package gotoh

// Scores is the scoring scheme for an alignment. It is never changed
// by the aligner, so one value can be shared by any number of aligners.
// Gap penalties are given as the (usually negative) values added to the
// score. The first position in a run of gaps costs GapOpen, each further
// position in the same run costs GapExt. Nothing is checked, so it is up
// to the caller to give sensible values, normally
//     GapOpen <= GapExt <= 0 and Mismatch < Match
type Scores struct {
	Match    float32 // identical symbols
	Mismatch float32 // different symbols
	GapOpen  float32 // first position in a gap
	GapExt   float32 // each further position
}

// DefaultScores are the blastn-like values we always used for
// nucleotides.
func DefaultScores() Scores {
	return Scores{Match: 1, Mismatch: -2, GapOpen: -5, GapExt: -2}
}

// pair returns the score for aligning two symbols.
func (scr *Scores) pair(a, b Sym) float32 {
	if a == b {
		return scr.Match
	}
	return scr.Mismatch
}
