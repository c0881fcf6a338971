// 16 Oct 2026

// Package gotoh does global pair-wise alignments with affine gap
// penalties, following Gotoh, O. J. Mol. Biol. (1982) 162, 705-708,
// in the three state form of Durbin et al. p 29, eq 2.16.
//
// An Aligner owns all the temporary storage. It is allocated once, big
// enough for the longest sequence you will ever give it, and then
// re-used for as many pairs as you like. The matrices are overwritten
// on every call, so an Aligner must not be used by two goroutines at
// once. If you want to align in parallel, give each goroutine its own
// Aligner and Result.
package gotoh

import (
	"fmt"
	"math"

	"github.com/andrew-torda/matrix"
)

// Sym is a symbol in a sequence. Input sequences use codes from an
// alphabet, 0, 1, 2, ... The value Gap is reserved. It must never be in
// an input sequence and only turns up in aligned output.
type Sym uint8

// Gap marks an inserted or deleted position in an alignment.
const Gap Sym = math.MaxUint8

// MaxCells is the most cells we will allocate for one matrix. Go will
// not tell us if a huge make() fails, it just dies, so we check first.
const MaxCells = 1 << 30

var negInf = float32(math.Inf(-1))

// Aligner has the three score matrices and the three traceback
// matrices. Each is (capacity+1) x (capacity+1), since row and
// column zero are for the start, before any symbol has been used.
// The scores are FMatrix2d's, so rows are slices into one block.
// Directions are kept in flat slices and indexed by i*stride+j.
type Aligner struct {
	mMat, ixMat, iyMat *matrix.FMatrix2d
	tbM, tbIx, tbIy    []Dir
	capacity           int
	stride             int
	score              float32 // of the last alignment
}

// NewAligner allocates an aligner which can handle sequences up to
// capacity symbols long.
func NewAligner(capacity int) (*Aligner, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrCapacity, capacity)
	}
	n := capacity + 1
	if n > MaxCells/n {
		return nil, fmt.Errorf("%w: %d x %d cells", ErrAlloc, n, n)
	}
	a := &Aligner{capacity: capacity, stride: n}
	a.mMat = matrix.NewFMatrix2d(n, n)
	a.ixMat = matrix.NewFMatrix2d(n, n)
	a.iyMat = matrix.NewFMatrix2d(n, n)
	a.tbM = make([]Dir, n*n)
	a.tbIx = make([]Dir, n*n)
	a.tbIy = make([]Dir, n*n)
	return a, nil
}

// Cap returns the longest sequence the aligner will take.
func (a *Aligner) Cap() int { return a.capacity }

// Score returns the score of the most recent alignment.
func (a *Aligner) Score() float32 { return a.score }

// noGaps checks that an input sequence is clean.
func noGaps(s []Sym, which int) error {
	for i, c := range s {
		if c == Gap {
			return fmt.Errorf("%w: sequence %d position %d", ErrGapInInput, which, i)
		}
	}
	return nil
}

// Align does a global alignment of s1 and s2 and puts the aligned
// sequences into res. res must have room for len(s1)+len(s2) columns.
// s1 and s2 are only read.
func (a *Aligner) Align(s1, s2 []Sym, scr *Scores, res *Result) error {
	len1, len2 := len(s1), len(s2)
	if len1 > a.capacity || len2 > a.capacity {
		return fmt.Errorf("%w: lengths %d and %d, capacity %d",
			ErrCapacity, len1, len2, a.capacity)
	}
	if res.Cap() < len1+len2 {
		return fmt.Errorf("%w: result has room for %d columns, need up to %d",
			ErrCapacity, res.Cap(), len1+len2)
	}
	if err := noGaps(s1, 1); err != nil {
		return err
	}
	if err := noGaps(s2, 2); err != nil {
		return err
	}
	a.fill(s1, s2, scr)
	return a.traceback(s1, s2, res)
}

// fill sets row and column zero, then walks over the rows, left to right.
// M is the best score with s1[i-1] aligned to s2[j-1], Ix the best
// score with s1[i-1] opposite a gap and Iy with s2[j-1] opposite a gap.
func (a *Aligner) fill(s1, s2 []Sym, scr *Scores) {
	mm, ix, iy := a.mMat.Mat, a.ixMat.Mat, a.iyMat.Mat
	tbM, tbIx, tbIy := a.tbM, a.tbIx, a.tbIy
	len1, len2 := len(s1), len(s2)
	st := a.stride

	mm[0][0] = 0
	ix[0][0], iy[0][0] = negInf, negInf // A path has to start in M
	tbM[0], tbIx[0], tbIy[0] = DirErr, DirErr, DirErr

	for i := 1; i <= len1; i++ { // first column, only Ix is possible
		k := i * st
		mm[i][0] = negInf
		ix[i][0] = scr.GapOpen + float32(i-1)*scr.GapExt
		iy[i][0] = negInf
		tbM[k], tbIx[k], tbIy[k] = DirErr, DirIx, DirErr
		if i == 1 {
			tbIx[k] = DirM
		}
	}
	for j := 1; j <= len2; j++ { // first row, only Iy
		mm[0][j] = negInf
		ix[0][j] = negInf
		iy[0][j] = scr.GapOpen + float32(j-1)*scr.GapExt
		tbM[j], tbIx[j], tbIy[j] = DirErr, DirErr, DirIy
		if j == 1 {
			tbIy[j] = DirM
		}
	}

	for i := 1; i <= len1; i++ {
		c1 := s1[i-1]
		mPrev, ixPrev, iyPrev := mm[i-1], ix[i-1], iy[i-1]
		mRow, ixRow, iyRow := mm[i], ix[i], iy[i]
		k := i * st
		for j := 1; j <= len2; j++ {
			s := scr.pair(c1, s2[j-1])
			mRow[j], tbM[k+j] = best3(mPrev[j-1]+s, ixPrev[j-1]+s, iyPrev[j-1]+s)

			// On a tie, carry on with a gap rather than open a new one
			if open, ext := mPrev[j]+scr.GapOpen, ixPrev[j]+scr.GapExt; ext >= open {
				ixRow[j], tbIx[k+j] = ext, DirIx
			} else {
				ixRow[j], tbIx[k+j] = open, DirM
			}
			if open, ext := mRow[j-1]+scr.GapOpen, iyRow[j-1]+scr.GapExt; ext >= open {
				iyRow[j], tbIy[k+j] = ext, DirIy
			} else {
				iyRow[j], tbIy[k+j] = open, DirM
			}
		}
	}
}

// traceback starts at the bottom right corner in whichever state scores
// best and walks back to the origin. Columns are written backwards and
// the two sequences reversed at the end.
func (a *Aligner) traceback(s1, s2 []Sym, res *Result) error {
	i, j := len(s1), len(s2)
	st := a.stride
	var dir Dir
	a.score, dir = best3(a.mMat.Mat[i][j], a.ixMat.Mat[i][j], a.iyMat.Mat[i][j])

	al1, al2 := res.align1, res.align2
	n := 0
	corrupt := func() error {
		res.n = 0
		return fmt.Errorf("%w: state %v at (%d,%d) after %d columns", ErrCorrupt, dir, i, j, n)
	}
	for i > 0 || j > 0 {
		switch dir {
		case DirIx:
			if i == 0 {
				return corrupt()
			}
			al1[n], al2[n] = s1[i-1], Gap
			dir = a.tbIx[i*st+j]
			i--
		case DirIy:
			if j == 0 {
				return corrupt()
			}
			al1[n], al2[n] = Gap, s2[j-1]
			dir = a.tbIy[i*st+j]
			j--
		case DirM:
			if i == 0 || j == 0 {
				return corrupt()
			}
			al1[n], al2[n] = s1[i-1], s2[j-1]
			dir = a.tbM[i*st+j]
			i--
			j--
		default:
			return corrupt()
		}
		n++
	}
	reverse(al1[:n])
	reverse(al2[:n])
	res.n = n
	return nil
}

func reverse(s []Sym) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
