// 16 Oct 2026

package gotoh

// Dir says which state a cell was reached from. The zero value, DirErr,
// is what boundary cells get when there is no legal way in, so meeting
// one during a traceback means the matrices are broken.
type Dir byte

const (
	DirErr Dir = iota // no predecessor
	DirM              // from the match/mismatch state
	DirIx             // from a gap in the second sequence
	DirIy             // from a gap in the first sequence
)

// String is mainly for debugging and error messages.
func (d Dir) String() string {
	switch d {
	case DirM:
		return "M"
	case DirIx:
		return "Ix"
	case DirIy:
		return "Iy"
	case DirErr:
		return "err"
	}
	return "bad_dir"
}

// best3 picks the largest of three values. Ties go to Ix, then Iy and
// only then to M. The order matters, since ties are common with integer
// scores and we want to reproduce old alignments exactly.
func best3(m, ix, iy float32) (float32, Dir) {
	switch {
	case ix >= m && ix >= iy:
		return ix, DirIx
	case iy >= m && iy >= ix:
		return iy, DirIy
	}
	return m, DirM
}
