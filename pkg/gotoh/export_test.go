package gotoh

// These let the tests break an aligner on purpose and look inside.

// Fill runs only the matrix filling part of Align.
func (a *Aligner) Fill(s1, s2 []Sym, scr *Scores) { a.fill(s1, s2, scr) }

// Traceback runs only the traceback part of Align.
func (a *Aligner) Traceback(s1, s2 []Sym, res *Result) error {
	return a.traceback(s1, s2, res)
}

// SetTbM overwrites one direction in the M traceback matrix.
func (a *Aligner) SetTbM(i, j int, d Dir) { a.tbM[i*a.stride+j] = d }

// Corner returns the three scores at cell (i, j).
func (a *Aligner) Corner(i, j int) (m, ix, iy float32) {
	return a.mMat.Mat[i][j], a.ixMat.Mat[i][j], a.iyMat.Mat[i][j]
}
