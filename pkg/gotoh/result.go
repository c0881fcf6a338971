// 16 Oct 2026

package gotoh

// Result holds a pair of aligned sequences. The space is allocated
// once and overwritten by each call to Align, so slices from Align1()
// and Align2() are only good until the next alignment. Use Copy() if
// you want to keep one.
type Result struct {
	align1, align2 []Sym
	n              int
}

// NewResult makes a result big enough for aligning sequences of up to
// len1 and len2 symbols. An alignment can never be longer than
// len1+len2.
func NewResult(len1, len2 int) *Result {
	n := max(len1, 0) + max(len2, 0)
	return &Result{
		align1: make([]Sym, n),
		align2: make([]Sym, n),
	}
}

// Len is the number of columns in the alignment.
func (r *Result) Len() int { return r.n }

// Cap is the longest alignment the result can hold.
func (r *Result) Cap() int { return len(r.align1) }

// Align1 is the first sequence with gaps inserted.
func (r *Result) Align1() []Sym { return r.align1[:r.n] }

// Align2 is the second sequence with gaps inserted.
func (r *Result) Align2() []Sym { return r.align2[:r.n] }

// Copy returns a result with its own storage, just big enough
// for the current alignment.
func (r *Result) Copy() *Result {
	t := &Result{
		align1: make([]Sym, r.n),
		align2: make([]Sym, r.n),
		n:      r.n,
	}
	copy(t.align1, r.align1[:r.n])
	copy(t.align2, r.align2[:r.n])
	return t
}
