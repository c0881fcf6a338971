// 16 Oct 2026

package gotoh

// Counts runs over an alignment and returns the number of identical
// pairs and the number of columns where neither side is a gap.
func Counts(r *Result) (ident, nongap int) {
	a1, a2 := r.Align1(), r.Align2()
	for i, c := range a1 {
		d := a2[i]
		if c == Gap || d == Gap {
			continue
		}
		nongap++
		if c == d {
			ident++
		}
	}
	return ident, nongap
}

// PidOverAlignLen is the fraction of identical pairs over the whole
// length of the alignment, gaps included. An empty alignment gives 0.
func PidOverAlignLen(r *Result) float64 {
	if r.Len() == 0 {
		return 0
	}
	ident, _ := Counts(r)
	return float64(ident) / float64(r.Len())
}

// PidOverNongap is the fraction of identical pairs, only counting
// columns without a gap. If every column has a gap, the answer is 0,
// not NaN, since there cannot be any identities either.
func PidOverNongap(r *Result) float64 {
	ident, nongap := Counts(r)
	if nongap == 0 {
		return 0
	}
	return float64(ident) / float64(nongap)
}
